package driver

type DriverDB struct {
	ID           int64
	Username     string
	PasswordHash string
	FullName     string
	VehicleModel string
	Color        string
	LicensePlate string
}

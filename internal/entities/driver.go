package entities

type Driver struct {
	ID           int64
	Username     string
	Password     string // bcrypt hash
	FullName     string
	VehicleModel string
	Color        string
	LicensePlate string
}

type DriverModify struct {
	Username     *string
	Password     *string
	FullName     *string
	VehicleModel *string
	Color        *string
	LicensePlate *string
}

package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// Driver публичное представление водителя, пароль не отдается.
type Driver struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"fullName"`
	VehicleModel string `json:"vehicleModel"`
	Color        string `json:"color"`
	LicensePlate string `json:"licensePlate"`
}

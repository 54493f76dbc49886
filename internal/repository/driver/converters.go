package driver

import "dispatch/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:           d.ID,
		Username:     d.Username,
		Password:     d.PasswordHash,
		FullName:     d.FullName,
		VehicleModel: d.VehicleModel,
		Color:        d.Color,
		LicensePlate: d.LicensePlate,
	}
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	result := make([]entities.Driver, len(driversDB))
	for i := range driversDB {
		result[i] = *ToDomain(&driversDB[i])
	}
	return result
}

func FromDomain(d *entities.Driver) *DriverDB {
	return &DriverDB{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.Password,
		FullName:     d.FullName,
		VehicleModel: d.VehicleModel,
		Color:        d.Color,
		LicensePlate: d.LicensePlate,
	}
}

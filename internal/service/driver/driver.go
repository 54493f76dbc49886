package driver

import (
	"context"
	"fmt"
	"strings"

	"dispatch/internal/entities"
)

type Driver struct {
	repository Repository
}

func New(repository Repository) *Driver {
	return &Driver{
		repository: repository,
	}
}

func (s *Driver) GetDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers: %w", err)
	}
	return drivers, nil
}

// GetByLicensePlates возвращает водителей по номерам машин. Неизвестные номера пропускаются.
func (s *Driver) GetByLicensePlates(ctx context.Context, licensePlates []string) ([]entities.Driver, error) {
	seen := make(map[string]struct{}, len(licensePlates))
	plates := make([]string, 0, len(licensePlates))
	for _, plate := range licensePlates {
		plate = strings.TrimSpace(plate)
		if plate == "" {
			continue
		}
		if _, ok := seen[plate]; ok {
			continue
		}
		seen[plate] = struct{}{}
		plates = append(plates, plate)
	}

	if len(plates) == 0 {
		return []entities.Driver{}, nil
	}

	drivers, err := s.repository.GetByLicensePlates(ctx, plates)
	if err != nil {
		return nil, fmt.Errorf("failed to get drivers by license plates: %w", err)
	}
	return drivers, nil
}

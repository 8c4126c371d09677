package util

import (
	"fmt"
	"strings"
	"time"
)

// ValidateRequired checks that a named field is not blank.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// ValidateTruck checks the required truck fields.
func ValidateTruck(licensePlate, model string) error {
	if err := ValidateRequired("license_plate", licensePlate); err != nil {
		return err
	}
	return ValidateRequired("model", model)
}

// ValidateTruckDriver checks the required driver fields.
func ValidateTruckDriver(dni, name, phone, address string) error {
	for _, f := range []struct {
		name, value string
	}{
		{"dni", dni},
		{"name", name},
		{"phone", phone},
		{"address", address},
	} {
		if err := ValidateRequired(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePack checks the required pack fields.
func ValidatePack(description, destinationAddress string) error {
	if err := ValidateRequired("description", description); err != nil {
		return err
	}
	return ValidateRequired("destination_address", destinationAddress)
}

// ValidateCity checks the required city fields.
func ValidateCity(name string) error {
	return ValidateRequired("name", name)
}

// ValidateDeliveryAddress checks the required address fields.
func ValidateDeliveryAddress(street, postalCode string) error {
	if err := ValidateRequired("street", street); err != nil {
		return err
	}
	return ValidateRequired("postal_code", postalCode)
}

// ParseAssignmentDate parses an assignment date (YYYY-MM-DD).
func ParseAssignmentDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return d, nil
}

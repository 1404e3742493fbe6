package usecase

import (
	"fmt"
	"net/mail"

	domainErrors "campustap/internal/domain/errors"
	"campustap/internal/domain/model"
)

// ValidateRegistration checks that every required registration field is
// present and that the email parses as an address.
func ValidateRegistration(in model.Registration) error {
	required := []struct {
		name  string
		value string
	}{
		{"rfid", in.RFID},
		{"student_id", in.StudentID},
		{"email", in.Email},
		{"name", in.Name},
		{"program", in.Program},
		{"school", in.School},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: missing %s", domainErrors.ErrInvalidInput, field.name)
		}
	}
	if !ValidateEmail(in.Email) {
		return fmt.Errorf("%w: malformed email", domainErrors.ErrInvalidInput)
	}
	return nil
}

// ValidateEmail reports whether the string parses as a single mail address.
func ValidateEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

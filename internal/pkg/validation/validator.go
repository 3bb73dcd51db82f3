// Package validation holds the pure field-constraint checks that gate every
// write. Rules run in order and the first violation wins; nothing here
// touches storage.
package validation

import (
	"fmt"
	"regexp"

	"github.com/santiv/proyecta/internal/app/models"
	"github.com/santiv/proyecta/internal/pkg/apperrors"
)

// FieldError reports the first rule a field violated.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap makes every FieldError match apperrors.ErrValidationFailed.
func (e *FieldError) Unwrap() error {
	return apperrors.ErrValidationFailed
}

// stringRule describes the constraints for one field. Checks run in the
// order required, exact length, min/max length, pattern.
type stringRule struct {
	field      string
	value      string
	exactLen   int
	minLen     int
	maxLen     int
	pattern    *regexp.Regexp
	patternMsg string
}

func (r stringRule) check() *FieldError {
	if r.value == "" {
		return &FieldError{Field: r.field, Message: "must not be blank"}
	}
	if r.exactLen > 0 && len(r.value) != r.exactLen {
		return &FieldError{Field: r.field, Message: fmt.Sprintf("must be exactly %d characters", r.exactLen)}
	}
	if r.minLen > 0 && len(r.value) < r.minLen {
		return &FieldError{Field: r.field, Message: fmt.Sprintf("must be at least %d characters", r.minLen)}
	}
	if r.maxLen > 0 && len(r.value) > r.maxLen {
		return &FieldError{Field: r.field, Message: fmt.Sprintf("must not exceed %d characters", r.maxLen)}
	}
	if r.pattern != nil && !r.pattern.MatchString(r.value) {
		return &FieldError{Field: r.field, Message: r.patternMsg}
	}
	return nil
}

func checkAll(rules []stringRule) error {
	for _, r := range rules {
		if err := r.check(); err != nil {
			return err
		}
	}
	return nil
}

func emailRule(email string) stringRule {
	return stringRule{
		field:      "email",
		value:      email,
		maxLen:     EmailMaxLength,
		pattern:    CompiledPatterns.Email,
		patternMsg: "invalid email format",
	}
}

func passwordRule(password string) stringRule {
	return stringRule{
		field:  "password",
		value:  password,
		minLen: PasswordMinLength,
		maxLen: PasswordMaxLength,
	}
}

// ValidateGender accepts only the two registry genders.
func ValidateGender(gender string) error {
	if gender == "" {
		return &FieldError{Field: "gender", Message: "must not be blank"}
	}
	if gender != string(models.GenderMasculine) && gender != string(models.GenderFeminine) {
		return &FieldError{Field: "gender", Message: "must be 'Masculine' or 'Feminine'"}
	}
	return nil
}

// ValidateStudentRegistration checks the fields of a student registration
// before any of them reach the store.
func ValidateStudentRegistration(email, password, code string) error {
	return checkAll([]stringRule{
		emailRule(email),
		passwordRule(password),
		{
			field:      "code",
			value:      code,
			exactLen:   StudentCodeLength,
			pattern:    CompiledPatterns.StudentCode,
			patternMsg: "must be 'S' followed by 8 digits",
		},
	})
}

// ValidateCoordinatorRegistration checks the fields of a coordinator
// registration.
func ValidateCoordinatorRegistration(email, password, staffCode string) error {
	return checkAll([]stringRule{
		emailRule(email),
		passwordRule(password),
		{
			field:  "staffCode",
			value:  staffCode,
			minLen: StaffCodeMinLength,
			maxLen: StaffCodeMaxLength,
		},
	})
}

// ValidateProfileUpdate checks the personal-data fields of a profile update.
func ValidateProfileUpdate(email, phone, name, address, gender string) error {
	if err := checkAll([]stringRule{
		emailRule(email),
		{
			field:      "phone",
			value:      phone,
			exactLen:   PhoneLength,
			pattern:    CompiledPatterns.Phone,
			patternMsg: "must be 10 digits",
		},
		{field: "name", value: name, maxLen: NameMaxLength},
		{field: "address", value: address, maxLen: AddressMaxLength},
	}); err != nil {
		return err
	}
	return ValidateGender(gender)
}

// ValidateProject checks the fields of a new project.
func ValidateProject(name, description string) error {
	return checkAll([]stringRule{
		{field: "name", value: name, maxLen: ProjectNameMaxLength},
		{field: "description", value: description, maxLen: ProjectDescMaxLength},
	})
}

// ValidateCredentials checks the fields of a login attempt. Password content
// rules are not enforced here; an empty password is rejected outright.
func ValidateCredentials(email, password string) error {
	return checkAll([]stringRule{
		emailRule(email),
		{field: "password", value: password},
	})
}

package validation

import "regexp"

// Validation rule patterns
var (
	// EmailPattern accepts the usual mailbox@domain.tld shapes
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// StudentCodePattern is an 'S' followed by 8 digits
	StudentCodePattern = `^S\d{8}$`

	// PhonePattern is exactly 10 digits
	PhonePattern = `^\d{10}$`
)

// Field length limits
const (
	EmailMaxLength       = 100
	PasswordMinLength    = 6
	PasswordMaxLength    = 15
	NameMaxLength        = 100
	PhoneLength          = 10
	AddressMaxLength     = 255
	StudentCodeLength    = 9
	StaffCodeMinLength   = 5
	StaffCodeMaxLength   = 15
	ProjectNameMaxLength = 100
	ProjectDescMaxLength = 1000
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email       *regexp.Regexp
	StudentCode *regexp.Regexp
	Phone       *regexp.Regexp
}{
	Email:       regexp.MustCompile(EmailPattern),
	StudentCode: regexp.MustCompile(StudentCodePattern),
	Phone:       regexp.MustCompile(PhonePattern),
}

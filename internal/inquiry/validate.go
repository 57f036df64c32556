package inquiry

import (
	"regexp"
	"strings"
)

// emailPattern is the deliberately simplified check the contact form has
// always used: something, @, something, dot, something — no full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// phonePattern restricts phone numbers to digits, whitespace and -+()
// punctuation. At least ten digits must remain after stripping punctuation.
var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

const minPhoneDigits = 10

// Validate checks a raw submission and returns the sanitized fields accepted
// for persistence. It is pure: no side effects, safe to call repeatedly.
//
// The honeypot check runs before everything else so an automated submitter
// never sees a field-specific error.
func Validate(req SubmissionRequest) (Submission, error) {
	if strings.TrimSpace(req.Honeypot) != "" {
		return Submission{}, &ValidationError{Code: CodeBotDetected}
	}

	sub := Submission{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   strings.TrimSpace(req.Company),
		Service:   strings.TrimSpace(req.Service),
		Message:   strings.TrimSpace(req.Message),
		Timestamp: strings.TrimSpace(req.Timestamp),
		UserAgent: strings.TrimSpace(req.UserAgent),
		IP:        strings.TrimSpace(req.IP),
	}

	for _, rf := range []struct {
		field string
		value string
	}{
		{"name", sub.Name},
		{"email", sub.Email},
		{"phone", sub.Phone},
		{"message", sub.Message},
	} {
		if rf.value == "" {
			return Submission{}, &ValidationError{Code: CodeFieldMissing, Field: rf.field}
		}
	}

	if !emailPattern.MatchString(sub.Email) {
		return Submission{}, &ValidationError{Code: CodeInvalidEmail, Field: "email"}
	}

	if !validPhone(sub.Phone) {
		return Submission{}, &ValidationError{Code: CodeInvalidPhone, Field: "phone"}
	}

	if sub.IP == "" {
		sub.IP = "unknown"
	}

	return sub, nil
}

func validPhone(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	digits := nonDigit.ReplaceAllString(phone, "")
	return len(digits) >= minPhoneDigits
}

package phone

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Validator parses and normalizes phone numbers captured from forms.
type Validator struct {
	defaultRegion string
}

// NewValidator creates a validator with a default region for numbers
// submitted without a country prefix.
func NewValidator(defaultRegion string) *Validator {
	if defaultRegion == "" {
		defaultRegion = "US"
	}
	return &Validator{defaultRegion: strings.ToUpper(defaultRegion)}
}

// Normalize parses a raw phone string and returns it in E.164 format.
// An empty input is returned as-is.
func (v *Validator) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	num, err := phonenumbers.Parse(raw, v.defaultRegion)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %s", raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// NormalizeOrKeep normalizes when possible and falls back to the raw input.
// Lead capture never rejects a submission over an unparseable phone field.
func (v *Validator) NormalizeOrKeep(raw string) string {
	normalized, err := v.Normalize(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return normalized
}

// Package phone normalizes Moroccan mobile numbers to E.164.
//
// Sellers and customers type numbers in whatever shape they are used
// to (0606060606, +212 6 06 06 06 06, 212606060606, ...). Everything
// downstream (WhatsApp links, stored seller contacts) needs the
// canonical 212XXXXXXXXX digit string, so all input goes through
// Validate before it is stored or dialed. The 00-prefixed
// international form (00212...) is not recognized and fails
// validation.
package phone

import (
	"regexp"
	"strings"
)

// InputFormat classifies the shape of the number as entered
type InputFormat string

const (
	FormatLocal                 InputFormat = "local"
	FormatLocalWithZero         InputFormat = "local_with_zero"
	FormatInternational         InputFormat = "international"
	FormatInternationalWithZero InputFormat = "international_with_zero"
	FormatInvalid               InputFormat = "invalid"
)

// Result carries the outcome of a validation. Failures are reported
// here rather than as errors so callers can surface ErrorMessage
// directly to the user.
type Result struct {
	IsValid          bool        `json:"isValid"`
	NormalizedNumber string      `json:"normalizedNumber,omitempty"`
	CleanNumber      string      `json:"cleanNumber,omitempty"`
	DisplayNumber    string      `json:"displayNumber,omitempty"`
	InputFormat      InputFormat `json:"inputFormat"`
	ErrorMessage     string      `json:"errorMessage,omitempty"`
}

const countryCode = "212"

// Valid Moroccan mobile: country code, mobile prefix 6 or 7, then
// exactly 8 subscriber digits (12 digits total).
var mobilePattern = regexp.MustCompile(`^212[67]\d{8}$`)

var nonDigits = regexp.MustCompile(`\D`)

// Validate parses a free-form phone string and normalizes it to a
// Moroccan mobile number. It never panics; every failure mode is
// represented in the returned Result.
func Validate(input string) Result {
	if strings.TrimSpace(input) == "" {
		return invalid("Phone number is required")
	}

	digits := nonDigits.ReplaceAllString(input, "")
	if digits == "" {
		return invalid("Phone number must contain digits")
	}

	// Rewrite to country-coded form. First match wins.
	var clean string
	var format InputFormat
	switch {
	case strings.HasPrefix(digits, countryCode+"0"):
		// +212 0606060606 — redundant trunk zero after the country code
		clean = countryCode + digits[len(countryCode)+1:]
		format = FormatInternationalWithZero
	case strings.HasPrefix(digits, countryCode):
		clean = digits
		format = FormatInternational
	case strings.HasPrefix(digits, "0"):
		clean = countryCode + digits[1:]
		format = FormatLocalWithZero
	default:
		clean = countryCode + digits
		format = FormatLocal
	}

	if !mobilePattern.MatchString(clean) {
		if len(clean) != 12 {
			return invalid("Phone number must be exactly 9 digits after the leading 0 (12 digits with country code)")
		}
		return invalid("Phone number must be a Moroccan mobile number starting with 6 or 7")
	}

	return Result{
		IsValid:          true,
		NormalizedNumber: "+" + clean,
		CleanNumber:      clean,
		DisplayNumber:    FormatForDisplay(clean),
		InputFormat:      format,
	}
}

// FormatForDisplay renders a clean 12-digit number as
// "+212 XX XXX XXXX". Input that is not 12 digits is returned with
// just a plus prefix.
func FormatForDisplay(clean string) string {
	if len(clean) != 12 {
		return "+" + clean
	}
	return "+" + clean[0:3] + " " + clean[3:5] + " " + clean[5:8] + " " + clean[8:12]
}

func invalid(msg string) Result {
	return Result{
		IsValid:      false,
		InputFormat:  FormatInvalid,
		ErrorMessage: msg,
	}
}

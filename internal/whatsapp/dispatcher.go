package whatsapp

import (
	"fmt"
	"net/url"
	"regexp"

	"drinks-marketplace-service/internal/phone"
)

const baseURL = "https://wa.me/"

var nonDigits = regexp.MustCompile(`\D`)

// minFallbackDigits is the floor for numbers that fail Moroccan
// normalization but may still be reachable internationally.
const minFallbackDigits = 10

// BuildLink produces a wa.me deep link carrying the message for the
// given phone number.
//
// Numbers that normalize as Moroccan mobiles use the canonical
// 212XXXXXXXXX form. Anything else falls back to the raw digit
// string, accepted when it has at least 10 digits; shorter numbers
// return an error. (The legacy client silently dropped those sends,
// which left users staring at a checkout that went nowhere.)
func BuildLink(phoneNumber, message string) (string, error) {
	digits := nonDigits.ReplaceAllString(phoneNumber, "")

	if res := phone.Validate(phoneNumber); res.IsValid {
		digits = res.CleanNumber
	} else if len(digits) < minFallbackDigits {
		return "", fmt.Errorf("phone number %q is too short for a WhatsApp link: %s", phoneNumber, res.ErrorMessage)
	}

	return baseURL + digits + "?text=" + url.QueryEscape(message), nil
}

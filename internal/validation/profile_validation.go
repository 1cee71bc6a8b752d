// Package validation checks seller profiles for the fields a buyer
// needs before the profile can go live on the marketplace.
package validation

import (
	"strings"

	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/phone"
)

// MissingField describes one missing required profile field
type MissingField struct {
	Field       string `json:"field"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ProfileValidationResult is recomputed on every profile read or
// edit and never stored.
type ProfileValidationResult struct {
	IsComplete           bool           `json:"isComplete"`
	MissingFields        []string       `json:"missingFields"`
	MissingFieldsDetails []MissingField `json:"missingFieldsDetails"`
}

type requiredField struct {
	field       string
	label       string
	description string
	validate    func(*models.Seller) bool
}

var requiredFields = []requiredField{
	{
		field:       "business_name",
		label:       "Business Name",
		description: "The name buyers see on your listing",
		validate: func(s *models.Seller) bool {
			return strings.TrimSpace(s.BusinessName) != ""
		},
	},
	{
		field:       "address",
		label:       "Address",
		description: "Where customers pick up their order",
		validate: func(s *models.Seller) bool {
			return strings.TrimSpace(s.Address) != ""
		},
	},
	{
		field:       "phone",
		label:       "Phone Number",
		description: "Moroccan mobile number customers order through on WhatsApp",
		validate: func(s *models.Seller) bool {
			return phone.Validate(s.Phone).IsValid
		},
	},
}

// ValidateSellerProfile checks a seller snapshot against the required
// field list. A nil profile reports every required field missing.
func ValidateSellerProfile(seller *models.Seller) ProfileValidationResult {
	result := ProfileValidationResult{
		MissingFields:        []string{},
		MissingFieldsDetails: []MissingField{},
	}

	for _, rf := range requiredFields {
		if seller != nil && rf.validate(seller) {
			continue
		}
		result.MissingFields = append(result.MissingFields, rf.field)
		result.MissingFieldsDetails = append(result.MissingFieldsDetails, MissingField{
			Field:       rf.field,
			Label:       rf.label,
			Description: rf.description,
		})
	}

	result.IsComplete = len(result.MissingFields) == 0
	return result
}

// MissingFieldsSummary renders the missing field labels as a sentence:
// "Missing: A", "Missing: A and B", "Missing: A, B, and C".
func MissingFieldsSummary(result ProfileValidationResult) string {
	labels := make([]string, 0, len(result.MissingFieldsDetails))
	for _, f := range result.MissingFieldsDetails {
		labels = append(labels, f.Label)
	}

	switch len(labels) {
	case 0:
		return ""
	case 1:
		return "Missing: " + labels[0]
	case 2:
		return "Missing: " + labels[0] + " and " + labels[1]
	default:
		return "Missing: " + strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
	}
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"drinks-marketplace-service/internal/models"
)

func completeSeller() *models.Seller {
	return &models.Seller{
		BusinessName: "Atay Corner",
		Address:      "12 Rue des Orangers, Marrakech",
		Phone:        "0606060606",
	}
}

func TestValidateSellerProfile_Complete(t *testing.T) {
	res := ValidateSellerProfile(completeSeller())

	assert.True(t, res.IsComplete)
	assert.Empty(t, res.MissingFields)
	assert.Empty(t, res.MissingFieldsDetails)
	assert.Equal(t, "", MissingFieldsSummary(res))
}

func TestValidateSellerProfile_NilProfile(t *testing.T) {
	res := ValidateSellerProfile(nil)

	assert.False(t, res.IsComplete)
	assert.Equal(t, []string{"business_name", "address", "phone"}, res.MissingFields)
	assert.Len(t, res.MissingFieldsDetails, 3)
}

func TestValidateSellerProfile_BlankAndWhitespaceFields(t *testing.T) {
	s := completeSeller()
	s.BusinessName = "   "
	s.Address = ""

	res := ValidateSellerProfile(s)

	assert.False(t, res.IsComplete)
	assert.Equal(t, []string{"business_name", "address"}, res.MissingFields)
}

func TestValidateSellerProfile_InvalidPhone(t *testing.T) {
	s := completeSeller()
	s.Phone = "0506060606" // landline prefix, not a mobile

	res := ValidateSellerProfile(s)

	assert.False(t, res.IsComplete)
	assert.Equal(t, []string{"phone"}, res.MissingFields)
	assert.Equal(t, "Phone Number", res.MissingFieldsDetails[0].Label)
}

func TestMissingFieldsSummary_Grammar(t *testing.T) {
	one := ValidateSellerProfile(&models.Seller{
		BusinessName: "Atay Corner",
		Address:      "12 Rue des Orangers",
	})
	assert.Equal(t, "Missing: Phone Number", MissingFieldsSummary(one))

	two := ValidateSellerProfile(&models.Seller{Address: "12 Rue des Orangers"})
	assert.Equal(t, "Missing: Business Name and Phone Number", MissingFieldsSummary(two))

	three := ValidateSellerProfile(nil)
	assert.Equal(t, "Missing: Business Name, Address, and Phone Number", MissingFieldsSummary(three))
}

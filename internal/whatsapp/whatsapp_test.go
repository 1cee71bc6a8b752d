package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drinks-marketplace-service/internal/models"
)

func strPtr(s string) *string { return &s }

func testSeller() *models.Seller {
	return &models.Seller{
		BusinessName: "Atay Corner",
		Phone:        "0606060606",
	}
}

func testCheckout() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Items: []models.OrderItem{
			{DrinkID: uuid.New(), Name: "Mint Tea", UnitPrice: 12, Quantity: 2},
			{DrinkID: uuid.New(), Name: "Orange Juice", UnitPrice: 15.5, Quantity: 1, Note: strPtr("no ice")},
		},
	}
}

func TestFormatOrderMessage_FullOrder(t *testing.T) {
	req := testCheckout()
	req.CustomerName = strPtr("Sara")
	req.CustomerPhone = strPtr("0612345678")
	req.PickupTime = strPtr("18:30")
	req.Instructions = strPtr("less sugar")

	msg := FormatOrderMessage(testSeller(), req, 39.5)

	assert.Contains(t, msg, "Seller: Atay Corner (+212 60 606 0606)")
	assert.Contains(t, msg, "1. Mint Tea x2 - 24 Dh")
	assert.Contains(t, msg, "2. Orange Juice x1 - 15.5 Dh")
	assert.Contains(t, msg, "   Note: no ice")
	assert.Contains(t, msg, "Total: 39.5 Dh")
	assert.Contains(t, msg, "Customer: Sara")
	assert.Contains(t, msg, "Phone: +212 61 234 5678")
	assert.Contains(t, msg, "Pickup: 18:30")
	assert.Contains(t, msg, "Instructions: less sugar")
	assert.Contains(t, msg, "Sent via Drinks Near You")
}

func TestFormatOrderMessage_OmitsAbsentFields(t *testing.T) {
	msg := FormatOrderMessage(testSeller(), testCheckout(), 39.5)

	assert.NotContains(t, msg, "Customer:")
	assert.NotContains(t, msg, "Pickup:")
	assert.NotContains(t, msg, "Instructions:")
	// Item note still present: it belongs to the cart line, not the customer
	assert.Contains(t, msg, "Note: no ice")
}

func TestFormatOrderMessage_LineNumbering(t *testing.T) {
	msg := FormatOrderMessage(testSeller(), testCheckout(), 39.5)

	first := strings.Index(msg, "1. Mint Tea")
	second := strings.Index(msg, "2. Orange Juice")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestBuildLink_NormalizedMoroccanNumber(t *testing.T) {
	link, err := BuildLink("0606060606", "hello order")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/212606060606?text="), link)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "hello order", u.Query().Get("text"))
}

func TestBuildLink_ForeignNumberFallback(t *testing.T) {
	// Not a Moroccan mobile, but long enough to dial internationally
	link, err := BuildLink("+33 6 12 34 56 78", "bonjour")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/33612345678?text="), link)
}

func TestBuildLink_TooShortIsAnError(t *testing.T) {
	_, err := BuildLink("12345", "hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestBuildLink_MessageEncodingRoundTrip(t *testing.T) {
	msg := FormatOrderMessage(testSeller(), testCheckout(), 39.5)
	link, err := BuildLink("0606060606", msg)
	require.NoError(t, err)

	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, msg, u.Query().Get("text"))
}

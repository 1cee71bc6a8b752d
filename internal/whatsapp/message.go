// Package whatsapp renders order messages and builds wa.me deep
// links. The service never sends anything itself: the link is handed
// back to the client, which opens WhatsApp with the message
// pre-filled for the seller.
package whatsapp

import (
	"fmt"
	"strconv"
	"strings"

	"drinks-marketplace-service/internal/models"
	"drinks-marketplace-service/internal/phone"
)

// FormatOrderMessage renders the fixed order template sent to the
// seller. Absent optional fields are omitted, never defaulted.
func FormatOrderMessage(seller *models.Seller, req *models.CheckoutRequest, total float64) string {
	var b strings.Builder

	b.WriteString("🛒 New Order\n")
	b.WriteString("Seller: " + seller.BusinessName)
	if res := phone.Validate(seller.Phone); res.IsValid {
		b.WriteString(" (" + res.DisplayNumber + ")")
	}
	b.WriteString("\n\n")

	for i, item := range req.Items {
		line := fmt.Sprintf("%d. %s x%d - %s Dh", i+1, item.Name, item.Quantity, formatDh(item.UnitPrice*float64(item.Quantity)))
		b.WriteString(line + "\n")
		if item.Note != nil && *item.Note != "" {
			b.WriteString("   Note: " + *item.Note + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("Total: " + formatDh(total) + " Dh\n")

	if req.CustomerName != nil && *req.CustomerName != "" {
		b.WriteString("\nCustomer: " + *req.CustomerName + "\n")
	}
	if req.CustomerPhone != nil && *req.CustomerPhone != "" {
		customerPhone := *req.CustomerPhone
		if res := phone.Validate(customerPhone); res.IsValid {
			customerPhone = res.DisplayNumber
		}
		b.WriteString("Phone: " + customerPhone + "\n")
	}
	if req.PickupTime != nil && *req.PickupTime != "" {
		b.WriteString("Pickup: " + *req.PickupTime + "\n")
	}
	if req.Instructions != nil && *req.Instructions != "" {
		b.WriteString("Instructions: " + *req.Instructions + "\n")
	}

	b.WriteString("\nSent via Drinks Near You")
	return b.String()
}

// formatDh renders a dirham amount without trailing zeros (24, 24.5)
func formatDh(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

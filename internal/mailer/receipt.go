package mailer

import (
	"fmt"
	"html"
	"strings"

	"petsitter/internal/domain"
)

// receiptHTML renders the confirmation e-receipt for a booking.
func receiptHTML(userName string, b *domain.Booking) string {
	row := func(label, value string) string {
		return fmt.Sprintf(
			`<tr><td style="border: 1px solid #ddd; padding: 8px; font-weight: bold;">%s</td><td style="border: 1px solid #ddd; padding: 8px;">%s</td></tr>`,
			label, html.EscapeString(value))
	}

	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #667eea; padding: 20px;">`)
	sb.WriteString(`<h2 style="color: #667eea;">Booking Confirmed! (Official E-Receipt)</h2>`)
	sb.WriteString(fmt.Sprintf(`<p>Hello %s,</p>`, html.EscapeString(userName)))
	sb.WriteString(`<p>Ito ang detalye ng inyong serbisyo. Ang inyong booking ay matagumpay na naitala!</p>`)
	sb.WriteString(`<table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">`)
	sb.WriteString(row("Booking ID:", fmt.Sprintf("%d", b.ID)))
	sb.WriteString(row("Sitter:", b.SitterName))
	sb.WriteString(row("Date &amp; Time:", fmt.Sprintf("%s at %s", b.Date, b.Time)))
	sb.WriteString(row("Payment Method:", strings.ToUpper(string(b.PaymentMethod))))
	sb.WriteString(`</table>`)
	sb.WriteString(fmt.Sprintf(`<h3 style="color: #28a745;">TOTAL AMOUNT: ₱%.2f</h3>`, b.TotalPrice))
	sb.WriteString(`<p style="font-size: 0.9em; color: #888;">*Reminder: Please check your payment status on the app. Cash payments are due upon service.*</p>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

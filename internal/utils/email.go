package utils

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/wneessen/go-mail"

	"namo_back_end/internal/models"
)

// SendOrderConfirmation emails the customer after checkout. Callers treat it
// as best-effort: a missing SMTP configuration or a delivery failure never
// fails the order.
func SendOrderConfirmation(order models.Order) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return fmt.Errorf("SMTP not configured")
	}

	msg := mail.NewMsg()
	if err := msg.From(getenvDefault("SMTP_FROM", "noreply@namoshop.in")); err != nil {
		return err
	}
	if err := msg.To(order.Email); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Namo — order %s confirmed", order.ID))
	msg.SetBodyString(mail.TypeTextHTML, orderConfirmationHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Sending order confirmation to", order.Email)
	return client.DialAndSend(msg)
}

func orderConfirmationHTML(order models.Order) string {
	var items strings.Builder
	for _, item := range order.Items {
		fmt.Fprintf(&items, `
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>₹%s</td>
			</tr>`, item.Name, item.Quantity, item.Price.StringFixed(2))
	}

	payment := "Pay on delivery"
	if order.PaymentMethod == models.PaymentUPI {
		payment = "UPI"
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Thank you for your order, %s!</h2>
		<p>Your order <strong>%s</strong> has been received and is now <strong>%s</strong>.</p>
		<table style="width: 100%%; border-collapse: collapse;">%s</table>
		<p>Total: <strong>₹%s</strong> · Payment: %s</p>
		<p>Shipping to: %s</p>
	</div>
</body>
</html>`, order.Name, order.ID, order.Status, items.String(),
		order.TotalPrice.StringFixed(2), payment, order.Address)
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/nomanchughtai306/tuck-shop-manager/internal/model"
)

// ReceiptMessage renders the human-readable dues receipt for a loan. The
// wording and layout are load-bearing: customers already receive this exact
// text, so any change here is a visible product change.
func ReceiptMessage(loan *model.Loan, shopName string) string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"This is a receipt from %s.\n"+
			"Items: %s\n"+
			"Total Amount: PKR %s\n"+
			"Date: %s\n\n"+
			"Please clear your dues at your earliest convenience. Thank you!",
		loan.CustomerName,
		shopName,
		loan.ProductTaken,
		loan.Amount.String(),
		loan.DateAdded.Format("02 Jan, 03:04 PM"),
	)
}

// NormalizePhone strips every non-digit character and replaces a leading
// local trunk "0" with the country code, e.g. "0300-1234567" → "923001234567".
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if strings.HasPrefix(digits, "0") {
		return countryCode + digits[1:]
	}
	return digits
}

// WhatsAppLink builds the wa.me deep link with the receipt message
// percent-encoded as the text query parameter.
func WhatsAppLink(loan *model.Loan, shopName, countryCode string) string {
	msg := ReceiptMessage(loan, shopName)
	phone := NormalizePhone(loan.PhoneNumber, countryCode)
	return "https://wa.me/" + phone + "?text=" + encodeMessage(msg)
}

// encodeMessage percent-encodes with %20 for spaces — messaging apps do not
// decode the form-style "+".
func encodeMessage(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

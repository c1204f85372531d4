package utils

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/skip2/go-qrcode"
)

// UPILink builds the scan-to-pay deep link the checkout QR encodes.
func UPILink(upiID string, amount decimal.Decimal) string {
	return fmt.Sprintf("upi://pay?pa=%s&am=%s&cu=INR",
		url.QueryEscape(upiID), amount.StringFixed(2))
}

// GenerateUPIQR renders the UPI link as a base64 PNG ready for <img src="...">.
func GenerateUPIQR(upiID string, amount decimal.Decimal) (string, string, error) {
	link := UPILink(upiID, amount)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return "", "", err
	}
	return link, "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

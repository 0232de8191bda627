package utils

import (
	"encoding/base64"
	"encoding/json"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// BadgePayload is what gets encoded into an employee's badge QR code.
type BadgePayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Job      string `json:"job"`
	Dept     string `json:"dept"`
	HasPhoto bool   `json:"hasPhoto"`
	Date     string `json:"date"`
}

// GenerateBadgeQR encodes the badge payload as a PNG data URL. Date is the
// calendar date of generation, not a timestamp.
func GenerateBadgeQR(employeeID, fullName, jobTitle, department string, hasPhoto bool, now time.Time) (string, error) {
	payload := BadgePayload{
		ID:       employeeID,
		Name:     fullName,
		Job:      jobTitle,
		Dept:     department,
		HasPhoto: hasPhoto,
		Date:     now.Format("2006-01-02"),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	png, err := qrcode.Encode(string(data), qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

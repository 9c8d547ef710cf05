package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skip2/go-qrcode"
)

// GenerateTableQR writes the dine-in QR code for a table under dir and
// returns the path to store on the table record. The encoded URL is what
// customers scan to open the ordering page for that table.
func GenerateTableQR(baseURL, tableNumber string, tableID uint, dir string) (string, error) {
	qrDir := filepath.Join(dir, "qrcodes")
	if err := os.MkdirAll(qrDir, 0o755); err != nil {
		return "", fmt.Errorf("creating qr directory: %w", err)
	}

	tableURL := fmt.Sprintf("%s/dine-in?table=%s", baseURL, tableNumber)
	filename := fmt.Sprintf("table_%d_qrcode.png", tableID)
	fullPath := filepath.Join(qrDir, filename)

	if err := qrcode.WriteFile(tableURL, qrcode.Medium, 300, fullPath); err != nil {
		return "", fmt.Errorf("writing qr code: %w", err)
	}

	return "/uploads/qrcodes/" + filename, nil
}

package services

import (
	"fmt"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/Poopyy17/Wings/models"
)

// randDigits is a package variable so tests can force collisions.
var randDigits = func() int { return rand.Intn(10000) }

const ticketNumberAttempts = 3

func newTicketNumber(isTakeout bool) string {
	prefix := "T"
	if isTakeout {
		prefix = "TO"
	}
	return fmt.Sprintf("%s%s-%04d", prefix, time.Now().Format("060102"), randDigits())
}

// allocateTicketNumber returns a ticket number not yet present in the
// database. The date-plus-random format leaves a small collision window, so
// allocation retries a few times before giving up rather than silently
// reusing a number.
func allocateTicketNumber(tx *gorm.DB, isTakeout bool) (string, error) {
	for i := 0; i < ticketNumberAttempts; i++ {
		number := newTicketNumber(isTakeout)

		var count int64
		if err := tx.Model(&models.OrderTicket{}).Where("ticket_number = ?", number).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return number, nil
		}
	}
	return "", fmt.Errorf("could not allocate a unique ticket number after %d attempts", ticketNumberAttempts)
}

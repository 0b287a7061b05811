package reviews

import (
	"time"
)

type Review struct {
	ID         string    `json:"id"`
	AdvisorID  string    `json:"advisorId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"` // 1-5
	Comment    string    `json:"comment"`
	Timestamp  time.Time `json:"timestamp"`
	IsVerified bool      `json:"isVerified"`
}

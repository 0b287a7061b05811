package advisors

import (
	"errors"
	"investorshield/internal/store"
)

var ErrNotFound = errors.New("advisor not found")

type Advisor struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	RegNumber       store.NullString `json:"regNumber" swaggertype:"string"`
	IsRegistered    bool             `json:"isRegistered"`
	ComplaintsCount int              `json:"complaintsCount"`
	TrustScore      int              `json:"trustScore"` // 0-100
	YearsExperience int              `json:"yearsExperience"`
	Specialization  store.NullString `json:"specialization" swaggertype:"string"`
}

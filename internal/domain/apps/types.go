package apps

import (
	"errors"
	"investorshield/internal/store"
)

var ErrNotFound = errors.New("app not found")

type App struct {
	ID             string           `json:"id"`
	AppName        string           `json:"appName"`
	URL            store.NullString `json:"url" swaggertype:"string"`
	Developer      string           `json:"developer"`
	IsLegit        bool             `json:"isLegit"`
	RiskFactors    []string         `json:"riskFactors"`
	Recommendation string           `json:"recommendation"`
}

// clone copies the risk factor slice so stored records never share backing
// arrays with callers.
func (a App) clone() App {
	a.RiskFactors = append(make([]string, 0, len(a.RiskFactors)), a.RiskFactors...)
	return a
}

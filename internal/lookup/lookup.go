// Package lookup resolves advisors and trading apps against the registry.
package lookup

import (
	"context"
	"errors"
	"investorshield/internal/domain/advisors"
	"investorshield/internal/domain/apps"
	"investorshield/internal/store"
	"strings"
)

const unverifiedAppRecommendation = "⚠️ This app is not in our verified database. Exercise extreme caution and verify legitimacy before use."

// UnverifiedAppRiskFactors are attached to every app synthesized for an
// unknown name.
func UnverifiedAppRiskFactors() []string {
	return []string{
		"App not found in verified database",
		"Unknown developer",
		"No regulatory registration found",
	}
}

type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchRegNumber
	MatchName
)

func (k MatchKind) String() string {
	switch k {
	case MatchRegNumber:
		return "reg_number"
	case MatchName:
		return "name"
	default:
		return "none"
	}
}

// AdvisorMatch is the outcome of an advisor lookup. Advisor is nil when By is
// MatchNone.
type AdvisorMatch struct {
	Advisor *advisors.Advisor
	By      MatchKind
}

func (m AdvisorMatch) Found() bool {
	return m.By != MatchNone && m.Advisor != nil
}

type AppStatus string

const (
	StatusLegitimate AppStatus = "legitimate"
	StatusSuspicious AppStatus = "suspicious"
)

// AppCheck is the outcome of an app lookup. Synthesized is true when the app
// was unknown and a suspicious record was created for it by this call.
type AppCheck struct {
	App         apps.App
	Synthesized bool
}

func (c AppCheck) Status() AppStatus {
	if c.App.IsLegit {
		return StatusLegitimate
	}
	return StatusSuspicious
}

type Service struct {
	advisors advisors.Store
	apps     apps.Store
}

func NewService(advisorStore advisors.Store, appStore apps.Store) *Service {
	return &Service{advisors: advisorStore, apps: appStore}
}

// FindAdvisor tries an exact registration number match first, when one is
// given, then falls back to a case-insensitive substring match on the name.
// Several advisors may contain the same substring; the earliest inserted wins.
func (s *Service) FindAdvisor(ctx context.Context, name, regNumber string) (AdvisorMatch, error) {
	if regNumber = strings.TrimSpace(regNumber); regNumber != "" {
		a, err := s.advisors.GetByRegNumber(ctx, regNumber)
		switch {
		case err == nil:
			return AdvisorMatch{Advisor: a, By: MatchRegNumber}, nil
		case !errors.Is(err, advisors.ErrNotFound):
			return AdvisorMatch{}, err
		}
	}

	a, err := s.advisors.GetByName(ctx, name)
	switch {
	case err == nil:
		return AdvisorMatch{Advisor: a, By: MatchName}, nil
	case errors.Is(err, advisors.ErrNotFound):
		return AdvisorMatch{By: MatchNone}, nil
	default:
		return AdvisorMatch{}, err
	}
}

// FindApp matches name case-insensitively against known app names. An
// unknown name is persisted as a suspicious app, so later checks for the same
// name return that record instead of creating another.
func (s *Service) FindApp(ctx context.Context, name, url string) (AppCheck, error) {
	app, created, err := s.apps.FindOrCreate(ctx, name, func() apps.App {
		return apps.App{
			AppName:        name,
			URL:            store.NewNullString(url),
			Developer:      "Unknown",
			IsLegit:        false,
			RiskFactors:    UnverifiedAppRiskFactors(),
			Recommendation: unverifiedAppRecommendation,
		}
	})
	if err != nil {
		return AppCheck{}, err
	}

	return AppCheck{App: *app, Synthesized: created}, nil
}

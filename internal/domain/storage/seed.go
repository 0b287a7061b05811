package storage

import (
	"context"
	"fmt"
	"investorshield/internal/domain/advisors"
	"investorshield/internal/domain/apps"
	"investorshield/internal/domain/reviews"
	"investorshield/internal/store"

	"github.com/google/uuid"
)

const legitimateBrokerRecommendation = "✅ This is a legitimate and SEBI registered broker. Safe to use for trading."

func seedAdvisors() []advisors.Advisor {
	return []advisors.Advisor{
		{
			Name:            "Rajesh Kumar",
			RegNumber:       store.NewNullString("INH200001234"),
			IsRegistered:    true,
			ComplaintsCount: 1,
			TrustScore:      85,
			YearsExperience: 6,
			Specialization:  store.NewNullString("Investment Advisory"),
		},
		{
			Name:            "Dr. Priya Sharma",
			RegNumber:       store.NewNullString("INH200005678"),
			IsRegistered:    true,
			ComplaintsCount: 0,
			TrustScore:      94,
			YearsExperience: 8,
			Specialization:  store.NewNullString("Portfolio Management"),
		},
		{
			Name:            "Amit Sharma",
			RegNumber:       store.NewNullString("INH200009012"),
			IsRegistered:    true,
			ComplaintsCount: 0,
			TrustScore:      92,
			YearsExperience: 5,
			Specialization:  store.NewNullString("Mutual Fund Advisory"),
		},
	}
}

func seedApps() []apps.App {
	return []apps.App{
		{
			AppName:   "QuickTrade Pro",
			URL:       store.NewNullString("quicktradepro.net"),
			Developer: "Unknown",
			IsLegit:   false,
			RiskFactors: []string{
				"Domain registered less than 6 months ago",
				`Logo matches legitimate broker "TradeSafe"`,
				"No SEBI registration found",
			},
			Recommendation: "⚠️ Do not use this app for trading or provide personal information. Consider using verified brokers from our legitimate brokers list.",
		},
		{
			AppName:        "Zerodha",
			URL:            store.NewNullString("zerodha.com"),
			Developer:      "Zerodha Broking Ltd",
			IsLegit:        true,
			RiskFactors:    []string{},
			Recommendation: legitimateBrokerRecommendation,
		},
		{
			AppName:        "Upstox",
			URL:            store.NewNullString("upstox.com"),
			Developer:      "RKSV Securities India Pvt Ltd",
			IsLegit:        true,
			RiskFactors:    []string{},
			Recommendation: legitimateBrokerRecommendation,
		},
	}
}

// Seed loads the fixture advisors, apps and reviews. The seeded reviews
// belong to user IDs that are never registered.
func (c *Container) Seed(ctx context.Context) error {
	var seeded []advisors.Advisor
	for _, a := range seedAdvisors() {
		if err := c.Advisors.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed advisor %q: %w", a.Name, err)
		}
		seeded = append(seeded, a)
	}

	for _, a := range seedApps() {
		if err := c.Apps.Create(ctx, &a); err != nil {
			return fmt.Errorf("seed app %q: %w", a.AppName, err)
		}
	}

	fixtures := []reviews.Review{
		{
			AdvisorID:  seeded[0].ID,
			UserID:     uuid.New().String(),
			Rating:     4,
			Comment:    "Professional and knowledgeable. Helped me understand my investment options clearly.",
			IsVerified: true,
		},
		{
			AdvisorID:  seeded[0].ID,
			UserID:     uuid.New().String(),
			Rating:     5,
			Comment:    "Excellent advice on mutual funds. Very professional and transparent about fees. Highly recommend for long-term investment planning.",
			IsVerified: true,
		},
	}
	for _, rv := range fixtures {
		if err := c.Reviews.Create(ctx, &rv); err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}

	return nil
}

// NewSeededContainer is NewContainer followed by Seed.
func NewSeededContainer(ctx context.Context, opts ...Option) (*Container, error) {
	c := NewContainer(opts...)
	if err := c.Seed(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

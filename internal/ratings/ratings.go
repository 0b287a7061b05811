// Package ratings aggregates advisor reviews into averages, rankings and a
// recent-activity feed.
package ratings

import (
	"context"
	"errors"
	"investorshield/internal/domain/advisors"
	"investorshield/internal/domain/reviews"
	"investorshield/internal/domain/users"
	"sort"
)

const (
	UnknownAdvisorName = "Unknown Advisor"
	AnonymousUserName  = "Anonymous"
)

type Summary struct {
	Count int     `json:"reviewCount"`
	Mean  float64 `json:"avgRating"`
}

type RatedAdvisor struct {
	advisors.Advisor
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

type DecoratedReview struct {
	reviews.Review
	AdvisorName string `json:"advisorName"`
	UserName    string `json:"userName"`
}

type Service struct {
	advisors advisors.Store
	users    users.Store
	reviews  reviews.Store
}

func NewService(advisorStore advisors.Store, userStore users.Store, reviewStore reviews.Store) *Service {
	return &Service{advisors: advisorStore, users: userStore, reviews: reviewStore}
}

func summarize(rs []reviews.Review) Summary {
	if len(rs) == 0 {
		return Summary{}
	}
	sum := 0
	for _, r := range rs {
		sum += r.Rating
	}
	return Summary{Count: len(rs), Mean: float64(sum) / float64(len(rs))}
}

// AverageRating returns the review count and mean rating of an advisor, or a
// zero Summary when it has no reviews.
func (s *Service) AverageRating(ctx context.Context, advisorID string) (Summary, error) {
	rs, err := s.reviews.ListByAdvisor(ctx, advisorID)
	if err != nil {
		return Summary{}, err
	}
	return summarize(rs), nil
}

// TopRatedAdvisors ranks advisors with at least one review by mean rating,
// highest first. Ties keep advisor insertion order.
func (s *Service) TopRatedAdvisors(ctx context.Context, limit int) ([]RatedAdvisor, error) {
	if limit <= 0 {
		return []RatedAdvisor{}, nil
	}

	all, err := s.advisors.All(ctx)
	if err != nil {
		return nil, err
	}
	rs, err := s.reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	byAdvisor := make(map[string][]reviews.Review)
	for _, r := range rs {
		byAdvisor[r.AdvisorID] = append(byAdvisor[r.AdvisorID], r)
	}

	rated := make([]RatedAdvisor, 0, len(all))
	for _, a := range all {
		sum := summarize(byAdvisor[a.ID])
		if sum.Count == 0 {
			continue
		}
		rated = append(rated, RatedAdvisor{Advisor: a, AvgRating: sum.Mean, ReviewCount: sum.Count})
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AvgRating > rated[j].AvgRating
	})

	if limit < len(rated) {
		rated = rated[:limit]
	}
	return rated, nil
}

// RecentReviews returns the newest reviews first, each labelled with the
// advisor and user names. Reviews with equal timestamps are ordered by
// insertion, latest first. Missing advisors or users get placeholder names.
func (s *Service) RecentReviews(ctx context.Context, limit int) ([]DecoratedReview, error) {
	if limit <= 0 {
		return []DecoratedReview{}, nil
	}

	rs, err := s.reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].Timestamp.After(rs[j].Timestamp)
	})

	if limit < len(rs) {
		rs = rs[:limit]
	}

	out := make([]DecoratedReview, 0, len(rs))
	for _, r := range rs {
		advisorName, err := s.advisorName(ctx, r.AdvisorID)
		if err != nil {
			return nil, err
		}
		userName, err := s.userName(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, DecoratedReview{Review: r, AdvisorName: advisorName, UserName: userName})
	}
	return out, nil
}

func (s *Service) advisorName(ctx context.Context, id string) (string, error) {
	a, err := s.advisors.GetByID(ctx, id)
	switch {
	case err == nil:
		return a.Name, nil
	case errors.Is(err, advisors.ErrNotFound):
		return UnknownAdvisorName, nil
	default:
		return "", err
	}
}

func (s *Service) userName(ctx context.Context, id string) (string, error) {
	u, err := s.users.GetByID(ctx, id)
	switch {
	case err == nil:
		return u.Name, nil
	case errors.Is(err, users.ErrNotFound):
		return AnonymousUserName, nil
	default:
		return "", err
	}
}

package lookup

import (
	"context"
	"investorshield/internal/domain/advisors"
	"investorshield/internal/domain/storage"
	"investorshield/internal/store"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) (*Service, *storage.Container) {
	t.Helper()
	c, err := storage.NewSeededContainer(context.Background())
	require.NoError(t, err)
	return NewService(c.Advisors, c.Apps), c
}

func TestFindAdvisor_ByName(t *testing.T) {
	svc, _ := newSeededService(t)

	m, err := svc.FindAdvisor(context.Background(), "Rajesh Kumar", "")
	require.NoError(t, err)
	require.True(t, m.Found())
	assert.Equal(t, MatchName, m.By)
	assert.Equal(t, "Rajesh Kumar", m.Advisor.Name)
	assert.Equal(t, 85, m.Advisor.TrustScore)
	assert.Equal(t, 1, m.Advisor.ComplaintsCount)
}

func TestFindAdvisor_RegNumberTakesPriority(t *testing.T) {
	svc, _ := newSeededService(t)

	m, err := svc.FindAdvisor(context.Background(), "Rajesh", "INH200005678")
	require.NoError(t, err)
	require.True(t, m.Found())
	assert.Equal(t, MatchRegNumber, m.By)
	assert.Equal(t, "Dr. Priya Sharma", m.Advisor.Name)

	m, err = svc.FindAdvisor(context.Background(), "no such person", "INH200005678")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Priya Sharma", m.Advisor.Name)
}

func TestFindAdvisor_UnknownRegNumberFallsBackToName(t *testing.T) {
	svc, _ := newSeededService(t)

	m, err := svc.FindAdvisor(context.Background(), "amit", "INH999999999")
	require.NoError(t, err)
	require.True(t, m.Found())
	assert.Equal(t, MatchName, m.By)
	assert.Equal(t, "Amit Sharma", m.Advisor.Name)
}

// "sharma" is contained in two seeded names; the earlier inserted advisor is
// returned.
func TestFindAdvisor_SubstringTieBreakIsInsertionOrder(t *testing.T) {
	svc, _ := newSeededService(t)

	m, err := svc.FindAdvisor(context.Background(), "SHARMA", "")
	require.NoError(t, err)
	require.True(t, m.Found())
	assert.Equal(t, "Dr. Priya Sharma", m.Advisor.Name)
}

func TestFindAdvisor_NotFoundIsNotAnError(t *testing.T) {
	svc, _ := newSeededService(t)

	m, err := svc.FindAdvisor(context.Background(), "Nobody Known", "")
	require.NoError(t, err)
	assert.False(t, m.Found())
	assert.Equal(t, MatchNone, m.By)
	assert.Nil(t, m.Advisor)
	assert.Equal(t, "none", m.By.String())
}

func TestFindAdvisor_AdvisorWithoutRegNumber(t *testing.T) {
	svc, c := newSeededService(t)
	ctx := context.Background()

	require.NoError(t, c.Advisors.Create(ctx, &advisors.Advisor{Name: "Unlisted Planner"}))

	m, err := svc.FindAdvisor(ctx, "unlisted", "")
	require.NoError(t, err)
	require.True(t, m.Found())
	assert.False(t, m.Advisor.RegNumber.Valid)
}

func TestFindApp_KnownApps(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	check, err := svc.FindApp(ctx, "zerodha", "")
	require.NoError(t, err)
	assert.False(t, check.Synthesized)
	assert.Equal(t, StatusLegitimate, check.Status())
	assert.Empty(t, check.App.RiskFactors)

	check, err = svc.FindApp(ctx, "QuickTrade", "")
	require.NoError(t, err)
	assert.Equal(t, StatusSuspicious, check.Status())
	assert.Len(t, check.App.RiskFactors, 3)
}

func TestFindApp_UnknownIsSynthesizedOnce(t *testing.T) {
	svc, c := newSeededService(t)
	ctx := context.Background()

	first, err := svc.FindApp(ctx, "UnknownXYZ", "https://unknownxyz.example")
	require.NoError(t, err)
	assert.True(t, first.Synthesized)
	assert.False(t, first.App.IsLegit)
	assert.Equal(t, StatusSuspicious, first.Status())
	assert.Equal(t, UnverifiedAppRiskFactors(), first.App.RiskFactors)
	assert.Equal(t, "Unknown", first.App.Developer)
	assert.Equal(t, store.NewNullString("https://unknownxyz.example"), first.App.URL)

	second, err := svc.FindApp(ctx, "UnknownXYZ", "")
	require.NoError(t, err)
	assert.False(t, second.Synthesized)
	assert.Equal(t, first.App.ID, second.App.ID)

	stored, err := c.Apps.GetByID(ctx, first.App.ID)
	require.NoError(t, err)
	assert.Equal(t, "UnknownXYZ", stored.AppName)

	legit, err := c.Apps.ListLegitimate(ctx)
	require.NoError(t, err)
	assert.Len(t, legit, 2)
}

func TestFindApp_ReturnedRiskFactorsAreCopies(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx := context.Background()

	first, err := svc.FindApp(ctx, "CopyCheck", "")
	require.NoError(t, err)
	first.App.RiskFactors[0] = "tampered"

	second, err := svc.FindApp(ctx, "CopyCheck", "")
	require.NoError(t, err)
	assert.Equal(t, "App not found in verified database", second.App.RiskFactors[0])
}

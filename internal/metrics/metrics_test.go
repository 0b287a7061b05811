package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/reviews/{advisorId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"a", "b", "c"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/reviews/"+id, nil))
		require.Equal(t, http.StatusTeapot, rr.Code)
	}

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/reviews/{advisorId}", "418"))
	assert.Equal(t, 3.0, got)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.AdvisorLookup("name")
	m.AdvisorLookup("name")
	m.AdvisorLookup("none")
	m.AppCheck("suspicious", true)
	m.ReviewSubmitted()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.advisorLookups.WithLabelValues("name")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.advisorLookups.WithLabelValues("none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appChecks.WithLabelValues("suspicious", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reviewsAdded))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.ReviewSubmitted()
	m.AdvisorLookup("reg_number")
	m.AppCheck("legitimate", false)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	for _, want := range []string{
		"investorshield_reviews_submitted_total 1",
		`investorshield_lookup_advisor_lookups_total{match="reg_number"} 1`,
		`investorshield_lookup_app_checks_total{status="legitimate",synthesized="false"} 1`,
		"investorshield_http_inflight_requests 0",
	} {
		assert.True(t, strings.Contains(body, want), "missing %q", want)
	}
}

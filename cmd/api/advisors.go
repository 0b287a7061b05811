package main

import (
	"errors"
	"investorshield/internal/domain/advisors"
	"investorshield/internal/params"
	"investorshield/internal/ratings"
	"investorshield/internal/store"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const advisorNotFoundMessage = "Advisor not found in SEBI database"

type VerifyAdvisorPayload struct {
	Name      string `json:"name" validate:"required,max=200"`
	RegNumber string `json:"regNumber,omitempty" validate:"max=50"`
}

// VerifyAdvisorResponse carries either a found advisor with its review
// summary, or found=false and a message.
type VerifyAdvisorResponse struct {
	Found     bool              `json:"found"`
	Advisor   *advisors.Advisor `json:"advisor,omitempty"`
	Reviews   *int              `json:"reviews,omitempty"`
	AvgRating *float64          `json:"avgRating,omitempty"`
	Message   string            `json:"message,omitempty"`
}

func foundAdvisorResponse(a *advisors.Advisor, sum ratings.Summary) VerifyAdvisorResponse {
	return VerifyAdvisorResponse{
		Found:     true,
		Advisor:   a,
		Reviews:   &sum.Count,
		AvgRating: &sum.Mean,
	}
}

// verifyAdvisorHandler godoc
//
//	@Summary		Verify an advisor
//	@Description	Looks an advisor up by SEBI registration number first, then by case-insensitive partial name.
//	@Tags			advisors
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		VerifyAdvisorPayload	true	"Advisor name and optional registration number"
//	@Success		200		{object}	VerifyAdvisorResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/verify-advisor [post]
func (app *application) verifyAdvisorHandler(w http.ResponseWriter, r *http.Request) {
	var payload VerifyAdvisorPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	match, err := app.lookup.FindAdvisor(r.Context(), payload.Name, payload.RegNumber)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.metrics.AdvisorLookup(match.By.String())

	if !match.Found() {
		if err := app.jsonResponse(w, http.StatusOK, VerifyAdvisorResponse{Found: false, Message: advisorNotFoundMessage}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	sum, err := app.ratings.AverageRating(r.Context(), match.Advisor.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, foundAdvisorResponse(match.Advisor, sum)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAdvisorHandler godoc
//
//	@Summary		Get advisor by ID
//	@Tags			advisors
//	@Produce		json
//	@Param			advisorID	path		string	true	"Advisor ID"
//	@Success		200			{object}	VerifyAdvisorResponse
//	@Failure		404			{object}	error
//	@Security		ApiKeyAuth
//	@Router			/advisors/{advisorID} [get]
func (app *application) getAdvisorHandler(w http.ResponseWriter, r *http.Request) {
	advisorID := chi.URLParam(r, "advisorID")

	advisor, err := app.store.Advisors.GetByID(r.Context(), advisorID)
	if err != nil {
		switch {
		case errors.Is(err, advisors.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	sum, err := app.ratings.AverageRating(r.Context(), advisor.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, foundAdvisorResponse(advisor, sum)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recentAdvisorsHandler godoc
//
//	@Summary		List recent advisors
//	@Tags			advisors
//	@Produce		json
//	@Param			limit	query		int	false	"Max advisors (default 3)"
//	@Success		200		{object}	map[string][]advisors.Advisor
//	@Security		ApiKeyAuth
//	@Router			/recent-advisors [get]
func (app *application) recentAdvisorsHandler(w http.ResponseWriter, r *http.Request) {
	limit := params.ParseLimit(r.URL.Query(), 3, 50)

	list, err := app.store.Advisors.List(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string][]advisors.Advisor{"advisors": list}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// topRatedAdvisorsHandler godoc
//
//	@Summary		Top rated advisors
//	@Description	Advisors with at least one review, highest average rating first.
//	@Tags			advisors
//	@Produce		json
//	@Param			limit	query		int	false	"Max advisors (default 3)"
//	@Success		200		{object}	map[string][]ratings.RatedAdvisor
//	@Security		ApiKeyAuth
//	@Router			/top-rated-advisors [get]
func (app *application) topRatedAdvisorsHandler(w http.ResponseWriter, r *http.Request) {
	limit := params.ParseLimit(r.URL.Query(), 3, 50)

	top, err := app.ratings.TopRatedAdvisors(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string][]ratings.RatedAdvisor{"advisors": top}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateAdvisorPayload struct {
	Name            string `json:"name" validate:"required,max=200"`
	RegNumber       string `json:"regNumber,omitempty" validate:"omitempty,sebireg"`
	IsRegistered    bool   `json:"isRegistered"`
	ComplaintsCount int    `json:"complaintsCount" validate:"min=0"`
	TrustScore      int    `json:"trustScore" validate:"min=0,max=100"`
	YearsExperience int    `json:"yearsExperience" validate:"min=0,max=80"`
	Specialization  string `json:"specialization,omitempty" validate:"max=200"`
}

// createAdvisorHandler godoc
//
//	@Summary		Create an advisor
//	@Description	Adds an advisor to the registry. Admin only (basic auth).
//	@Tags			advisors
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateAdvisorPayload	true	"Advisor"
//	@Success		201		{object}	advisors.Advisor
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Security		BasicAuth
//	@Router			/advisors [post]
func (app *application) createAdvisorHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateAdvisorPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	advisor := &advisors.Advisor{
		Name:            payload.Name,
		RegNumber:       store.NewNullString(payload.RegNumber),
		IsRegistered:    payload.IsRegistered,
		ComplaintsCount: payload.ComplaintsCount,
		TrustScore:      payload.TrustScore,
		YearsExperience: payload.YearsExperience,
		Specialization:  store.NewNullString(payload.Specialization),
	}

	if err := app.store.Advisors.Create(r.Context(), advisor); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.logger.Infow("advisor created", "advisor_id", advisor.ID, "name", advisor.Name)

	if err := app.jsonResponse(w, http.StatusCreated, advisor); err != nil {
		app.internalServerError(w, r, err)
	}
}

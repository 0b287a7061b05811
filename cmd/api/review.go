package main

import (
	"errors"
	"investorshield/internal/domain/reviews"
	"investorshield/internal/params"
	"investorshield/internal/ratings"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Create Review Handler
type createReviewPayload struct {
	AdvisorID string `json:"advisorId" validate:"required,max=100"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"required,max=2000"`
}

type CreateReviewResponse struct {
	Review  reviews.Review `json:"review"`
	Message string         `json:"message"`
}

// createReviewHandler godoc
//
//	@Summary		Add a review
//	@Description	Adds a review of an advisor on behalf of the authenticated user. The advisor is not required to exist.
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createReviewPayload	true	"Review"
//	@Success		201		{object}	CreateReviewResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/add-review [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload createReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	claims := getClaimsFromContext(r)
	if claims == nil {
		app.unauthorizedErrorResponse(w, r, "Access token required", errors.New("no claims in request context"))
		return
	}

	review := &reviews.Review{
		AdvisorID: payload.AdvisorID,
		UserID:    claims.UserID,
		Rating:    payload.Rating,
		Comment:   payload.Comment,
	}

	if err := app.store.Reviews.Create(r.Context(), review); err != nil {
		app.internalServerError(w, r, err)
		return
	}
	app.metrics.ReviewSubmitted()

	if err := app.jsonResponse(w, http.StatusCreated, CreateReviewResponse{Review: *review, Message: "Review added successfully"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAdvisorReviewsHandler godoc
//
//	@Summary		List reviews of an advisor
//	@Tags			reviews
//	@Produce		json
//	@Param			advisorID	path		string	true	"Advisor ID"
//	@Success		200			{object}	map[string][]reviews.Review
//	@Security		ApiKeyAuth
//	@Router			/reviews/{advisorID} [get]
func (app *application) getAdvisorReviewsHandler(w http.ResponseWriter, r *http.Request) {
	advisorID := chi.URLParam(r, "advisorID")

	list, err := app.store.Reviews.ListByAdvisor(r.Context(), advisorID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string][]reviews.Review{"reviews": list}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// recentReviewsHandler godoc
//
//	@Summary		Recent reviews
//	@Description	Newest reviews first, with advisor and reviewer names.
//	@Tags			reviews
//	@Produce		json
//	@Param			limit	query		int	false	"Max reviews (default 10)"
//	@Success		200		{object}	map[string][]ratings.DecoratedReview
//	@Security		ApiKeyAuth
//	@Router			/recent-reviews [get]
func (app *application) recentReviewsHandler(w http.ResponseWriter, r *http.Request) {
	limit := params.ParseLimit(r.URL.Query(), 10, 50)

	recent, err := app.ratings.RecentReviews(r.Context(), limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string][]ratings.DecoratedReview{"reviews": recent}); err != nil {
		app.internalServerError(w, r, err)
	}
}

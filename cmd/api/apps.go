package main

import (
	"investorshield/internal/domain/apps"
	"net/http"
)

type CheckAppPayload struct {
	AppName string `json:"appName" validate:"required,max=200"`
	URL     string `json:"url,omitempty" validate:"omitempty,url,max=2048"`
}

type CheckAppResponse struct {
	App            apps.App `json:"app"`
	Status         string   `json:"status" enums:"legitimate,suspicious"`
	RiskFactors    []string `json:"riskFactors"`
	Recommendation string   `json:"recommendation"`
}

// checkAppHandler godoc
//
//	@Summary		Check a trading app
//	@Description	Matches the app name against known apps. Unknown names are recorded as suspicious.
//	@Tags			apps
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CheckAppPayload	true	"App name and optional URL"
//	@Success		200		{object}	CheckAppResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		401		{object}	error
//	@Failure		500		{object}	ErrorInternalServerResponse
//	@Security		ApiKeyAuth
//	@Router			/check-app [post]
func (app *application) checkAppHandler(w http.ResponseWriter, r *http.Request) {
	var payload CheckAppPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	check, err := app.lookup.FindApp(r.Context(), payload.AppName, payload.URL)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	status := string(check.Status())
	app.metrics.AppCheck(status, check.Synthesized)
	if check.Synthesized {
		app.logger.Infow("unknown app recorded as suspicious", "app_id", check.App.ID, "app_name", check.App.AppName)
	}

	resp := CheckAppResponse{
		App:            check.App,
		Status:         status,
		RiskFactors:    check.App.RiskFactors,
		Recommendation: check.App.Recommendation,
	}
	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// legitimateAppsHandler godoc
//
//	@Summary		List legitimate apps
//	@Tags			apps
//	@Produce		json
//	@Success		200	{object}	map[string][]apps.App
//	@Security		ApiKeyAuth
//	@Router			/legitimate-apps [get]
func (app *application) legitimateAppsHandler(w http.ResponseWriter, r *http.Request) {
	legit, err := app.store.Apps.ListLegitimate(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string][]apps.App{"apps": legit}); err != nil {
		app.internalServerError(w, r, err)
	}
}

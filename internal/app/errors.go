package app

import (
	"net/http"
	"time"

	"github.com/cinetick/cinetick/api"
	appvalidator "github.com/cinetick/cinetick/internal/validator"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalServer = "The server encountered a problem and could not process your request; it is safe to retry"
	ErrNotFound       = "The requested resource not found"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code and machine-readable code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := api.ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

// serverErrorResponse covers unexpected failures of the persistence layer and
// the like. Nothing is ever committed on these paths, so the caller may retry
// the whole request.
func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, api.CodeStorageFailure, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, api.CodeNotFound, ErrNotFound)
}

func (app *Application) notFoundHandler(w http.ResponseWriter, r *http.Request) {
	app.notFoundResponse(w, r)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, api.CodeInvalidRequest, err.Error())
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		app.serverErrorResponse(w, r, err)
		return
	}

	issues := make([]api.ValidationError, 0, len(validationErrors))
	for _, vErr := range validationErrors {
		issues = append(issues, api.ValidationError{
			Field: vErr.Field(),
			Issue: appvalidator.ValidationMessage(vErr),
		})
	}

	resp := api.ValidationErrorResponse{
		Code:             api.CodeInvalidRequest,
		Message:          "The request contains invalid fields",
		ValidationErrors: issues,
		RequestID:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	writeErr := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if writeErr != nil {
		app.logError(r, writeErr)
		w.WriteHeader(500)
	}
}

func (app *Application) seatsUnavailableResponse(w http.ResponseWriter, r *http.Request, conflicts []string) {
	resp := api.ErrorResponse{
		Code:             api.CodeSeatsUnavailable,
		Message:          "Some of the requested seats are already booked",
		ConflictingSeats: conflicts,
		RequestID:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	err := app.writeJSON(w, http.StatusConflict, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

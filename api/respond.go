package api

import (
	"encoding/json"
	"errors"
	"net/http"

	eventservice "github.com/bet-buddys/betbuddys-backend/app/modules/event/application"
	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// respondServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is a 500 with a generic body; details stay in the logs.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, predictionservice.ErrInvalidPrediction),
		errors.Is(err, predictionservice.ErrInvalidResult),
		errors.Is(err, wagerservice.ErrValidation),
		errors.Is(err, wagerservice.ErrInvalidResult),
		errors.Is(err, wagerservice.ErrInvalidEvent),
		errors.Is(err, eventservice.ErrInvalidResult),
		errors.Is(err, eventservice.ErrInvalidEvent):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, predictionservice.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, predictiondb.ErrPredictionNotFound),
		errors.Is(err, predictiondb.ErrMatchNotFound),
		errors.Is(err, eventdb.ErrEventNotFound),
		errors.Is(err, eventdb.ErrMatchNotFound),
		errors.Is(err, wagerdb.ErrGroupEventNotFound),
		errors.Is(err, wagerdb.ErrFightNotFound),
		errors.Is(err, wagerdb.ErrWagerNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

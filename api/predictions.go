package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

type createPredictionRequest struct {
	UserName          string `json:"user_name"`
	EventID           string `json:"event_id"`
	MatchID           string `json:"match_id"`
	PredictedWinnerID string `json:"predicted_winner_id"`
	Method            string `json:"method"`
}

func (h *handlers) createPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req createPredictionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	prediction, err := h.services.Predictions.CreatePrediction(r.Context(), predictionservice.CreatePredictionInput{
		UserID:            userID,
		UserName:          req.UserName,
		EventID:           sharedtypes.EventID(req.EventID),
		MatchID:           sharedtypes.MatchID(req.MatchID),
		PredictedWinnerID: req.PredictedWinnerID,
		Method:            req.Method,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, prediction)
}

func (h *handlers) retractPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	predictionID := sharedtypes.PredictionID(chi.URLParam(r, "predictionID"))
	if err := h.services.Predictions.RetractPrediction(r.Context(), predictionID, userID); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) getMatchPredictions(w http.ResponseWriter, r *http.Request) {
	matchID := sharedtypes.MatchID(chi.URLParam(r, "matchID"))

	predictions, err := h.services.Predictions.GetMatchPredictions(r.Context(), matchID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, predictions)
}

func (h *handlers) getMyEventPredictions(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	eventID := sharedtypes.EventID(chi.URLParam(r, "eventID"))
	predictions, err := h.services.Predictions.GetUserEventPredictions(r.Context(), userID, eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, predictions)
}

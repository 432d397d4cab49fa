package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

type createGroupEventRequest struct {
	GroupID string    `json:"group_id"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Fights  []struct {
		Fighter1Name string `json:"fighter1_name"`
		Fighter2Name string `json:"fighter2_name"`
	} `json:"fights"`
}

func (h *handlers) createGroupEvent(w http.ResponseWriter, r *http.Request) {
	var req createGroupEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fights := make([]wagerservice.FightInput, 0, len(req.Fights))
	for _, f := range req.Fights {
		fights = append(fights, wagerservice.FightInput{
			Fighter1Name: f.Fighter1Name,
			Fighter2Name: f.Fighter2Name,
		})
	}

	groupEvent, err := h.services.Wagers.CreateGroupEvent(r.Context(), sharedtypes.GroupID(req.GroupID), req.Name, req.Date, fights)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, groupEvent)
}

func (h *handlers) getGroupEvents(w http.ResponseWriter, r *http.Request) {
	groupID := sharedtypes.GroupID(chi.URLParam(r, "groupID"))

	groupEvents, err := h.services.Wagers.GetGroupEvents(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, groupEvents)
}

func (h *handlers) getGroupEventFights(w http.ResponseWriter, r *http.Request) {
	groupEventID := sharedtypes.GroupEventID(chi.URLParam(r, "groupEventID"))

	fights, err := h.services.Wagers.GetGroupEventFights(r.Context(), groupEventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, fights)
}

type placeWagerRequest struct {
	UserName        string `json:"user_name"`
	GroupEventID    string `json:"group_event_id"`
	FightID         string `json:"fight_id"`
	PredictedWinner string `json:"predicted_winner"`
	Method          string `json:"method"`
	Confidence      int    `json:"confidence"`
}

func (h *handlers) placeWager(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req placeWagerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	wager, err := h.services.Wagers.PlaceWager(r.Context(), wagerservice.PlaceWagerInput{
		UserID:          userID,
		UserName:        req.UserName,
		GroupEventID:    sharedtypes.GroupEventID(req.GroupEventID),
		FightID:         sharedtypes.FightID(req.FightID),
		PredictedWinner: req.PredictedWinner,
		Method:          req.Method,
		Confidence:      req.Confidence,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, wager)
}

func (h *handlers) getMyWagers(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	groupEventID := sharedtypes.GroupEventID(chi.URLParam(r, "groupEventID"))
	wagers, err := h.services.Wagers.GetUserWagers(r.Context(), userID, groupEventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wagers)
}

func (h *handlers) getGroupEventWagers(w http.ResponseWriter, r *http.Request) {
	groupEventID := sharedtypes.GroupEventID(chi.URLParam(r, "groupEventID"))

	wagers, err := h.services.Wagers.GetGroupEventWagers(r.Context(), groupEventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, wagers)
}

type fightResultRequest struct {
	WinnerName string `json:"winner_name"`
	Method     string `json:"method"`
}

func (h *handlers) finalizeFightResult(w http.ResponseWriter, r *http.Request) {
	var req fightResultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	fightID := sharedtypes.FightID(chi.URLParam(r, "fightID"))
	if err := h.services.Wagers.FinalizeFightResult(r.Context(), fightID, req.WinnerName, req.Method); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

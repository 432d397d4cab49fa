package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	eventservice "github.com/bet-buddys/betbuddys-backend/app/modules/event/application"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

type createEventRequest struct {
	GroupID string    `json:"group_id"`
	Title   string    `json:"title"`
	Date    time.Time `json:"date"`
	Matches []struct {
		Fighter1ID   string `json:"fighter1_id"`
		Fighter1Name string `json:"fighter1_name"`
		Fighter2ID   string `json:"fighter2_id"`
		Fighter2Name string `json:"fighter2_name"`
		Order        int    `json:"order"`
	} `json:"matches"`
}

func (h *handlers) createEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	matches := make([]eventservice.MatchInput, 0, len(req.Matches))
	for _, m := range req.Matches {
		matches = append(matches, eventservice.MatchInput{
			Fighter1ID:   m.Fighter1ID,
			Fighter1Name: m.Fighter1Name,
			Fighter2ID:   m.Fighter2ID,
			Fighter2Name: m.Fighter2Name,
			Order:        m.Order,
		})
	}

	event, err := h.services.Events.CreateEvent(r.Context(), sharedtypes.GroupID(req.GroupID), req.Title, req.Date, matches)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (h *handlers) getEvent(w http.ResponseWriter, r *http.Request) {
	eventID := sharedtypes.EventID(chi.URLParam(r, "eventID"))

	event, err := h.services.Events.GetEvent(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *handlers) getEventMatches(w http.ResponseWriter, r *http.Request) {
	eventID := sharedtypes.EventID(chi.URLParam(r, "eventID"))

	matches, err := h.services.Events.GetEventMatches(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, matches)
}

func (h *handlers) getGroupEventCards(w http.ResponseWriter, r *http.Request) {
	groupID := sharedtypes.GroupID(chi.URLParam(r, "groupID"))

	events, err := h.services.Events.GetGroupEvents(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

type matchResultRequest struct {
	WinnerID string `json:"winner_id"`
	Method   string `json:"method"`
}

// finalizeMatchResult records the authoritative result and returns 202: the
// scoring and standings updates happen asynchronously off the bus.
func (h *handlers) finalizeMatchResult(w http.ResponseWriter, r *http.Request) {
	var req matchResultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	matchID := sharedtypes.MatchID(chi.URLParam(r, "matchID"))
	if err := h.services.Events.FinalizeMatchResult(r.Context(), matchID, req.WinnerID, req.Method); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

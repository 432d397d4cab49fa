package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

type handlers struct {
	services Services
	logger   *slog.Logger
}

func scopeFromRequest(r *http.Request) leaderboarddomain.Scope {
	groupID := sharedtypes.GroupID(chi.URLParam(r, "groupID"))
	if eventID := r.URL.Query().Get("eventId"); eventID != "" {
		return leaderboarddomain.EventScope(groupID, sharedtypes.EventID(eventID))
	}
	return leaderboarddomain.GroupScope(groupID)
}

func (h *handlers) getGroupLeaderboard(w http.ResponseWriter, r *http.Request) {
	groupID := sharedtypes.GroupID(chi.URLParam(r, "groupID"))

	entries, err := h.services.Leaderboard.GetGroupLeaderboard(r.Context(), groupID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load group leaderboard", slog.Any("error", err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *handlers) getEventLeaderboard(w http.ResponseWriter, r *http.Request) {
	eventID := sharedtypes.EventID(chi.URLParam(r, "eventID"))

	entries, err := h.services.Leaderboard.GetEventLeaderboard(r.Context(), eventID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load event leaderboard", slog.Any("error", err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

func (h *handlers) getUserEntry(w http.ResponseWriter, r *http.Request) {
	userID := sharedtypes.UserID(chi.URLParam(r, "userID"))

	entry, err := h.services.Leaderboard.GetUserEntry(r.Context(), userID, scopeFromRequest(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if entry == nil {
		respondError(w, http.StatusNotFound, "no standings entry for user")
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

type recalculateResponse struct {
	Entries int `json:"entries"`
}

func (h *handlers) recalculateLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.Leaderboard.Recalculate(r.Context(), scopeFromRequest(r))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Manual recalculation failed", slog.Any("error", err))
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recalculateResponse{Entries: entries})
}

func (h *handlers) exportGroupLeaderboard(w http.ResponseWriter, r *http.Request) {
	groupID := sharedtypes.GroupID(chi.URLParam(r, "groupID"))

	data, err := h.services.Leaderboard.ExportGroupStandings(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="standings.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *handlers) chartGroupLeaderboard(w http.ResponseWriter, r *http.Request) {
	groupID := sharedtypes.GroupID(chi.URLParam(r, "groupID"))

	data, err := h.services.Leaderboard.RenderStandingsChart(r.Context(), groupID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

package eventservice

import (
	"context"
	"time"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// MatchInput describes a match supplied at event creation time.
type MatchInput struct {
	Fighter1ID   string
	Fighter1Name string
	Fighter2ID   string
	Fighter2Name string
	Order        int
}

// Service defines the interface for the EventService.
type Service interface {
	// CreateEvent creates an event with its matches in one transaction.
	CreateEvent(ctx context.Context, groupID sharedtypes.GroupID, title string, date time.Time, matches []MatchInput) (*eventdb.Event, error)

	// FinalizeMatchResult records the authoritative result for a match and
	// announces it on the bus. Idempotent: replaying the same result is a
	// no-op for downstream consumers; a different result overwrites (last
	// authoritative call wins).
	FinalizeMatchResult(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) error

	GetEvent(ctx context.Context, eventID sharedtypes.EventID) (*eventdb.Event, error)
	GetEventMatches(ctx context.Context, eventID sharedtypes.EventID) ([]eventdb.Match, error)
	GetGroupEvents(ctx context.Context, groupID sharedtypes.GroupID) ([]eventdb.Event, error)
}

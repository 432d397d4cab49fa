package eventdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repository defines operations on the events and matches tables. Methods take
// a bun.IDB so callers can run them inside their own transactions.
type Repository interface {
	CreateEvent(ctx context.Context, db bun.IDB, event *Event) error
	GetEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*Event, error)
	GetGroupEvents(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]Event, error)

	CreateMatch(ctx context.Context, db bun.IDB, match *Match) error
	GetMatch(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*Match, error)
	GetEventMatches(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]Match, error)

	// SetMatchResult records the authoritative result on the match row.
	// Overwrites any previous result; returns ErrMatchNotFound for unknown ids.
	SetMatchResult(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID, winnerID, method string) error
}

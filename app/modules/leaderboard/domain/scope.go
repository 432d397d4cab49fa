package leaderboarddomain

import (
	"fmt"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Scope identifies one standings aggregation: a whole group, or one event
// within a group. A zero EventID pointer means the group-wide scope. The
// constructors are the only intended way to build one.
type Scope struct {
	GroupID sharedtypes.GroupID
	EventID *sharedtypes.EventID
}

// GroupScope is the group-wide standings scope.
func GroupScope(groupID sharedtypes.GroupID) Scope {
	return Scope{GroupID: groupID}
}

// EventScope is the standings scope for one event within a group.
func EventScope(groupID sharedtypes.GroupID, eventID sharedtypes.EventID) Scope {
	return Scope{GroupID: groupID, EventID: &eventID}
}

// IsGroupWide reports whether the scope covers the whole group.
func (s Scope) IsGroupWide() bool {
	return s.EventID == nil
}

// LockKey is the stable string the per-scope advisory lock hashes. Distinct
// scopes must produce distinct keys.
func (s Scope) LockKey() string {
	if s.EventID == nil {
		return fmt.Sprintf("leaderboard:%s", s.GroupID)
	}
	return fmt.Sprintf("leaderboard:%s:%s", s.GroupID, *s.EventID)
}

func (s Scope) String() string {
	if s.EventID == nil {
		return fmt.Sprintf("group %s", s.GroupID)
	}
	return fmt.Sprintf("group %s event %s", s.GroupID, *s.EventID)
}

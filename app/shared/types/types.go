package sharedtypes

// Identifier types shared across modules. All ids are opaque strings (UUIDs on
// creation, or externally supplied ids from the identity and feed layers).

// UserID identifies a user. Supplied by the identity layer; never derived here.
type UserID string

// GroupID identifies a group.
type GroupID string

// EventID identifies an event (a card of matches owned by a group).
type EventID string

// MatchID identifies a match within an event.
type MatchID string

// GroupEventID identifies a betting card within a group.
type GroupEventID string

// FightID identifies a fight on a betting card.
type FightID string

// PredictionID identifies a prediction.
type PredictionID string

// WagerID identifies a wager.
type WagerID string

func (id UserID) String() string       { return string(id) }
func (id GroupID) String() string      { return string(id) }
func (id EventID) String() string      { return string(id) }
func (id MatchID) String() string      { return string(id) }
func (id GroupEventID) String() string { return string(id) }
func (id FightID) String() string      { return string(id) }
func (id PredictionID) String() string { return string(id) }
func (id WagerID) String() string      { return string(id) }

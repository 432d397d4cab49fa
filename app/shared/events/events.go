package sharedevents

import (
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Stream names for JetStream provisioning.
const (
	EventStreamName       = "event"
	PredictionStreamName  = "prediction"
	WagerStreamName       = "wager"
	LeaderboardStreamName = "leaderboard"
	GroupStreamName       = "group"
)

// Versioned event topics. Topic prefix doubles as the owning stream name.
const (
	MatchResultFinalizedV1 = "event.match.result.finalized.v1"

	PredictionBatchScoredV1   = "prediction.batch.scored.v1"
	PredictionScoringFailedV1 = "prediction.scoring.failed.v1"
	PredictionRetractedV1     = "prediction.retracted.v1"

	FightResultFinalizedV1 = "wager.fight.result.finalized.v1"
	WagerBatchJudgedV1     = "wager.batch.judged.v1"
	WagerJudgingFailedV1   = "wager.judging.failed.v1"

	LeaderboardRecalculatedV1        = "leaderboard.recalculated.v1"
	LeaderboardRecalculationFailedV1 = "leaderboard.recalculation.failed.v1"

	GroupMemberAddedV1 = "group.member.added.v1"
)

// ScopeRefV1 identifies one aggregation scope touched by a scoring pass.
// A nil EventID means the group-wide scope.
type ScopeRefV1 struct {
	GroupID sharedtypes.GroupID  `json:"group_id"`
	EventID *sharedtypes.EventID `json:"event_id,omitempty"`
}

// MatchResultFinalizedPayloadV1 carries an authoritative match result.
type MatchResultFinalizedPayloadV1 struct {
	MatchID  sharedtypes.MatchID `json:"match_id"`
	EventID  sharedtypes.EventID `json:"event_id"`
	GroupID  sharedtypes.GroupID `json:"group_id"`
	WinnerID string              `json:"winner_id"`
	Method   string              `json:"method"`
}

// PredictionBatchScoredPayloadV1 announces that every prediction for a match has
// been judged, together with the scopes whose standings are now stale.
type PredictionBatchScoredPayloadV1 struct {
	MatchID       sharedtypes.MatchID `json:"match_id"`
	WinnerID      string              `json:"winner_id"`
	Method        string              `json:"method"`
	JudgedCount   int                 `json:"judged_count"`
	TouchedScopes []ScopeRefV1        `json:"touched_scopes"`
}

// PredictionScoringFailedPayloadV1 reports a scoring pass that could not complete.
type PredictionScoringFailedPayloadV1 struct {
	MatchID sharedtypes.MatchID `json:"match_id"`
	Reason  string              `json:"reason"`
}

// PredictionRetractedPayloadV1 reports a user deleting their prediction. The
// aggregator must re-converge the owner's standing in both touched scopes.
type PredictionRetractedPayloadV1 struct {
	PredictionID sharedtypes.PredictionID `json:"prediction_id"`
	UserID       sharedtypes.UserID       `json:"user_id"`
	GroupID      sharedtypes.GroupID      `json:"group_id"`
	EventID      sharedtypes.EventID      `json:"event_id"`
}

// FightResultFinalizedPayloadV1 carries an authoritative fight result.
type FightResultFinalizedPayloadV1 struct {
	FightID      sharedtypes.FightID      `json:"fight_id"`
	GroupEventID sharedtypes.GroupEventID `json:"group_event_id"`
	WinnerName   string                   `json:"winner_name"`
	Method       string                   `json:"method"`
}

// WagerBatchJudgedPayloadV1 announces that every wager on a fight has been judged.
type WagerBatchJudgedPayloadV1 struct {
	FightID      sharedtypes.FightID      `json:"fight_id"`
	GroupEventID sharedtypes.GroupEventID `json:"group_event_id"`
	WinnerName   string                   `json:"winner_name"`
	Method       string                   `json:"method"`
	JudgedCount  int                      `json:"judged_count"`
}

// WagerJudgingFailedPayloadV1 reports a wager judging pass that could not complete.
type WagerJudgingFailedPayloadV1 struct {
	FightID sharedtypes.FightID `json:"fight_id"`
	Reason  string              `json:"reason"`
}

// LeaderboardRecalculatedPayloadV1 reports a completed recompute for one scope.
type LeaderboardRecalculatedPayloadV1 struct {
	Scope        ScopeRefV1 `json:"scope"`
	EntriesCount int        `json:"entries_count"`
}

// LeaderboardRecalculationFailedPayloadV1 reports a failed recompute. Retrying is
// always safe: recomputes are full overwrites.
type LeaderboardRecalculationFailedPayloadV1 struct {
	Scope  ScopeRefV1 `json:"scope"`
	Reason string     `json:"reason"`
}

// GroupMemberAddedPayloadV1 is the membership fact supplied by the group layer.
// Consumed read-only; this service never adds or removes memberships itself.
type GroupMemberAddedPayloadV1 struct {
	GroupID  sharedtypes.GroupID `json:"group_id"`
	UserID   sharedtypes.UserID  `json:"user_id"`
	UserName string              `json:"user_name"`
}

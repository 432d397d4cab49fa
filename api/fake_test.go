package api

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	eventservice "github.com/bet-buddys/betbuddys-backend/app/modules/event/application"
	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/config"
)

const testSecret = "test-secret"

// stubLeaderboardService overrides only what a test exercises; calling
// anything else panics through the embedded nil interface.
type stubLeaderboardService struct {
	leaderboardservice.Service

	GetGroupLeaderboardFunc  func(ctx context.Context, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error)
	GetUserEntryFunc         func(ctx context.Context, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error)
	RecalculateFunc          func(ctx context.Context, scope leaderboarddomain.Scope) (int, error)
	ExportGroupStandingsFunc func(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error)
}

func (s *stubLeaderboardService) GetGroupLeaderboard(ctx context.Context, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error) {
	return s.GetGroupLeaderboardFunc(ctx, groupID)
}

func (s *stubLeaderboardService) GetUserEntry(ctx context.Context, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error) {
	return s.GetUserEntryFunc(ctx, userID, scope)
}

func (s *stubLeaderboardService) Recalculate(ctx context.Context, scope leaderboarddomain.Scope) (int, error) {
	return s.RecalculateFunc(ctx, scope)
}

func (s *stubLeaderboardService) ExportGroupStandings(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error) {
	return s.ExportGroupStandingsFunc(ctx, groupID)
}

type stubPredictionService struct {
	predictionservice.Service

	CreatePredictionFunc  func(ctx context.Context, input predictionservice.CreatePredictionInput) (*predictiondb.Prediction, error)
	RetractPredictionFunc func(ctx context.Context, predictionID sharedtypes.PredictionID, userID sharedtypes.UserID) error
}

func (s *stubPredictionService) CreatePrediction(ctx context.Context, input predictionservice.CreatePredictionInput) (*predictiondb.Prediction, error) {
	return s.CreatePredictionFunc(ctx, input)
}

func (s *stubPredictionService) RetractPrediction(ctx context.Context, predictionID sharedtypes.PredictionID, userID sharedtypes.UserID) error {
	return s.RetractPredictionFunc(ctx, predictionID, userID)
}

type stubEventService struct {
	eventservice.Service

	FinalizeMatchResultFunc func(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) error
}

func (s *stubEventService) FinalizeMatchResult(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) error {
	return s.FinalizeMatchResultFunc(ctx, matchID, winnerID, method)
}

type stubWagerService struct {
	wagerservice.Service
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			RatePerSecond:  100,
			RateBurst:      100,
			RequestTimeout: 5 * time.Second,
		},
		JWT: config.JWTConfig{Secret: testSecret},
	}
}

func newTestServer(services Services) *Server {
	return NewServer(testConfig(), slog.Default(), services)
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

const maxChartedUsers = 20

// RenderStandingsChart renders the group-wide standings as a PNG bar chart,
// top users first. Large groups are truncated to keep the chart legible.
func (s *LeaderboardService) RenderStandingsChart(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error) {
	return withTelemetry(s, ctx, "RenderStandingsChart", func(ctx context.Context) ([]byte, error) {
		entries, err := s.repo.GetGroupLeaderboard(ctx, s.db, groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to load standings for chart: %w", err)
		}

		if len(entries) > maxChartedUsers {
			entries = entries[:maxChartedUsers]
		}

		bars := make([]chart.Value, 0, len(entries))
		maxPoints := 1.0
		for _, entry := range entries {
			label := entry.UserName
			if label == "" {
				label = string(entry.UserID)
			}
			if float64(entry.Points) > maxPoints {
				maxPoints = float64(entry.Points)
			}
			bars = append(bars, chart.Value{
				Label: label,
				Value: float64(entry.Points),
			})
		}
		if len(bars) == 0 {
			bars = append(bars, chart.Value{Label: "no standings", Value: 0})
		}

		graph := chart.BarChart{
			Title:    "Group Standings",
			Width:    900,
			Height:   450,
			BarWidth: 30,
			XAxis: chart.Style{
				TextRotationDegrees: 45,
			},
			YAxis: chart.YAxis{
				// Pin the range so all-zero scores still render.
				Range: &chart.ContinuousRange{Min: 0, Max: maxPoints},
			},
			Bars: bars,
		}

		var buf bytes.Buffer
		if err := graph.Render(chart.PNG, &buf); err != nil {
			return nil, fmt.Errorf("failed to render chart: %w", err)
		}
		return buf.Bytes(), nil
	})
}

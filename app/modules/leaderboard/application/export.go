package leaderboardservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// ExportGroupStandings renders the group-wide standings as an xlsx workbook.
// Rows come out in ranking order, so the rank column is just the row index.
func (s *LeaderboardService) ExportGroupStandings(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error) {
	return withTelemetry(s, ctx, "ExportGroupStandings", func(ctx context.Context) ([]byte, error) {
		entries, err := s.repo.GetGroupLeaderboard(ctx, s.db, groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to load standings for export: %w", err)
		}

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Standings"
		f.SetSheetName(f.GetSheetName(0), sheet)

		headers := []string{"Rank", "User", "Points", "Correct", "Predictions"}
		for col, header := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, header); err != nil {
				return nil, err
			}
		}

		for i, entry := range entries {
			row := i + 2
			values := []interface{}{i + 1, entry.UserName, entry.Points, entry.CorrectPredictions, entry.TotalPredictions}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cell, value); err != nil {
					return nil, err
				}
			}
		}

		var buf bytes.Buffer
		if err := f.Write(&buf); err != nil {
			return nil, fmt.Errorf("failed to write workbook: %w", err)
		}
		return buf.Bytes(), nil
	})
}

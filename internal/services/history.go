package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vitalog-dev/vitalog/internal/models"
	"github.com/vitalog-dev/vitalog/internal/store"
	"gorm.io/datatypes"
)

// ErrBadDate marks a malformed query bound, so callers can distinguish a
// client mistake from a store failure.
var ErrBadDate = errors.New("date must be formatted as YYYY-MM-DD")

// HistoryService reads the reconciled daily rollup for trend display. Rows
// come back descending by date; consumers derive percentages from each row's
// own goal snapshots, never from the current live goals.
type HistoryService struct {
	history store.HistoryStore
}

func NewHistoryService(history store.HistoryStore) *HistoryService {
	return &HistoryService{history: history}
}

// Query returns the rows in [start, end] inclusive; either bound may be an
// empty string to leave that side open. Malformed dates are rejected before
// any store call.
func (s *HistoryService) Query(ctx context.Context, userID uint, start, end string) ([]models.DailyHistory, error) {
	var startDate, endDate *datatypes.Date

	if start != "" {
		d, err := models.ParseDate(start)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", start, ErrBadDate)
		}
		startDate = &d
	}
	if end != "" {
		d, err := models.ParseDate(end)
		if err != nil {
			return nil, fmt.Errorf("invalid end date %q: %w", end, ErrBadDate)
		}
		endDate = &d
	}

	return s.history.QueryDailyHistory(ctx, userID, startDate, endDate)
}

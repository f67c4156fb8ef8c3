package services

import (
	"context"

	"gaon-interior/internal/logger"
	"gaon-interior/migration"
)

// AdminService encapsulates operator-only maintenance actions.
type AdminService struct {
	migrationRunner *migration.Runner
}

func NewAdminService(runner *migration.Runner) *AdminService {
	return &AdminService{migrationRunner: runner}
}

// MigrateInsightDates runs the one-shot date/backfill repair pass. Store
// errors propagate to the handler; this layer only logs the outcome.
func (s *AdminService) MigrateInsightDates(ctx context.Context) (migration.Result, error) {
	res, err := s.migrationRunner.Run(ctx)
	if err != nil {
		logger.Log.Errorf("insight date migration failed: %v", err)
		return migration.Result{}, err
	}

	logger.InfoWithFields("insight date migration complete", logger.Fields{
		"total_changed":    res.TotalChanged,
		"date_conversions": res.DateConversions,
	})
	return res, nil
}

package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartDeletedSubjectCleaner purges soft-deleted subjects past retention
// with the given interval. Notes follow their subject via cascade.
func StartDeletedSubjectCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM subjects
                     WHERE deleted = true
                       AND deleted_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to clean soft-deleted subjects", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned soft-deleted subjects", zap.Int64("removed", rows))
				}
			}
		}
	}()
}

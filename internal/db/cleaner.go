package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartArchivedContactPurge hard-deletes archived contact submissions older
// than the retention window, checking on the given interval. It runs until
// ctx is cancelled.
func StartArchivedContactPurge(
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
                    DELETE FROM contacts
                     WHERE status = 'archived'
                       AND created_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to purge archived contacts", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("purged archived contacts", zap.Int64("removed", rows))
				}
			}
		}
	}()
}

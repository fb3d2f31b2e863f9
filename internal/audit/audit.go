package audit

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry describes a single auditable action.
type Entry struct {
	UserID     *int64
	Action     string
	EntityType string
	EntityID   *int64
	IP         string
}

// Write records an audit entry; failures are returned so callers can ignore
// them. A nil pool is a no-op.
func Write(ctx context.Context, db *pgxpool.Pool, e Entry) error {
	if db == nil {
		return nil
	}

	_, err := db.Exec(ctx, `
INSERT INTO audit_logs (user_id, action, entity_type, entity_id, ip)
VALUES ($1, $2, $3, $4, $5)
`, e.UserID, e.Action, e.EntityType, e.EntityID, e.IP)

	return err
}

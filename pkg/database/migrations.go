package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL-specific indexes Ent cannot express.
// Transcript search over the timeline payload and brief narratives uses GIN.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Containment queries over question/answer text stored in event payloads.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_session_events_payload_gin
		ON session_events USING gin(payload jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create session_events payload GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_briefs_narrative_gin
		ON briefs USING gin(to_tsvector('english', narrative_text))`)
	if err != nil {
		return fmt.Errorf("failed to create brief narrative GIN index: %w", err)
	}

	return nil
}

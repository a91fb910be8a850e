package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/emberclash.quest/internal/chronicle"
	"github.com/louisbranch/emberclash.quest/internal/chronicle/sqlite/migrations"
	sqlitemigrate "github.com/louisbranch/emberclash.quest/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed battle transcript persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a chronicle SQLite store and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendEntry persists one battle transcript entry.
func (s *Store) AppendEntry(ctx context.Context, entry chronicle.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	entry.SessionID = strings.TrimSpace(entry.SessionID)
	entry.Kind = strings.TrimSpace(entry.Kind)
	entry.Actor = strings.TrimSpace(entry.Actor)
	entry.Target = strings.TrimSpace(entry.Target)
	if entry.SessionID == "" {
		return fmt.Errorf("session id is required")
	}
	if entry.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if entry.Seq <= 0 {
		return fmt.Errorf("seq must be greater than zero")
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO chronicle_entries (
	session_id,
	seq,
	kind,
	actor,
	target,
	damage,
	remaining,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`,
		entry.SessionID,
		entry.Seq,
		entry.Kind,
		entry.Actor,
		entry.Target,
		entry.Damage,
		entry.Remaining,
		entry.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// ListEntries lists newest-first transcript entries across battles.
func (s *Store) ListEntries(ctx context.Context, limit int) ([]chronicle.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT
	id,
	session_id,
	seq,
	kind,
	actor,
	target,
	damage,
	remaining,
	created_at
FROM chronicle_entries
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]chronicle.Entry, 0, limit)
	for rows.Next() {
		var entry chronicle.Entry
		var createdAt int64
		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Seq,
			&entry.Kind,
			&entry.Actor,
			&entry.Target,
			&entry.Damage,
			&entry.Remaining,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entry.CreatedAt = time.UnixMilli(createdAt).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

var _ chronicle.Store = (*Store)(nil)

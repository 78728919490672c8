// Package workstream provides the durable store for workstream records.
// Records survive daemon restarts; the backend holds no copy of them.
package workstream

import (
	"context"
	"database/sql"
	stderr "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	tally "github.com/uber-go/tally"
	"github.com/voicecode/vcsync/src/vcsync/entity"
	"github.com/voicecode/vcsync/src/vcsync/internal/errors"
	"github.com/voicecode/vcsync/src/vcsync/mapper"
	"github.com/voicecode/vcsync/src/vcsync/model"
	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const _configKey = "store"

const _gaugeWorkstreams = "workstreams"

// Config defines the store's configuration block.
type Config struct {
	Path string `yaml:"path"`
}

// Repository is an entity-scoped repository over the workstream store.
type Repository interface {
	Create(ctx context.Context, w *entity.Workstream) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Workstream, error)
	List(ctx context.Context) ([]*entity.Workstream, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AttachSession(ctx context.Context, id uuid.UUID, sessionID uuid.UUID) error
	ClearSession(ctx context.Context, id uuid.UUID) error
	SetPriority(ctx context.Context, id uuid.UUID, label entity.PriorityLabel, order int64) error
	ClearPriority(ctx context.Context, id uuid.UUID) error
	BumpMessage(ctx context.Context, id uuid.UUID, preview string) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// Params define the dependencies of this repository.
type Params struct {
	fx.In

	Config    config.Provider
	Logger    *zap.SugaredLogger
	Stats     tally.Scope
	Lifecycle fx.Lifecycle
}

type repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New opens the sqlite-backed workstream store, applying any pending schema
// migrations, and closes it on shutdown.
func New(p Params) (Repository, error) {
	var cfg Config
	if err := p.Config.Get(_configKey).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("populate store config: %w", err)
	}
	if cfg.Path == "" {
		return nil, errors.New("store.path is required")
	}

	ctx := context.Background()
	db, err := open(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := applyMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	r := &repository{
		db:     db,
		logger: p.Logger.With("component", "workstream_store"),
		stats:  p.Stats,
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})
	return r, nil
}

func open(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil && !stderr.Is(err, os.ErrNotExist) {
		db.Close()
		return nil, fmt.Errorf("chmod store path: %w", err)
	}
	return db, nil
}

// Create inserts a new workstream record.
func (r *repository) Create(ctx context.Context, w *entity.Workstream) error {
	if w == nil {
		return errors.New("can't save nil workstream")
	}
	m := mapper.WorkstreamToModel(w)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}
	if m.PriorityLabel == "" {
		m.PriorityLabel = string(entity.PriorityNormal)
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO workstreams(id, name, working_directory, active_session_id, message_count, preview, unread_count, is_priority, priority_label, priority_order, queued_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, m.ID.String(), m.Name, m.WorkingDirectory, nullableUUID(m.ActiveSessionID), m.MessageCount, nullableStr(m.Preview), m.UnreadCount, boolToInt(m.IsPriority), m.PriorityLabel, m.PriorityOrder, nullableTS(m.QueuedAt), ts(m.CreatedAt), ts(m.UpdatedAt))
	if err != nil {
		return fmt.Errorf("create workstream: %w", err)
	}
	r.updateGauge(ctx)
	return nil
}

// Get returns the workstream with the given id.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*entity.Workstream, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, name, working_directory, active_session_id, message_count, preview, unread_count, is_priority, priority_label, priority_order, queued_at, created_at, updated_at
FROM workstreams
WHERE id = ?
`, id.String())
	m, err := scanWorkstream(row)
	if err != nil {
		if stderr.Is(err, sql.ErrNoRows) {
			return nil, &errors.WorkstreamNotFoundError{ID: id}
		}
		return nil, err
	}
	return mapper.ModelToWorkstream(m)
}

// List returns all workstreams in creation order.
func (r *repository) List(ctx context.Context) ([]*entity.Workstream, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, name, working_directory, active_session_id, message_count, preview, unread_count, is_priority, priority_label, priority_order, queued_at, created_at, updated_at
FROM workstreams
ORDER BY created_at ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list workstreams: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Workstream, 0)
	for rows.Next() {
		m, err := scanWorkstream(rows)
		if err != nil {
			return nil, err
		}
		w, err := mapper.ModelToWorkstream(m)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iter workstreams: %w", err)
	}
	return out, nil
}

// Delete removes the workstream with the given id.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.exec(ctx, id, `DELETE FROM workstreams WHERE id = ?`, id.String()); err != nil {
		return err
	}
	r.updateGauge(ctx)
	return nil
}

// AttachSession binds a backend session to the workstream. A workstream with
// an attached session is Active; clearing is the only path back to Cleared.
func (r *repository) AttachSession(ctx context.Context, id uuid.UUID, sessionID uuid.UUID) error {
	return r.exec(ctx, id, `
UPDATE workstreams
SET active_session_id = ?, updated_at = ?
WHERE id = ?
`, sessionID.String(), ts(time.Now().UTC()), id.String())
}

// ClearSession applies a confirmed context clear: the session detaches, the
// message counter resets, and the preview empties. Every other column is
// deliberately left out of the UPDATE.
func (r *repository) ClearSession(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `
UPDATE workstreams
SET active_session_id = NULL, message_count = 0, preview = NULL, updated_at = ?
WHERE id = ?
`, ts(time.Now().UTC()), id.String())
}

// SetPriority places the workstream in the priority queue. Re-prioritizing a
// queued workstream keeps its original enqueue time.
func (r *repository) SetPriority(ctx context.Context, id uuid.UUID, label entity.PriorityLabel, order int64) error {
	if !label.Valid() {
		return fmt.Errorf("invalid priority label %q", label)
	}
	now := ts(time.Now().UTC())
	return r.exec(ctx, id, `
UPDATE workstreams
SET is_priority = 1, priority_label = ?, priority_order = ?, queued_at = COALESCE(queued_at, ?), updated_at = ?
WHERE id = ?
`, string(label), order, now, now, id.String())
}

// ClearPriority removes the workstream from the priority queue.
func (r *repository) ClearPriority(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `
UPDATE workstreams
SET is_priority = 0, priority_label = ?, priority_order = 0, queued_at = NULL, updated_at = ?
WHERE id = ?
`, string(entity.PriorityNormal), ts(time.Now().UTC()), id.String())
}

// BumpMessage records one conversation message: counters rise and the
// preview follows the latest text.
func (r *repository) BumpMessage(ctx context.Context, id uuid.UUID, preview string) error {
	return r.exec(ctx, id, `
UPDATE workstreams
SET message_count = message_count + 1, unread_count = unread_count + 1, preview = ?, updated_at = ?
WHERE id = ?
`, preview, ts(time.Now().UTC()), id.String())
}

// MarkRead zeroes the unread counter.
func (r *repository) MarkRead(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, `
UPDATE workstreams
SET unread_count = 0
WHERE id = ?
`, id.String())
}

// Count returns the total number of stored workstreams.
func (r *repository) Count(ctx context.Context) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM workstreams`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count workstreams: %w", err)
	}
	return count, nil
}

// exec runs a single-row statement keyed by workstream id and maps an empty
// result to WorkstreamNotFoundError.
func (r *repository) exec(ctx context.Context, id uuid.UUID, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update workstream: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update workstream rows affected: %w", err)
	}
	if affected == 0 {
		return &errors.WorkstreamNotFoundError{ID: id}
	}
	return nil
}

func (r *repository) updateGauge(ctx context.Context) {
	count, err := r.Count(ctx)
	if err != nil {
		r.logger.Warnf("unable to update workstream gauge: %s", err)
		return
	}
	r.stats.Gauge(_gaugeWorkstreams).Update(float64(count))
}

func scanWorkstream(scanner interface{ Scan(dest ...any) error }) (*model.Workstream, error) {
	var (
		m             model.Workstream
		idStr         string
		sessionID     sql.NullString
		preview       sql.NullString
		isPriority    int
		queuedAtStr   sql.NullString
		createdAtStr  string
		updatedAtStr  string
		priorityLabel string
	)
	if err := scanner.Scan(&idStr, &m.Name, &m.WorkingDirectory, &sessionID, &m.MessageCount, &preview, &m.UnreadCount, &isPriority, &priorityLabel, &m.PriorityOrder, &queuedAtStr, &createdAtStr, &updatedAtStr); err != nil {
		if stderr.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("scan workstream: %w", err)
	}
	id, err := uuid.FromString(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse workstream id: %w", err)
	}
	m.ID = id
	m.IsPriority = isPriority == 1
	m.PriorityLabel = priorityLabel
	if sessionID.Valid {
		v, err := uuid.FromString(sessionID.String)
		if err != nil {
			return nil, fmt.Errorf("parse active session id: %w", err)
		}
		m.ActiveSessionID = &v
	}
	if preview.Valid {
		v := preview.String
		m.Preview = &v
	}
	if queuedAtStr.Valid {
		v, err := parseTS(queuedAtStr.String)
		if err != nil {
			return nil, fmt.Errorf("parse queued_at: %w", err)
		}
		m.QueuedAt = &v
	}
	if m.CreatedAt, err = parseTS(createdAtStr); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if m.UpdatedAt, err = parseTS(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &m, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func nullableStr(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableUUID(v *uuid.UUID) any {
	if v == nil {
		return nil
	}
	return v.String()
}

func nullableTS(v *time.Time) any {
	if v == nil {
		return nil
	}
	return ts(*v)
}

func ts(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTS(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, strings.TrimSpace(s))
}

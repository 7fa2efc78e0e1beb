// Package sqlite provides a SQLite-backed implementation of the track cache
// port.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/wvaughn-dev/setforge/internal/core/domain"
	"github.com/wvaughn-dev/setforge/internal/core/ports"
)

// Adapter implements the track cache port for SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.TrackCache = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	_, err := a.db.Exec(`
		CREATE TABLE IF NOT EXISTS tracks (
			id           TEXT PRIMARY KEY,
			title        TEXT NOT NULL,
			artist       TEXT NOT NULL,
			duration_ms  INTEGER NOT NULL,
			bpm          REAL,
			key_index    INTEGER,
			energy       REAL,
			danceability REAL,
			permalink    TEXT,
			preview_url  TEXT
		)
	`)
	return err
}

// GetTrack loads a cached track by ID, returning domain.ErrNotFound when the
// cache has never seen it.
func (a *Adapter) GetTrack(ctx context.Context, id string) (domain.Track, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, title, artist, duration_ms, bpm, key_index, energy, danceability,
			IFNULL(permalink, ''), IFNULL(preview_url, '')
		FROM tracks WHERE id = ?
	`, id)

	var (
		track    domain.Track
		bpm      sql.NullFloat64
		keyIndex sql.NullInt64
		energy   sql.NullFloat64
		dance    sql.NullFloat64
	)
	if err := row.Scan(
		&track.ID,
		&track.Title,
		&track.Artist,
		&track.DurationMs,
		&bpm,
		&keyIndex,
		&energy,
		&dance,
		&track.Permalink,
		&track.PreviewURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Track{}, domain.ErrNotFound
		}
		return domain.Track{}, fmt.Errorf("failed to load track: %w", err)
	}

	if bpm.Valid {
		track.BPM = bpm.Float64
	}
	if keyIndex.Valid {
		if key, err := domain.KeyFromIndex(int(keyIndex.Int64)); err == nil {
			track.Key = &key
		}
	}
	if energy.Valid {
		track.Energy = &energy.Float64
	}
	if dance.Valid {
		track.Danceability = &dance.Float64
	}

	return track, nil
}

// PutTrack upserts a track record.
func (a *Adapter) PutTrack(ctx context.Context, t domain.Track) error {
	var (
		bpm      sql.NullFloat64
		keyIndex sql.NullInt64
		energy   sql.NullFloat64
		dance    sql.NullFloat64
	)
	if t.HasBPM() {
		bpm = sql.NullFloat64{Float64: t.BPM, Valid: true}
	}
	if t.Key != nil {
		keyIndex = sql.NullInt64{Int64: int64(t.Key.Index()), Valid: true}
	}
	if t.Energy != nil {
		energy = sql.NullFloat64{Float64: *t.Energy, Valid: true}
	}
	if t.Danceability != nil {
		dance = sql.NullFloat64{Float64: *t.Danceability, Valid: true}
	}

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO tracks (id, title, artist, duration_ms, bpm, key_index, energy, danceability, permalink, preview_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			artist = excluded.artist,
			duration_ms = excluded.duration_ms,
			bpm = excluded.bpm,
			key_index = excluded.key_index,
			energy = excluded.energy,
			danceability = excluded.danceability,
			permalink = excluded.permalink,
			preview_url = excluded.preview_url
	`, t.ID, t.Title, t.Artist, t.DurationMs, bpm, keyIndex, energy, dance, t.Permalink, t.PreviewURL)
	if err != nil {
		return fmt.Errorf("failed to save track: %w", err)
	}
	return nil
}

// UpdateTrackEnergy writes a measured energy value onto a cached track.
func (a *Adapter) UpdateTrackEnergy(ctx context.Context, id string, energy float64) error {
	res, err := a.db.ExecContext(ctx, `UPDATE tracks SET energy = ? WHERE id = ?`, energy, id)
	if err != nil {
		return fmt.Errorf("failed to update track energy: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update track energy: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

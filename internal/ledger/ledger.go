// Package ledger persists which albums exist and which files have already
// been handled, so interrupted syncs resume without duplicating work. It is
// backed by a local SQLite database owned by a single process.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, registers as "sqlite".
)

// ErrAlbumNotFound is returned by GetAlbum when no album row matches.
var ErrAlbumNotFound = errors.New("album not found")

// Album is one locally tracked album. GID is the remote store's identifier.
type Album struct {
	ID   int64
	GID  string
	Name string
}

// UploadRecord is the handled-mark for one file of one sync attempt. A row
// exists whether the attempt succeeded or failed; MediaID is set only on
// success.
type UploadRecord struct {
	AlbumID   int64
	Directory string
	Filename  string
	MediaID   string
	Success   bool
}

// Ledger is the sole writer of its database file: the pool is capped at one
// connection so concurrent method calls serialize instead of returning
// SQLITE_BUSY.
type Ledger struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the database at dbPath and applies any
// pending schema migrations. Use ":memory:" for tests.
func Open(dbPath string, logger *slog.Logger) (*Ledger, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger database %s: %w", dbPath, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(context.Background(), db, logger); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("ledger database ready", slog.String("path", dbPath))
	return &Ledger{db: db, logger: logger}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// InsertAlbum records a newly created album and returns it with its local ID.
func (l *Ledger) InsertAlbum(ctx context.Context, gid, name string) (Album, error) {
	res, err := l.db.ExecContext(ctx,
		"INSERT INTO albums (gid, name) VALUES (?, ?)", gid, name)
	if err != nil {
		return Album{}, fmt.Errorf("failed to insert album %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Album{}, fmt.Errorf("failed to read album id: %w", err)
	}
	return Album{ID: id, GID: gid, Name: name}, nil
}

// GetAlbum looks an album up by its local id. Returns ErrAlbumNotFound if
// the id has never been assigned.
func (l *Ledger) GetAlbum(ctx context.Context, id int64) (Album, error) {
	var a Album
	err := l.db.QueryRowContext(ctx,
		"SELECT id, gid, name FROM albums WHERE id = ?", id).
		Scan(&a.ID, &a.GID, &a.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return Album{}, fmt.Errorf("album %d: %w", id, ErrAlbumNotFound)
	}
	if err != nil {
		return Album{}, fmt.Errorf("failed to look up album %d: %w", id, err)
	}
	return a, nil
}

// ListAlbums returns every tracked album in insertion order.
func (l *Ledger) ListAlbums(ctx context.Context) ([]Album, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT id, gid, name FROM albums ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	defer rows.Close()

	var albums []Album
	for rows.Next() {
		var a Album
		if err := rows.Scan(&a.ID, &a.GID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan album row: %w", err)
		}
		albums = append(albums, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate album rows: %w", err)
	}
	return albums, nil
}

// RecordUploads inserts all records in a single transaction, so one chunk's
// outcomes land in the ledger atomically or not at all.
func (l *Ledger) RecordUploads(ctx context.Context, records []UploadRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin upload transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO uploads (album_id, directory, filename, media_id, success)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare upload insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		var mediaID sql.NullString
		if r.MediaID != "" {
			mediaID = sql.NullString{String: r.MediaID, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx,
			r.AlbumID, r.Directory, r.Filename, mediaID, r.Success); err != nil {
			return fmt.Errorf("failed to record upload of %s: %w", r.Filename, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upload records: %w", err)
	}
	return nil
}

// ListHandled returns the set of filenames already attempted for the album
// and directory, regardless of whether the attempt succeeded.
func (l *Ledger) ListHandled(ctx context.Context, albumID int64, directory string) (map[string]struct{}, error) {
	rows, err := l.db.QueryContext(ctx,
		"SELECT filename FROM uploads WHERE album_id = ? AND directory = ?",
		albumID, directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list handled files: %w", err)
	}
	defer rows.Close()

	handled := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan upload row: %w", err)
		}
		handled[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate upload rows: %w", err)
	}
	return handled, nil
}

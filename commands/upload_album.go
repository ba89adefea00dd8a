package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ccfrost/gpsync/internal/ledger"
)

// ErrUnsupportedFiles is returned under strict extension checking when the
// directory contains files outside the photo/video allow-lists.
var ErrUnsupportedFiles = errors.New("directory contains unsupported files")

// ErrUploadsFailed is returned under strict upload checking when a batch
// contained a failed file. The batch's outcomes are recorded before the
// error is returned.
var ErrUploadsFailed = errors.New("some uploads failed")

// UploadAlbumOptions configures one sync run.
type UploadAlbumOptions struct {
	// Dir is the local directory to sync. It is not walked recursively;
	// relative paths are resolved against the working directory.
	Dir string
	// AlbumID is the ledger-assigned album id.
	AlbumID int64
	// BatchSize caps the number of files per registration call.
	BatchSize int
	// StrictExtensions aborts the run, before any upload, if the directory
	// contains files that are neither photos nor videos.
	StrictExtensions bool
	// StrictUploads aborts the run after the first batch containing a
	// failed file, once that batch's outcomes are recorded.
	StrictUploads bool
}

// UploadAlbum uploads the directory's pending media files into the album,
// one batch at a time, recording every attempted file in the ledger so an
// interrupted or partially failed run resumes where it left off. A file is
// attempted at most once per (album, directory, filename): previously
// failed files are not retried.
func UploadAlbum(ctx context.Context, db *ledger.Ledger, client PhotosClient, opts UploadAlbumOptions) error {
	album, err := db.GetAlbum(ctx, opts.AlbumID)
	if err != nil {
		return err
	}

	// The directory is part of the ledger's dedup key, so every spelling
	// of the same directory must resolve to the same key.
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve directory %s: %w", opts.Dir, err)
	}
	opts.Dir = dir

	eligible, err := listMediaFiles(opts.Dir, opts.StrictExtensions)
	if err != nil {
		return err
	}
	if len(eligible) == 0 {
		logger.Info("no valid files to upload", slog.String("dir", opts.Dir))
		return nil
	}

	handled, err := db.ListHandled(ctx, album.ID, opts.Dir)
	if err != nil {
		return err
	}

	var paths []string
	var totalSize int64
	for _, name := range eligible {
		if _, ok := handled[name]; ok {
			continue
		}
		path := filepath.Join(opts.Dir, name)
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}
		paths = append(paths, path)
		totalSize += info.Size()
	}
	if len(paths) == 0 {
		logger.Info("no pending files, everything already handled",
			slog.String("dir", opts.Dir), slog.String("album", album.Name))
		return nil
	}

	logger.Info("starting upload",
		slog.String("album", album.Name),
		slog.Int("pending", len(paths)),
		slog.Int64("total_bytes", totalSize))
	bar := NewProgressBar(totalSize, fmt.Sprintf("Uploading to %s", album.Name))

	run, err := client.UploadBatch(paths, album.GID, opts.BatchSize)
	if err != nil {
		return err
	}

	anyFailed := false
	for run.Next(ctx) {
		res := run.Result()

		records := make([]ledger.UploadRecord, 0, len(res.Outcomes))
		for _, o := range res.Outcomes {
			records = append(records, ledger.UploadRecord{
				AlbumID:   album.ID,
				Directory: opts.Dir,
				Filename:  o.Filename,
				MediaID:   o.MediaID,
				Success:   o.Success,
			})
		}
		// The batch's outcomes must be durable before anything else looks
		// at them; a ledger error here is fatal.
		if err := db.RecordUploads(ctx, records); err != nil {
			return err
		}

		batchFailed := false
		for _, o := range res.Outcomes {
			if o.Success {
				logger.Info("uploaded", slog.String("file", o.Filename),
					slog.String("media_id", o.MediaID))
			} else {
				logger.Warn("upload failed", slog.String("file", o.Filename))
				batchFailed = true
				anyFailed = true
			}
			if info, err := os.Stat(o.Path); err == nil {
				bar.Add64(info.Size())
			}
		}

		if batchFailed && opts.StrictUploads {
			return ErrUploadsFailed
		}
	}
	if err := run.Err(); err != nil {
		return fmt.Errorf("upload aborted, already recorded files stay recorded: %w", err)
	}

	bar.Finish()
	fmt.Println()
	if anyFailed {
		logger.Warn("run complete with failures, failed files will not be retried")
	} else {
		logger.Info("run complete")
	}
	return nil
}

// listMediaFiles returns the names of the directory's photo and video
// files in lexical order (os.ReadDir's order). Subdirectories are
// ignored. With strict set, any file outside the allow-lists fails the
// listing.
func listMediaFiles(dir string, strict bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	var unsupported []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ClassifyMedia(e.Name()) == MediaUnsupported {
			unsupported = append(unsupported, e.Name())
			continue
		}
		names = append(names, e.Name())
	}
	if strict && len(unsupported) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFiles, strings.Join(unsupported, ", "))
	}
	return names, nil
}

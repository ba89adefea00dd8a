package gphotos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// maxBatchSize is the API limit for one mediaItems:batchCreate call.
const maxBatchSize = 50

// FileOutcome is the result for one file of one chunk. MediaID is set only
// on success.
type FileOutcome struct {
	Path     string
	Filename string
	MediaID  string
	Success  bool
}

// BatchResult holds the per-file outcomes of one fully processed chunk.
type BatchResult struct {
	Outcomes []FileOutcome
}

// BatchUpload walks a set of files through the two-phase upload protocol one
// chunk at a time, in the style of sql.Rows:
//
//	run, err := client.UploadBatch(paths, gid, batchSize)
//	for run.Next(ctx) {
//		persist(run.Result())
//	}
//	if err := run.Err(); err != nil { ... }
//
// Each Next call does the real network work for exactly one chunk, so the
// caller can persist a chunk's outcomes before the next chunk starts.
type BatchUpload struct {
	client   *Client
	albumGID string
	chunks   [][]string
	cur      *BatchResult
	err      error
}

// UploadBatch partitions paths into consecutive chunks of at most batchSize
// and returns the iterator that uploads them. batchSize must be in [1,50].
func (c *Client) UploadBatch(paths []string, albumGID string, batchSize int) (*BatchUpload, error) {
	if batchSize < 1 || batchSize > maxBatchSize {
		return nil, fmt.Errorf("batch size %d outside [1,%d]", batchSize, maxBatchSize)
	}

	var chunks [][]string
	for start := 0; start < len(paths); start += batchSize {
		end := start + batchSize
		if end > len(paths) {
			end = len(paths)
		}
		chunks = append(chunks, paths[start:end])
	}
	return &BatchUpload{client: c, albumGID: albumGID, chunks: chunks}, nil
}

// Next processes the next chunk. It returns false when all chunks are done
// or a chunk's registration call failed; Err distinguishes the two. A
// context error is only observed between chunks, never mid-chunk.
func (u *BatchUpload) Next(ctx context.Context) bool {
	u.cur = nil
	if u.err != nil || len(u.chunks) == 0 {
		return false
	}
	if err := ctx.Err(); err != nil {
		u.err = err
		return false
	}

	chunk := u.chunks[0]
	u.chunks = u.chunks[1:]

	res, err := u.client.uploadChunk(ctx, chunk, u.albumGID)
	if err != nil {
		u.err = err
		return false
	}
	u.cur = res
	return true
}

// Result returns the outcomes of the chunk processed by the last Next call.
func (u *BatchUpload) Result() *BatchResult {
	return u.cur
}

// Err returns the error that ended iteration, if any. A registration
// failure orphans the chunk's phase-1 uploads server-side; none of the
// chunk's files are reported as outcomes, so they stay pending and are
// re-uploaded whole on the next run.
func (u *BatchUpload) Err() error {
	return u.err
}

type simpleMediaItem struct {
	UploadToken string `json:"uploadToken"`
	FileName    string `json:"fileName"`
}

type newMediaItem struct {
	SimpleMediaItem simpleMediaItem `json:"simpleMediaItem"`
}

// uploadChunk runs both protocol phases for one chunk. Phase-1 failures are
// contained per file; a phase-2 failure fails the whole chunk.
func (c *Client) uploadChunk(ctx context.Context, paths []string, albumGID string) (*BatchResult, error) {
	outcomes := make([]FileOutcome, len(paths))
	tokenIndex := make(map[string]int, len(paths))
	var items []newMediaItem

	// Phase 1: raw byte uploads, one token per file.
	for i, path := range paths {
		outcomes[i] = FileOutcome{Path: path, Filename: filepath.Base(path)}

		token, err := c.uploadBytes(ctx, path)
		if err != nil {
			// Contained: the file is reported as failed and left out of
			// the registration payload; its siblings proceed.
			c.logger.Warn("raw upload failed",
				slog.String("file", outcomes[i].Filename),
				slog.String("error", err.Error()))
			continue
		}
		tokenIndex[token] = i
		items = append(items, newMediaItem{
			SimpleMediaItem: simpleMediaItem{UploadToken: token, FileName: outcomes[i].Filename},
		})
	}

	// Phase 2: one registration call binding every token to the album.
	if len(items) == 0 {
		return &BatchResult{Outcomes: outcomes}, nil
	}

	reqBody, err := json.Marshal(map[string]any{
		"albumId":       albumGID,
		"newMediaItems": items,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batchCreate request: %w", err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	resp, err := c.call(ctx, http.MethodPost, "/mediaItems:batchCreate", bytes.NewReader(reqBody), header)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result struct {
		NewMediaItemResults []struct {
			UploadToken string `json:"uploadToken"`
			Status      struct {
				Message string `json:"message"`
			} `json:"status"`
			MediaItem struct {
				ID string `json:"id"`
			} `json:"mediaItem"`
		} `json:"newMediaItemResults"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode batchCreate response: %w", err)
	}

	// Match each result back to its originating token. Any status other
	// than "Success" means the token was consumed but no media item exists.
	for _, r := range result.NewMediaItemResults {
		i, ok := tokenIndex[r.UploadToken]
		if !ok {
			c.logger.Warn("batchCreate result for unknown upload token")
			continue
		}
		if r.Status.Message == "Success" {
			outcomes[i].Success = true
			outcomes[i].MediaID = r.MediaItem.ID
		} else {
			c.logger.Warn("media item registration failed",
				slog.String("file", outcomes[i].Filename),
				slog.String("status", r.Status.Message))
		}
	}

	return &BatchResult{Outcomes: outcomes}, nil
}

// uploadBytes reads one file whole and posts it to the raw upload endpoint,
// returning the upload token. There is no resumable mode: a file either
// completes in one exchange or is retried whole on the next run.
func (c *Client) uploadBytes(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	header := http.Header{}
	header.Set("Content-Type", "application/octet-stream")
	header.Set("X-Goog-Upload-Protocol", "raw")
	resp, err := c.call(ctx, http.MethodPost, "/uploads", bytes.NewReader(data), header)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	token, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload token: %w", err)
	}
	if len(token) == 0 {
		return "", fmt.Errorf("received empty upload token for %s", path)
	}
	return string(token), nil
}

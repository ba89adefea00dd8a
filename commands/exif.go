package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sort"
)

// ReadExif prints the file's metadata as sorted tag/value lines. It shells
// out to exiftool with JSON output, which handles every format the remote
// store accepts.
func ReadExif(ctx context.Context, w io.Writer, path string) error {
	exiftoolPath, err := exec.LookPath("exiftool")
	if err != nil {
		return fmt.Errorf("exiftool not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, exiftoolPath, "-j", path)
	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run exiftool: %w", err)
	}

	var results []map[string]any
	if err := json.Unmarshal(output, &results); err != nil {
		return fmt.Errorf("failed to unmarshal exiftool output: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no exif data for %s", path)
	}

	tags := make([]string, 0, len(results[0]))
	for tag := range results[0] {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		fmt.Fprintf(w, "%s: %v\n", tag, results[0][tag])
	}
	return nil
}

// WriteExif sets one tag on the file in place.
func WriteExif(ctx context.Context, path, tag, value string) error {
	return runExiftool(ctx, fmt.Sprintf("-%s=%s", tag, value), path)
}

// ClearExif removes all writable metadata from the file in place.
func ClearExif(ctx context.Context, path string) error {
	return runExiftool(ctx, "-all=", path)
}

func runExiftool(ctx context.Context, tagArg, path string) error {
	exiftoolPath, err := exec.LookPath("exiftool")
	if err != nil {
		return fmt.Errorf("exiftool not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, exiftoolPath, "-overwrite_original", tagArg, path)
	if output, err := cmd.CombinedOutput(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("failed to run exiftool: %w (output: %s)", err, output)
	}
	return nil
}

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ccfrost/gpsync/internal/ledger"
)

// CreateAlbum creates the album in the remote store first, then registers
// it in the ledger under the server-assigned gid and title. The server is
// authoritative for both: it may normalize the requested name. If the
// process dies between the two steps the remote album exists untracked;
// rerunning creates a fresh one, which the remote store permits (titles
// are not unique there).
func CreateAlbum(ctx context.Context, db *ledger.Ledger, client PhotosClient, name string) (ledger.Album, error) {
	if name == "" {
		return ledger.Album{}, fmt.Errorf("album name must not be empty")
	}

	remote, err := client.CreateAlbum(ctx, name)
	if err != nil {
		return ledger.Album{}, fmt.Errorf("failed to create remote album %q: %w", name, err)
	}
	logger.Debug("remote album created",
		slog.String("gid", remote.ID), slog.String("title", remote.Title))

	album, err := db.InsertAlbum(ctx, remote.ID, remote.Title)
	if err != nil {
		return ledger.Album{}, fmt.Errorf("remote album %s created but not registered locally: %w", remote.ID, err)
	}
	return album, nil
}

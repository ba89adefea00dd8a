package commands

import (
	"github.com/ccfrost/gpsync/internal/gphotos"
	"github.com/ccfrost/gpsync/internal/ledger"
)

// ReconciledAlbum is one row of the combined local/remote album view.
// LocalID is zero and Name empty for albums only the remote store knows;
// RemoteTitle is empty for albums only the local ledger knows.
type ReconciledAlbum struct {
	LocalID     int64
	GID         string
	Name        string
	RemoteTitle string
}

// ReconcileAlbums joins the local ledger's albums with the remote store's
// by gid. Local albums come first in ledger order, each annotated with the
// matching remote title when one exists; remote albums with no local
// counterpart follow in the order the API returned them.
func ReconcileAlbums(local []ledger.Album, remote []gphotos.Album) []ReconciledAlbum {
	remoteByGID := make(map[string]gphotos.Album, len(remote))
	for _, r := range remote {
		remoteByGID[r.ID] = r
	}

	rows := make([]ReconciledAlbum, 0, len(local)+len(remote))
	matched := make(map[string]struct{}, len(local))
	for _, l := range local {
		row := ReconciledAlbum{LocalID: l.ID, GID: l.GID, Name: l.Name}
		if r, ok := remoteByGID[l.GID]; ok {
			row.RemoteTitle = r.Title
			matched[l.GID] = struct{}{}
		}
		rows = append(rows, row)
	}

	for _, r := range remote {
		if _, ok := matched[r.ID]; ok {
			continue
		}
		rows = append(rows, ReconciledAlbum{GID: r.ID, RemoteTitle: r.Title})
	}
	return rows
}

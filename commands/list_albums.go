package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ccfrost/gpsync/internal/gphotos"
	"github.com/ccfrost/gpsync/internal/ledger"
)

// ListAlbums prints the ledger's albums as a table.
func ListAlbums(ctx context.Context, db *ledger.Ledger, w io.Writer) error {
	albums, err := db.ListAlbums(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGID")
	for _, a := range albums {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", a.ID, a.Name, a.GID)
	}
	return tw.Flush()
}

// ListAllAlbums prints the reconciled local/remote album view. Remote-only
// rows have no local id and show "-" in the local columns.
func ListAllAlbums(ctx context.Context, db *ledger.Ledger, client PhotosClient, w io.Writer) error {
	local, err := db.ListAlbums(ctx)
	if err != nil {
		return err
	}
	remote, err := client.ListAlbums(ctx, true, gphotos.MaxPageSize)
	if err != nil {
		return fmt.Errorf("failed to list remote albums: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tREMOTE TITLE\tGID")
	for _, row := range ReconcileAlbums(local, remote) {
		id := "-"
		name := "-"
		if row.LocalID != 0 {
			id = fmt.Sprintf("%d", row.LocalID)
			name = row.Name
		}
		title := row.RemoteTitle
		if title == "" {
			title = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, name, title, row.GID)
	}
	return tw.Flush()
}

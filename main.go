package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/ccfrost/gpsync/commands"
	"github.com/ccfrost/gpsync/gpsyncconfig"
	"github.com/ccfrost/gpsync/internal/gphotos"
	"github.com/ccfrost/gpsync/internal/ledger"
)

const gpsync = "gpsync"

func main() {
	var configPath string
	var dbPath string
	var config gpsyncconfig.GPsyncConfig

	rootCmd := cobra.Command{
		Use:   gpsync,
		Short: "Sync local media directories into Google Photos albums",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			config, err = gpsyncconfig.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if dbPath != "" {
				config.DBPath = dbPath
			}
			if err := config.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the ledger database (overrides config)")

	// openLedger and newPhotosClient are shared by the Run closures below;
	// each closure exits the process on error, matching cobra's Run (not
	// RunE) style.
	openLedger := func() *ledger.Ledger {
		db, err := ledger.Open(config.DBPath, commands.Logger())
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return db
	}
	newPhotosClient := func(ctx context.Context) commands.PhotosClient {
		configDir := filepath.Dir(config.ConfigPath())
		httpClient, err := commands.GetAuthenticatedClient(ctx, config, configDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		limiter := rate.NewLimiter(rate.Every(time.Second/time.Duration(config.Upload.RequestsPerSecond)), 1)
		return commands.NewPhotosClient(gphotos.NewClient(httpClient, limiter, commands.Logger()))
	}

	createAuthCmd := cobra.Command{
		Use:   "create-auth",
		Short: "Run the OAuth2 flow and save the token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			configDir := filepath.Dir(config.ConfigPath())
			if err := commands.CreateAuth(context.Background(), config, configDir); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	rootCmd.AddCommand(&createAuthCmd)

	listAlbumsCmd := cobra.Command{
		Use:   "list-albums",
		Short: "List albums known to the local ledger",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			all, err := cmd.Flags().GetBool("all")
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid all flag:", err)
				os.Exit(1)
			}

			db := openLedger()
			defer db.Close()

			ctx := context.Background()
			if all {
				err = commands.ListAllAlbums(ctx, db, newPhotosClient(ctx), os.Stdout)
			} else {
				err = commands.ListAlbums(ctx, db, os.Stdout)
			}
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	listAlbumsCmd.Flags().BoolP("all", "a", false, "Also fetch remote albums and show the reconciled view")
	rootCmd.AddCommand(&listAlbumsCmd)

	createAlbumCmd := cobra.Command{
		Use:   "create-album <name>",
		Short: "Create an album remotely and register it locally",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			db := openLedger()
			defer db.Close()

			ctx := context.Background()
			album, err := commands.CreateAlbum(ctx, db, newPhotosClient(ctx), args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			fmt.Printf("Created album %q with id %d\n", album.Name, album.ID)
		},
	}
	rootCmd.AddCommand(&createAlbumCmd)

	uploadAlbumCmd := cobra.Command{
		Use:   "upload-album <from_dir> <to_album_id>",
		Short: "Upload a directory's pending media files into an album",
		Long: `Upload the media files of <from_dir> into the album with local id
<to_album_id>. Files already attempted for this album and directory are
skipped, so an interrupted run can simply be rerun.`,
		Args: cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			albumID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid album id:", args[1])
				os.Exit(1)
			}
			strictExtensions, err := cmd.Flags().GetBool("strict-extensions")
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid strict-extensions flag:", err)
				os.Exit(1)
			}
			strictUploads, err := cmd.Flags().GetBool("strict-uploads")
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid strict-uploads flag:", err)
				os.Exit(1)
			}

			db := openLedger()
			defer db.Close()

			ctx := context.Background()
			opts := commands.UploadAlbumOptions{
				Dir:              args[0],
				AlbumID:          albumID,
				BatchSize:        config.Upload.BatchSize,
				StrictExtensions: strictExtensions,
				StrictUploads:    strictUploads,
			}
			if err := commands.UploadAlbum(ctx, db, newPhotosClient(ctx), opts); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	uploadAlbumCmd.Flags().BoolP("strict-extensions", "e", false, "Fail if the directory contains unsupported files")
	uploadAlbumCmd.Flags().BoolP("strict-uploads", "s", false, "Fail after the first batch containing a failed upload")
	rootCmd.AddCommand(&uploadAlbumCmd)

	exifCmd := cobra.Command{
		Use:   "exif",
		Short: "Inspect or edit a media file's metadata (requires exiftool)",
	}
	exifReadCmd := cobra.Command{
		Use:   "read <file>",
		Short: "Print a file's metadata",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := commands.ReadExif(context.Background(), os.Stdout, args[0]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	exifWriteCmd := cobra.Command{
		Use:   "write <file> <tag> <value>",
		Short: "Set one metadata tag in place",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			if err := commands.WriteExif(context.Background(), args[0], args[1], args[2]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	exifClearCmd := cobra.Command{
		Use:   "clear <file>",
		Short: "Remove all metadata from a file in place",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := commands.ClearExif(context.Background(), args[0]); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	exifCmd.AddCommand(&exifReadCmd, &exifWriteCmd, &exifClearCmd)
	rootCmd.AddCommand(&exifCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

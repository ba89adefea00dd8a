//go:generate go run github.com/golang/mock/mockgen -source=${GOFILE} -destination=zz_generated_local_mocks_test.go -package=commands

package commands

import (
	"context"

	"github.com/ccfrost/gpsync/internal/gphotos"
)

// PhotosClient defines the remote store operations the commands use.
type PhotosClient interface {
	ListAlbums(ctx context.Context, excludeNonAppCreated bool, pageSize int) ([]gphotos.Album, error)
	CreateAlbum(ctx context.Context, title string) (*gphotos.Album, error)
	UploadBatch(paths []string, albumGID string, batchSize int) (BatchRunner, error)
}

// BatchRunner is the chunk-at-a-time upload iterator. See
// gphotos.BatchUpload for the contract.
type BatchRunner interface {
	Next(ctx context.Context) bool
	Result() *gphotos.BatchResult
	Err() error
}

// photosClientAdapter lifts *gphotos.Client to PhotosClient: the concrete
// UploadBatch returns *gphotos.BatchUpload, which the interface method
// re-types as a BatchRunner.
type photosClientAdapter struct {
	*gphotos.Client
}

// NewPhotosClient wraps a configured client for use by the commands.
func NewPhotosClient(c *gphotos.Client) PhotosClient {
	return photosClientAdapter{Client: c}
}

func (a photosClientAdapter) UploadBatch(paths []string, albumGID string, batchSize int) (BatchRunner, error) {
	return a.Client.UploadBatch(paths, albumGID, batchSize)
}

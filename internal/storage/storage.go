package storage

import (
	"context"
	"time"
)

// Default expiry duration for presigned download URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ReportArchive defines the interface for keeping copies of generated
// reports in object storage. Archiving is best-effort: the exporter streams
// the report to the caller whether or not the archive write succeeds.
type ReportArchive interface {
	// Store uploads a generated report under the given object key.
	Store(ctx context.Context, objectKey string, contentType string, body []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for an archived report directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

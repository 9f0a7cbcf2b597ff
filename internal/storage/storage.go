package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ContentTypeJSON is the content type of exported plans.
const ContentTypeJSON = "application/json"

// FileStorage defines the interface for object storage operations.
type FileStorage interface {
	// PutObject uploads body under objectKey, replacing any existing object.
	PutObject(ctx context.Context, objectKey string, contentType string, body []byte) error

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET requests
	// for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}

// PlanExportKey builds a fresh object key for an exported plan:
// plans/<userID>/<weekOf>/<uuid>.json
func PlanExportKey(userID, weekOf string) string {
	return fmt.Sprintf("plans/%s/%s/%s.json", userID, weekOf, uuid.NewString())
}

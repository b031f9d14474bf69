package copier

import (
	"github.com/google/uuid"
)

// ObjectRef identifies the object a notification refers to.
type ObjectRef struct {
	Bucket string
	Key    string
	Size   int64
}

// CopyInfo describes the object written to the target bucket.
type CopyInfo struct {
	ETag      string
	VersionID string
}

// Record is the metadata persisted for one copied object.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Timestamp int64     `json:"timestamp"`
	SizeMB    float64   `json:"size_mb"`
	Found     bool      `json:"found"`
}

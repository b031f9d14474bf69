package copier

import (
	"context"

	"github.com/minio/minio-go/v7"
)

// MinIOStore adapts minio.Client to the ObjectCopier interface.
type MinIOStore struct {
	client *minio.Client
}

// NewMinIOStore constructs an adapter.
func NewMinIOStore(client *minio.Client) *MinIOStore {
	return &MinIOStore{client: client}
}

func (s *MinIOStore) CopyObject(ctx context.Context, srcBucket, key, dstBucket string) (CopyInfo, error) {
	info, err := s.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: dstBucket, Object: key},
		minio.CopySrcOptions{Bucket: srcBucket, Object: key},
	)
	if err != nil {
		return CopyInfo{}, err
	}
	return CopyInfo{ETag: info.ETag, VersionID: info.VersionID}, nil
}

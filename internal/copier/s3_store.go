package copier

import (
	"context"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3CopyAPI is the subset of the S3 client used for copies.
type S3CopyAPI interface {
	CopyObject(ctx context.Context, params *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
}

// S3Store copies objects with the AWS S3 CopyObject API.
type S3Store struct {
	client S3CopyAPI
}

// NewS3Store constructs an S3 copier.
func NewS3Store(client S3CopyAPI) *S3Store {
	return &S3Store{client: client}
}

func (s *S3Store) CopyObject(ctx context.Context, srcBucket, key, dstBucket string) (CopyInfo, error) {
	out, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(dstBucket),
		Key:        aws.String(key),
		CopySource: aws.String(copySource(srcBucket, key)),
	})
	if err != nil {
		return CopyInfo{}, err
	}

	info := CopyInfo{VersionID: aws.ToString(out.VersionId)}
	if out.CopyObjectResult != nil {
		info.ETag = aws.ToString(out.CopyObjectResult.ETag)
	}
	return info, nil
}

// copySource builds the URL-encoded "bucket/key" value CopyObject expects.
// S3 decodes '+' in the copy source as a space, so it is escaped too.
func copySource(bucket, key string) string {
	return bucket + "/" + strings.ReplaceAll(url.PathEscape(key), "+", "%2B")
}

package copier

import (
	"context"
	"fmt"
	"time"

	"github.com/abduss/objcopy/internal/config"
	"github.com/abduss/objcopy/internal/metrics"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectCopier performs a server-side copy that keeps the object key.
type ObjectCopier interface {
	CopyObject(ctx context.Context, srcBucket, key, dstBucket string) (CopyInfo, error)
}

// RecordStore appends metadata records.
type RecordStore interface {
	Put(ctx context.Context, rec Record) error
}

// Service copies notified objects to the target bucket and records their metadata.
// It holds no per-notification state, so one Service can serve concurrent calls.
type Service struct {
	objects      ObjectCopier
	records      RecordStore
	targetBucket string
	checklist    []string
	log          *zap.Logger
	nowFunc      func() time.Time
	idFunc       func() uuid.UUID
}

// NewService constructs a copy service.
func NewService(objects ObjectCopier, records RecordStore, cfg config.CopierConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	checklist := make([]string, len(cfg.Checklist))
	copy(checklist, cfg.Checklist)

	return &Service{
		objects:      objects,
		records:      records,
		targetBucket: cfg.TargetBucket,
		checklist:    checklist,
		log:          log,
		nowFunc:      time.Now,
		idFunc:       uuid.New,
	}
}

// HandleEvent is the Lambda entry point. It returns only the error.
func (s *Service) HandleEvent(ctx context.Context, event events.S3Event) error {
	_, err := s.Handle(ctx, event)
	return err
}

// HandlePayload decodes a raw JSON notification and handles it. Decode failures
// are logged and counted like any other failure.
func (s *Service) HandlePayload(ctx context.Context, data []byte) (Record, error) {
	event, err := ParseEvent(data)
	if err != nil {
		return Record{}, s.fail(err)
	}
	return s.Handle(ctx, event)
}

// Handle copies the object named by the first record of event into the target
// bucket and persists a metadata record for it. Errors are logged and returned
// wrapped in ErrDecode, ErrCopy or ErrPersist; nothing is retried here.
func (s *Service) Handle(ctx context.Context, event events.S3Event) (Record, error) {
	ref, err := FirstObject(event)
	if err != nil {
		return Record{}, s.fail(err)
	}
	if extra := len(event.Records) - 1; extra > 0 {
		s.log.Debug("ignoring additional notification records", zap.Int("count", extra))
	}

	name := DecodeKey(ref.Key)
	log := s.log.With(
		zap.String("source_bucket", ref.Bucket),
		zap.String("key", name),
		zap.String("target_bucket", s.targetBucket),
	)
	log.Info("copying object", zap.Int64("size_bytes", ref.Size))

	start := time.Now()
	info, err := s.objects.CopyObject(ctx, ref.Bucket, name, s.targetBucket)
	if err != nil {
		return Record{}, s.fail(fmt.Errorf("%w %s/%s: %w", ErrCopy, ref.Bucket, name, err))
	}
	metrics.ObserveCopy(time.Since(start), ref.Size)
	log.Debug("object copied", zap.String("etag", info.ETag), zap.String("version_id", info.VersionID))

	found := ContainsAny(name, s.checklist)
	rec := s.BuildRecord(name, ConvertSize(ref.Size), found)

	if err := s.records.Put(ctx, rec); err != nil {
		return Record{}, s.fail(fmt.Errorf("%w %s: %w", ErrPersist, rec.ID, err))
	}
	if found {
		metrics.ObserveChecklistMatch()
	}
	metrics.ObserveNotification(metrics.ResultOK)

	log.Info("metadata recorded",
		zap.String("id", rec.ID.String()),
		zap.Int64("timestamp", rec.Timestamp),
		zap.Float64("size_mb", rec.SizeMB),
		zap.Bool("found", rec.Found),
	)
	return rec, nil
}

// BuildRecord assembles a record with a fresh id and the current time.
func (s *Service) BuildRecord(name string, sizeMB float64, found bool) Record {
	return Record{
		ID:        s.idFunc(),
		Name:      name,
		Timestamp: s.nowFunc().Unix(),
		SizeMB:    sizeMB,
		Found:     found,
	}
}

func (s *Service) fail(err error) error {
	s.log.Error("notification failed", zap.Error(err))
	metrics.ObserveNotification(resultOf(err))
	return err
}

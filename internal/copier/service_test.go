package copier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abduss/objcopy/internal/config"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCopiesAndRecordsStarWarsPoster(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{}
	service := newTestService(objects, records)

	fixedID := uuid.MustParse("0b1d6c1e-1f44-4bb5-9a7e-2f6f4a1c0d11")
	service.idFunc = func() uuid.UUID { return fixedID }
	service.nowFunc = func() time.Time { return time.Unix(1700000000, 0) }

	rec, err := service.Handle(context.Background(), newEvent("src", "star+wars+poster.png", 200000))
	require.NoError(t, err)

	require.Len(t, objects.calls, 1)
	assert.Equal(t, copyCall{src: "src", key: "star wars poster.png", dst: "dst"}, objects.calls[0])

	require.Len(t, records.records, 1)
	want := Record{ID: fixedID, Name: "star wars poster.png", Timestamp: 1700000000, SizeMB: 2.0, Found: true}
	assert.Equal(t, want, records.records[0])
	assert.Equal(t, want, rec)
}

func TestHandleOnlyProcessesFirstRecord(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{}
	service := newTestService(objects, records)

	event := newEvent("src", "first.txt", 10)
	event.Records = append(event.Records, newEvent("src", "second.txt", 10).Records...)

	_, err := service.Handle(context.Background(), event)
	require.NoError(t, err)

	require.Len(t, objects.calls, 1)
	assert.Equal(t, "first.txt", objects.calls[0].key)
	assert.Len(t, records.records, 1)
}

func TestHandleCopyFailureWritesNoRecord(t *testing.T) {
	objects := &fakeObjectStore{err: errors.New("NoSuchKey")}
	records := &fakeRecordStore{}
	service := newTestService(objects, records)

	_, err := service.Handle(context.Background(), newEvent("src", "missing.bin", 42))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrCopy)
	assert.Contains(t, err.Error(), "NoSuchKey")
	assert.Empty(t, records.records)
}

func TestHandlePersistFailureIsReturnedAfterCopy(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{err: errors.New("ProvisionedThroughputExceeded")}
	service := newTestService(objects, records)

	err := service.HandleEvent(context.Background(), newEvent("src", "report.pdf", 100000))
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrPersist)
	assert.NotErrorIs(t, err, ErrCopy)
	assert.Len(t, objects.calls, 1)
}

func TestHandleRejectsEmptyEvent(t *testing.T) {
	objects := &fakeObjectStore{}
	records := &fakeRecordStore{}
	service := newTestService(objects, records)

	_, err := service.Handle(context.Background(), events.S3Event{})

	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Empty(t, objects.calls)
	assert.Empty(t, records.records)
}

func TestBuildRecordGeneratesFreshIDs(t *testing.T) {
	service := newTestService(&fakeObjectStore{}, &fakeRecordStore{})

	a := service.BuildRecord("a.txt", 1, false)
	b := service.BuildRecord("a.txt", 1, false)

	if a.ID == uuid.Nil || a.ID == b.ID {
		t.Fatalf("expected distinct non-nil ids, got %s and %s", a.ID, b.ID)
	}
	if a.Timestamp <= 0 {
		t.Fatalf("expected epoch timestamp, got %d", a.Timestamp)
	}
}

func TestNewServiceCopiesChecklist(t *testing.T) {
	phrases := []string{"star wars"}
	service := NewService(&fakeObjectStore{}, &fakeRecordStore{}, config.CopierConfig{TargetBucket: "dst", Checklist: phrases}, nil)
	phrases[0] = "changed"

	rec, err := service.Handle(context.Background(), newEvent("src", "star+wars.png", 1))
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if !rec.Found {
		t.Fatalf("expected checklist to be captured at construction")
	}
}

// --- helpers & fakes ---

func newTestService(objects ObjectCopier, records RecordStore) *Service {
	return NewService(objects, records, config.CopierConfig{
		TargetBucket: "dst",
		TableName:    "FileMetadataInfo",
		Checklist:    config.DefaultChecklist,
	}, nil)
}

func newEvent(bucket, key string, size int64) events.S3Event {
	return events.S3Event{Records: []events.S3EventRecord{{
		EventName: "ObjectCreated:Put",
		S3: events.S3Entity{
			Bucket: events.S3Bucket{Name: bucket},
			Object: events.S3Object{Key: key, Size: size},
		},
	}}}
}

type copyCall struct {
	src, key, dst string
}

type fakeObjectStore struct {
	calls []copyCall
	err   error
}

func (f *fakeObjectStore) CopyObject(ctx context.Context, srcBucket, key, dstBucket string) (CopyInfo, error) {
	f.calls = append(f.calls, copyCall{src: srcBucket, key: key, dst: dstBucket})
	if f.err != nil {
		return CopyInfo{}, f.err
	}
	return CopyInfo{ETag: `"etag"`}, nil
}

type fakeRecordStore struct {
	records []Record
	err     error
}

func (f *fakeRecordStore) Put(ctx context.Context, rec Record) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

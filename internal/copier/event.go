package copier

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// ParseEvent decodes a JSON S3 notification as delivered by S3, Lambda or a
// MinIO webhook target.
func ParseEvent(data []byte) (events.S3Event, error) {
	var event events.S3Event
	if err := json.Unmarshal(data, &event); err != nil {
		return events.S3Event{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return event, nil
}

// FirstObject returns the object referenced by the first record of the event.
// Any further records are not looked at.
func FirstObject(event events.S3Event) (ObjectRef, error) {
	if len(event.Records) == 0 {
		return ObjectRef{}, ErrInvalidEvent
	}
	entity := event.Records[0].S3
	if entity.Bucket.Name == "" {
		return ObjectRef{}, fmt.Errorf("%w: missing bucket name", ErrInvalidEvent)
	}
	return ObjectRef{
		Bucket: entity.Bucket.Name,
		Key:    entity.Object.Key,
		Size:   entity.Object.Size,
	}, nil
}

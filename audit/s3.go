package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader is the slice of the S3 API the store needs; it exists so tests
// can substitute a fake client.
type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store ships each audit record to an S3 bucket as one JSON object, for an
// off-box copy of the trail that survives loss of the primary database.
// Objects are write-once; keys embed the record id so concurrent appends
// never collide. Usually composed with a SQLiteStore through a MultiStore.
type S3Store struct {
	client S3Uploader
	bucket string
	prefix string
}

// NewS3Store builds a store for the given bucket using the default AWS
// configuration chain (environment, shared config, instance role).
func NewS3Store(ctx context.Context, bucket, prefix string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return NewS3StoreWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewS3StoreWithClient builds a store around an existing client.
func NewS3StoreWithClient(client S3Uploader, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3Store) Append(ctx context.Context, rec Record) error {
	body, err := json.Marshal(newStoredRecord(rec))
	if err != nil {
		return fmt.Errorf("serializing audit entry: %w", err)
	}

	key := fmt.Sprintf("%s%s/%s/%s.json",
		s.prefix, rec.Table, rec.RecordedAt.Format("2006/01/02"), rec.ID)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading audit entry: %w", err)
	}
	return nil
}

// storedRecord is the JSON object layout written to the bucket.
type storedRecord struct {
	ID            string          `json:"id"`
	Actor         string          `json:"actor"`
	Action        string          `json:"action"`
	Table         string          `json:"table"`
	RecordID      string          `json:"record_id"`
	Before        json.RawMessage `json:"before,omitempty"`
	After         json.RawMessage `json:"after,omitempty"`
	OriginAddress string          `json:"origin_address,omitempty"`
	OriginClient  string          `json:"origin_client,omitempty"`
	RecordedAt    string          `json:"recorded_at"`
}

func newStoredRecord(rec Record) storedRecord {
	return storedRecord{
		ID:            rec.ID.String(),
		Actor:         rec.Actor,
		Action:        string(rec.Action),
		Table:         rec.Table,
		RecordID:      rec.RecordID,
		Before:        rec.Before,
		After:         rec.After,
		OriginAddress: rec.OriginAddress,
		OriginClient:  rec.OriginClient,
		RecordedAt:    rec.RecordedAt.Format(time.RFC3339Nano),
	}
}

package audit

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts []*s3.PutObjectInput
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.puts = append(f.puts, params)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Append(t *testing.T) {
	fake := &fakeS3{}
	store := NewS3StoreWithClient(fake, "audit-archive", "trail/")

	rec := Record{
		ID:         uuid.New(),
		Actor:      "admin@agency",
		Action:     ActionUpdate,
		Table:      "caregivers",
		RecordID:   "42",
		After:      json.RawMessage(`{"national_id":"` + RedactionMarker + `"}`),
		RecordedAt: time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Append(context.Background(), rec))

	require.Len(t, fake.puts, 1)
	put := fake.puts[0]
	assert.Equal(t, "audit-archive", *put.Bucket)
	assert.Equal(t, "trail/caregivers/2026/08/29/"+rec.ID.String()+".json", *put.Key)
	assert.Equal(t, "application/json", *put.ContentType)

	body, err := io.ReadAll(put.Body)
	require.NoError(t, err)

	var stored map[string]any
	require.NoError(t, json.Unmarshal(body, &stored))
	assert.Equal(t, rec.ID.String(), stored["id"])
	assert.Equal(t, "UPDATE", stored["action"])
	assert.NotContains(t, string(body), `"before"`, "nil snapshot is omitted, not an empty object")
}

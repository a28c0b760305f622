package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"guide-backend/internal/shared/storage/object"
)

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "careers.yaml", want: "careers.yaml"},
		{name: "simple prefix", prefix: "content", key: "careers.yaml", want: "content/careers.yaml"},
		{name: "prefix trailing slash", prefix: "content/", key: "careers.yaml", want: "content/careers.yaml"},
		{name: "prefix and key slashes", prefix: "/content/", key: "/careers.yaml", want: "content/careers.yaml"},
		{name: "nested prefix", prefix: "content/v2", key: "resorts.yaml", want: "content/v2/resorts.yaml"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}

type fakeClient struct {
	objects map[string]string
	lastKey string
}

func (f *fakeClient) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.lastKey = aws.ToString(in.Key)
	body, ok := f.objects[f.lastKey]
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestOpenUsesPrefix(t *testing.T) {
	client := &fakeClient{objects: map[string]string{"content/resorts.yaml": "resorts: []"}}
	store := NewWithClient(client, "bucket", "/content/")

	rc, err := store.Open(context.Background(), "resorts.yaml")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "resorts: []" {
		t.Fatalf("unexpected body %q", data)
	}
	if client.lastKey != "content/resorts.yaml" {
		t.Fatalf("unexpected key %q", client.lastKey)
	}
}

func TestOpenMapsNoSuchKey(t *testing.T) {
	store := NewWithClient(&fakeClient{objects: map[string]string{}}, "bucket", "")
	if _, err := store.Open(context.Background(), "missing.yaml"); !errors.Is(err, object.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

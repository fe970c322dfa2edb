package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"nirman/internal/config"
)

func TestPresignExpiry(t *testing.T) {
	cases := map[int]time.Duration{
		0:  7 * 24 * time.Hour,
		-3: 7 * 24 * time.Hour,
		1:  24 * time.Hour,
		7:  7 * 24 * time.Hour,
		30: 7 * 24 * time.Hour,
	}
	for days, want := range cases {
		if got := presignExpiry(days); got != want {
			t.Fatalf("presignExpiry(%d) = %v, want %v", days, got, want)
		}
	}
}

// With the region configured the SDK signs locally, no server round trip.
func TestPresignedURLIsSignedForObject(t *testing.T) {
	s, err := NewMinioStorage(config.MinioConfig{
		Endpoint:   "localhost:9000",
		AccessKey:  "minioadmin",
		SecretKey:  "minioadmin",
		Bucket:     "nirman-documents",
		Region:     "us-east-1",
		ExpireDays: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := s.PresignedURL(context.Background(), "proposals/wp-1/abc-cert.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("invalid url %q: %v", raw, err)
	}
	if u.Path != "/nirman-documents/proposals/wp-1/abc-cert.pdf" {
		t.Fatalf("unexpected path %q", u.Path)
	}
	if u.Query().Get("X-Amz-Expires") != "86400" || !strings.HasPrefix(u.Query().Get("X-Amz-Credential"), "minioadmin/") {
		t.Fatalf("unexpected query %q", u.RawQuery)
	}
}

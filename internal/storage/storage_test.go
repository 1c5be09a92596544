package storage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	mu      sync.Mutex
	deleted []string
	fail    map[string]bool
}

func (s *stubStore) Upload(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
	return "https://bucket.s3.test.amazonaws.com/" + key, nil
}

func (s *stubStore) Delete(_ context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail[fileURL] {
		return errors.New("access denied")
	}
	s.deleted = append(s.deleted, fileURL)
	return nil
}

func TestBuildKey(t *testing.T) {
	key := BuildKey("site photo 01.jpg", "projects", "p1", "inspection")

	re := regexp.MustCompile(`^projects/p1/inspection/\d+-site_photo_01\.jpg$`)
	assert.Regexp(t, re, key)
}

func TestBuildKeyCollapsesWhitespace(t *testing.T) {
	key := BuildKey("a \t b.png", "catalog")
	assert.Regexp(t, `^catalog/\d+-a_b\.png$`, key)
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "s3 url",
			url:  "https://bucket.s3.ap-south-1.amazonaws.com/catalog/Standard/Kitchen/1700000000-a.jpg",
			want: "catalog/Standard/Kitchen/1700000000-a.jpg",
		},
		{
			name: "escaped key",
			url:  "https://bucket.s3.ap-south-1.amazonaws.com/catalog/1700000000-a%20b.jpg",
			want: "catalog/1700000000-a b.jpg",
		},
		{
			name: "non s3 url falls back to the path",
			url:  "https://cdn.example.com/uploads/1700000000-a.jpg",
			want: "uploads/1700000000-a.jpg",
		},
		{
			name: "empty",
			url:  "",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KeyFromURL(tc.url))
		})
	}
}

func TestDeleteAll(t *testing.T) {
	store := &stubStore{fail: map[string]bool{"https://x/b": true}}

	urls := []string{"https://x/a", "https://x/b", "https://x/c"}
	results := DeleteAll(context.Background(), store, urls)

	require.Len(t, results, 3)
	// Results keep the input order even though deletes run concurrently.
	assert.Equal(t, "https://x/a", results[0].URL)
	assert.True(t, results[0].OK)
	assert.Equal(t, "https://x/b", results[1].URL)
	assert.False(t, results[1].OK)
	assert.Equal(t, "access denied", results[1].Error)
	assert.True(t, results[2].OK)

	assert.ElementsMatch(t, []string{"https://x/a", "https://x/c"}, store.deleted)
}

func TestDeleteAllEmpty(t *testing.T) {
	results := DeleteAll(context.Background(), &stubStore{}, nil)
	assert.Empty(t, results)
}

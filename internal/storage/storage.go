package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"
)

// FileUpload carries an uploaded file from the HTTP layer into a service.
type FileUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// DeleteResult reports the outcome of deleting one stored object.
type DeleteResult struct {
	URL   string `json:"url"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ObjectStorage stores and removes binary assets addressed by public URL.
type ObjectStorage interface {
	// Upload writes body under key and returns the public URL of the object.
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	// Delete removes the object a previously returned URL points at.
	Delete(ctx context.Context, fileURL string) error
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// BuildKey derives the storage key for a new upload:
// {parts joined by /}/{unix-ms timestamp}-{sanitized filename}.
func BuildKey(filename string, parts ...string) string {
	sanitized := whitespaceRe.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%s/%d-%s", strings.Join(parts, "/"), time.Now().UnixMilli(), sanitized)
}

// KeyFromURL re-derives the object key from a stored public URL.
// Returns an empty string when no key can be recovered.
func KeyFromURL(fileURL string) string {
	if fileURL == "" {
		return ""
	}
	if idx := strings.Index(fileURL, ".amazonaws.com/"); idx >= 0 {
		key, err := url.PathUnescape(fileURL[idx+len(".amazonaws.com/"):])
		if err != nil {
			return ""
		}
		return key
	}
	u, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	key, err := url.PathUnescape(strings.TrimPrefix(u.Path, "/"))
	if err != nil {
		return ""
	}
	return key
}

// DeleteAll removes every given URL concurrently and collects per-file
// results. Individual failures never abort the batch.
func DeleteAll(ctx context.Context, store ObjectStorage, urls []string) []DeleteResult {
	results := make([]DeleteResult, len(urls))
	var wg sync.WaitGroup
	for i, fileURL := range urls {
		wg.Add(1)
		go func(i int, fileURL string) {
			defer wg.Done()
			res := DeleteResult{URL: fileURL, OK: true}
			if err := store.Delete(ctx, fileURL); err != nil {
				res.OK = false
				res.Error = err.Error()
			}
			results[i] = res
		}(i, fileURL)
	}
	wg.Wait()
	return results
}

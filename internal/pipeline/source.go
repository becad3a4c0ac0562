package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// RawImage is the output of a Source: the acquired bytes plus the MIME hint
// the entry point derived for them. The hint is never re-derived from the
// buffer contents further down the pipeline.
type RawImage struct {
	Data     []byte
	MimeHint string
}

// Source turns an input-specific identifier into a RawImage.
type Source interface {
	Acquire(ctx context.Context) (*RawImage, error)
}

// extMimeTypes maps file extensions to the MIME hint reported for local files.
var extMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".avif": "image/avif",
}

// MimeFromExtension returns the MIME hint for a file path based on its
// extension, defaulting to image/jpeg for unknown extensions.
func MimeFromExtension(path string) string {
	if m, ok := extMimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return "image/jpeg"
}

// FileSource reads an image from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Acquire(_ context.Context) (*RawImage, error) {
	info, err := os.Stat(s.Path)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, s.Path, err)
	}

	return &RawImage{Data: data, MimeHint: MimeFromExtension(s.Path)}, nil
}

// URLSource fetches an image over HTTP(S). The response body is capped at
// MaxBytes during transfer so oversized responses are never fully buffered.
type URLSource struct {
	URL            string
	Client         *http.Client
	AllowedDomains []string
	MaxBytes       int64
}

func (s URLSource) Acquire(ctx context.Context) (*RawImage, error) {
	u, err := url.Parse(s.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid URL %q: %v", ErrFetchFailed, s.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrFetchFailed, u.Scheme)
	}

	// The allow-list check happens before any network I/O.
	if !hostAllowed(u.Hostname(), s.AllowedDomains) {
		return nil, fmt.Errorf("%w: %s", ErrDomainRejected, u.Hostname())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrFetchFailed, resp.StatusCode, u.Hostname())
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response body: %v", ErrFetchFailed, err)
	}
	if int64(len(data)) > s.MaxBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrFetchFailed, s.MaxBytes)
	}

	mimeHint := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mimeHint, ';'); i >= 0 {
		mimeHint = strings.TrimSpace(mimeHint[:i])
	}
	if mimeHint == "" {
		mimeHint = "image/jpeg"
	}

	return &RawImage{Data: data, MimeHint: mimeHint}, nil
}

// hostAllowed reports whether host matches the allow-list, either exactly or
// as a dot-separated suffix (host "img.example.com" matches entry
// "example.com"). An empty allow-list permits every host.
func hostAllowed(host string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	host = strings.ToLower(host)
	for _, domain := range allowed {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain == "" {
			continue
		}
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// Base64Source decodes an inline base64 payload. The MIME hint is exactly
// the caller-supplied value.
type Base64Source struct {
	Payload  string
	MimeType string
}

func (s Base64Source) Acquire(_ context.Context) (*RawImage, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s.Payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: payload decodes to an empty buffer", ErrInvalidEncoding)
	}
	return &RawImage{Data: data, MimeHint: s.MimeType}, nil
}

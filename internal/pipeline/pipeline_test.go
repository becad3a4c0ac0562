package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"
)

func TestPipeline_RunResizesAndReports(t *testing.T) {
	data := encodePNG(t, makeImage(1024, 768, color.RGBA{30, 60, 90, 255}))
	path := writeTempImage(t, "large.png", data)

	p := New(10 * 1024 * 1024)
	res, err := p.Run(context.Background(), FileSource{Path: path})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if res.Meta.Width > 512 || res.Meta.Height > 512 {
		t.Errorf("metadata dimensions exceed bounding box: %dx%d", res.Meta.Width, res.Meta.Height)
	}
	if res.Meta.Size != len(res.Data) {
		t.Errorf("metadata size %d does not match final buffer length %d", res.Meta.Size, len(res.Data))
	}
	if res.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", res.MimeType)
	}

	// Idempotence: re-probing the final buffer yields the reported metadata.
	meta, err := Probe(res.Data)
	if err != nil {
		t.Fatalf("final buffer is not probeable: %v", err)
	}
	if meta.Width != res.Meta.Width || meta.Height != res.Meta.Height {
		t.Errorf("re-probe mismatch: got %dx%d, metadata says %dx%d",
			meta.Width, meta.Height, res.Meta.Width, res.Meta.Height)
	}
	if meta.Format != res.Meta.Format {
		t.Errorf("re-probe format %s, metadata says %s", meta.Format, res.Meta.Format)
	}
}

func TestPipeline_SmallImageKeepsDimensions(t *testing.T) {
	data := encodeJPEG(t, makeImage(320, 200, color.RGBA{1, 2, 3, 255}))
	path := writeTempImage(t, "small.jpg", data)

	p := New(10 * 1024 * 1024)
	res, err := p.Run(context.Background(), FileSource{Path: path})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Meta.Width != 320 || res.Meta.Height != 200 {
		t.Errorf("dimensions: got %dx%d, want 320x200", res.Meta.Width, res.Meta.Height)
	}
	if res.MimeType != "image/jpeg" {
		t.Errorf("MimeType: got %s, want image/jpeg", res.MimeType)
	}
}

func TestPipeline_SizeExceeded(t *testing.T) {
	data := encodePNG(t, makeImage(50, 50, color.RGBA{9, 9, 9, 255}))
	path := writeTempImage(t, "capped.png", data)

	p := New(16) // ceiling far below any real image
	_, err := p.Run(context.Background(), FileSource{Path: path})
	if !errors.Is(err, ErrSizeExceeded) {
		t.Fatalf("expected ErrSizeExceeded, got %v", err)
	}
}

func TestPipeline_UnreadableBuffer(t *testing.T) {
	path := writeTempImage(t, "noise.png", []byte("not an image at all"))

	p := New(10 * 1024 * 1024)
	_, err := p.Run(context.Background(), FileSource{Path: path})
	if !errors.Is(err, ErrUnreadableImage) {
		t.Fatalf("expected ErrUnreadableImage, got %v", err)
	}
}

func TestPipeline_SVGPassesThrough(t *testing.T) {
	data := []byte(svgSample)
	path := writeTempImage(t, "icon.svg", data)

	p := New(10 * 1024 * 1024)
	res, err := p.Run(context.Background(), FileSource{Path: path})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !bytes.Equal(res.Data, data) {
		t.Error("SVG buffer must survive the pipeline unchanged")
	}
	if res.Meta.Format != "svg" {
		t.Errorf("format: got %s, want svg", res.Meta.Format)
	}
	if res.MimeType != "image/svg+xml" {
		t.Errorf("MimeType: got %s, want image/svg+xml", res.MimeType)
	}
}

func TestPipeline_SizeMatchesFinalBuffer(t *testing.T) {
	data := encodePNG(t, makeImage(100, 100, color.RGBA{7, 7, 7, 255}))
	path := writeTempImage(t, "ok.png", data)

	p := New(10 * 1024 * 1024)
	res, err := p.Run(context.Background(), FileSource{Path: path})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Meta.Size != len(res.Data) {
		t.Errorf("size %d != buffer length %d", res.Meta.Size, len(res.Data))
	}
}

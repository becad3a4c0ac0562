package pipeline

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Metadata describes an image buffer at the time it was probed. It is
// recomputed whenever the underlying buffer changes; Size always reflects
// the buffer that was measured.
type Metadata struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int    `json:"size"`
}

// Probe extracts width, height and format from an image buffer by parsing
// its headers, without decoding pixel data.
//
// Raster formats go through image.DecodeConfig over the registered codecs.
// SVG, which no raster codec can parse, is recognized by magic bytes and
// reported with zero dimensions so it can pass through the pipeline
// untouched. Anything else is ErrUnreadableImage.
func Probe(data []byte) (*Metadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		if mimetype.Detect(data).Is("image/svg+xml") {
			return &Metadata{Format: "svg", Size: len(data)}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	return &Metadata{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
		Size:   len(data),
	}, nil
}

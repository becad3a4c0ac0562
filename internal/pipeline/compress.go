package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"golang.org/x/image/tiff"
)

// jpegQuality is the fixed quality for lossy re-encodes.
const jpegQuality = 80

// encoderFor returns the encode function for a probed format. The table is
// closed: formats without an entry have no Go encoder and callers decide how
// to degrade.
func encoderFor(format string, quality int) (imgio.Encoder, bool) {
	switch format {
	case "jpeg", "jpg":
		return imgio.JPEGEncoder(quality), true
	case "png":
		return func(w io.Writer, m image.Image) error {
			enc := png.Encoder{CompressionLevel: png.BestCompression}
			return enc.Encode(w, m)
		}, true
	case "gif":
		return func(w io.Writer, m image.Image) error {
			return gif.Encode(w, m, nil)
		}, true
	case "tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
		}, true
	case "bmp":
		return imgio.BMPEncoder(), true
	default:
		return nil, false
	}
}

// Compress re-encodes the buffer with the codec options for its format:
// quality 80 for lossy formats, maximum compression for PNG, Deflate for
// TIFF. GIF and SVG pass through untouched. Unknown formats are re-encoded
// as JPEG quality 80.
//
// The contract is best-effort: callers treat an error as a warning and keep
// the prior buffer, never failing the overall call.
func Compress(data []byte, format string) ([]byte, error) {
	switch format {
	case "gif", "svg":
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding for recompression: %w", err)
	}

	enc, ok := encoderFor(format, jpegQuality)
	if !ok {
		switch format {
		case "webp", "avif":
			return nil, fmt.Errorf("no %s encoder available", format)
		default:
			enc = imgio.JPEGEncoder(jpegQuality)
		}
	}

	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

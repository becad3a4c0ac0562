package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// MaxDimension is the fixed bounding box applied to every image. Images whose
// width or height exceed it are shrunk to fit, preserving aspect ratio.
// Smaller images are never upscaled.
const MaxDimension = 512

// jpegResizeQuality is used for the intermediate JPEG re-encode after a
// resize. The compressor applies the final quality afterwards.
const jpegResizeQuality = 90

// FitWithin downsamples the image so both dimensions fit inside
// maxDim x maxDim. It returns the (possibly new) buffer and whether a resize
// happened; callers must re-probe a resized buffer before using its metadata.
//
// SVG has zero probed dimensions and is never resized. The resized pixels are
// re-encoded with the codec for the probed format; formats Go cannot encode
// fall back to PNG as a lossless intermediate.
func FitWithin(data []byte, meta *Metadata, maxDim int) ([]byte, bool, error) {
	if meta.Width <= maxDim && meta.Height <= maxDim {
		return data, false, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrUnreadableImage, err)
	}

	fitted := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if enc, ok := encoderFor(meta.Format, jpegResizeQuality); ok {
		if err := enc(&buf, fitted); err != nil {
			return nil, false, fmt.Errorf("%w: re-encoding resized %s: %v", ErrUnreadableImage, meta.Format, err)
		}
	} else {
		if err := png.Encode(&buf, fitted); err != nil {
			return nil, false, fmt.Errorf("%w: re-encoding resized image: %v", ErrUnreadableImage, err)
		}
	}

	return buf.Bytes(), true, nil
}

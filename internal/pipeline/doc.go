// Package pipeline implements the image ingestion-and-normalization pipeline.
//
// Three source kinds (local file, remote URL, inline base64 payload) are
// acquired into a raw byte buffer, validated against a configurable size
// ceiling, probed for dimensions and format, conditionally downsampled to a
// fixed bounding box, and recompressed with a format-keyed encoder table.
// The result is a final buffer plus the metadata describing it, ready to be
// packaged as tool-response content.
//
// # Stages
//
// Acquire -> Validate -> Probe -> (Resize -> ReProbe) -> Compress -> Result
//
// Every stage except Compress can fail the call; the failure is reported as
// one of the sentinel errors below so callers can translate it into a
// user-facing response. Compression is best-effort: when re-encoding fails,
// the pipeline logs a warning and keeps the post-resize buffer unchanged.
//
// # Buffer Ownership
//
// A buffer is created once per invocation by a Source, owned exclusively by
// the pipeline for that call, and discarded at call end. Nothing is cached
// across calls and no state is shared between concurrent invocations.
//
// # Supported Formats
//
// Decoding covers PNG, JPEG and GIF via the standard library plus WebP, TIFF
// and BMP via golang.org/x/image. SVG is recognized by magic bytes and passes
// through untouched (vector data is never rasterized here). Encoding covers
// JPEG, PNG, GIF, TIFF and BMP; formats without a Go encoder degrade through
// the best-effort compression fallback.
package pipeline

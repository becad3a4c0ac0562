package pipeline

import (
	"context"
	"log"
)

// Pipeline runs the full acquire-to-result flow for one image. It carries no
// per-call state and is safe for concurrent use.
type Pipeline struct {
	// MaxBytes is the ceiling applied to acquired buffers.
	MaxBytes int64

	// MaxDim is the bounding box edge for the resize step.
	MaxDim int
}

// New creates a pipeline with the given byte ceiling and the default
// bounding box.
func New(maxBytes int64) *Pipeline {
	return &Pipeline{MaxBytes: maxBytes, MaxDim: MaxDimension}
}

// Result is the final, immutable output of a pipeline run.
type Result struct {
	// Data is the final buffer, post-resize and (when it succeeded)
	// post-compression.
	Data []byte

	// Meta describes Data: dimensions and format from the last probe,
	// Size from the final buffer.
	Meta Metadata

	// MimeType is the entry point's hint, carried through verbatim.
	MimeType string
}

// Run executes the pipeline for one source: acquire, validate, probe,
// conditionally resize and re-probe, then recompress best-effort. A
// compression failure is logged and the post-resize buffer is kept; every
// other stage failure aborts the run.
func (p *Pipeline) Run(ctx context.Context, src Source) (*Result, error) {
	raw, err := src.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	if err := CheckSize(raw.Data, p.MaxBytes); err != nil {
		return nil, err
	}

	meta, err := Probe(raw.Data)
	if err != nil {
		return nil, err
	}

	data := raw.Data
	resized, changed, err := FitWithin(data, meta, p.MaxDim)
	if err != nil {
		return nil, err
	}
	if changed {
		data = resized
		meta, err = Probe(data)
		if err != nil {
			return nil, err
		}
	}

	compressed, err := Compress(data, meta.Format)
	if err != nil {
		log.Printf("WARN: best-effort recompression of %s image failed, keeping prior buffer: %v", meta.Format, err)
	} else {
		data = compressed
	}
	meta.Size = len(data)

	return &Result{Data: data, Meta: *meta, MimeType: raw.MimeHint}, nil
}

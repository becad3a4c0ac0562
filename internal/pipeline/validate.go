package pipeline

import "fmt"

// CheckSize enforces the byte ceiling on an acquired buffer. The URL source
// already caps the body during transfer; file and base64 buffers are checked
// here immediately after acquisition.
func CheckSize(data []byte, limit int64) error {
	if int64(len(data)) > limit {
		return fmt.Errorf("%w: %d bytes (limit %d)", ErrSizeExceeded, len(data), limit)
	}
	return nil
}

package pipeline

import "errors"

// Sentinel errors returned by pipeline stages. Handlers match them with
// errors.Is to build user-facing failure responses; none of them should
// escape the tool boundary as a crash.
var (
	// ErrNotFound indicates the file path does not resolve to an existing file.
	ErrNotFound = errors.New("file does not exist")

	// ErrDomainRejected indicates the URL hostname is not on the allow-list.
	ErrDomainRejected = errors.New("domain not allowed")

	// ErrFetchFailed covers bad URL schemes, network/HTTP failures and
	// responses that exceed the size ceiling mid-transfer.
	ErrFetchFailed = errors.New("failed to fetch image")

	// ErrInvalidEncoding indicates a base64 payload that cannot be decoded
	// or decodes to an empty buffer.
	ErrInvalidEncoding = errors.New("invalid base64 image data")

	// ErrSizeExceeded indicates an acquired buffer above the configured ceiling.
	ErrSizeExceeded = errors.New("image exceeds maximum allowed size")

	// ErrUnreadableImage indicates a buffer no registered codec can parse.
	ErrUnreadableImage = errors.New("unreadable image data")
)

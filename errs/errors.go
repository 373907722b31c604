// Package errs defines the sentinel errors shared across the udbf packages.
//
// Callers are expected to test for these values with errors.Is; the packages
// that return them usually wrap them with additional context via fmt.Errorf
// and the %w verb.
package errs

import "errors"

var (
	// ErrHeaderTruncated indicates the fixed header or the variable-descriptor
	// table ended before all declared fields could be read.
	ErrHeaderTruncated = errors.New("header truncated")

	// ErrMalformedHeader indicates the header decoded completely but contains
	// structurally inconsistent values, such as a zero sample rate or a zero
	// variable count.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrChannelNotFound indicates no variable in the file matches the
	// requested on-disk channel name.
	ErrChannelNotFound = errors.New("channel not found")

	// ErrUnspecifiedType indicates the requested channel has no neutral
	// element representation (Boolean, No, or a reserved type code) and
	// therefore carries no readable sample bytes.
	ErrUnspecifiedType = errors.New("channel has unspecified element type")

	// ErrInvalidBufferSize indicates a host-supplied destination buffer does
	// not match the requested sample count for the resolved element size.
	ErrInvalidBufferSize = errors.New("invalid destination buffer size")

	// ErrChecksumMismatch indicates the trailing checksum does not match the
	// sample payload.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrNoSources indicates the adapter configuration declares no file
	// sources at all.
	ErrNoSources = errors.New("configuration contains no file sources")

	// ErrNoMatchingFile indicates a file source matched no file on disk.
	ErrNoMatchingFile = errors.New("no matching file")
)

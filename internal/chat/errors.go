package chat

import "github.com/cockroachdb/errors"

var (
	ErrUpstream     = errors.New("upstream model failure")
	ErrInvalidRoles = errors.New("messages contain an unsupported role")
)

// UpstreamError wraps a failed model call; it matches ErrUpstream.
type UpstreamError struct {
	Cause error
}

func (e *UpstreamError) Error() string {
	return ErrUpstream.Error() + ": " + e.Cause.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Cause }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

package blake3hash

import "errors"

// Kind classifies a failed hash call.
type Kind int

const (
	// KindUnknown is reported by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	// InvalidOutputLength means the requested output length is out of range.
	InvalidOutputLength
	// InvalidKeyLength means a non-empty key is not KeySize bytes long.
	InvalidKeyLength
	// AllocationFailure means a result buffer could not be obtained.
	AllocationFailure
)

var (
	ErrInvalidOutputLength = errors.New("invalid output length")
	ErrInvalidKeyLength    = errors.New("invalid key length")
	ErrAllocationFailure   = errors.New("allocation failure")
)

func (k Kind) String() string {
	switch k {
	case InvalidOutputLength:
		return "InvalidOutputLength"
	case InvalidKeyLength:
		return "InvalidKeyLength"
	case AllocationFailure:
		return "AllocationFailure"
	default:
		return "Unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case InvalidOutputLength:
		return ErrInvalidOutputLength
	case InvalidKeyLength:
		return ErrInvalidKeyLength
	case AllocationFailure:
		return ErrAllocationFailure
	default:
		return nil
	}
}

// Error is returned by Process for every failed call.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return "blake3: " + e.Message
}

// Unwrap returns the sentinel error of the kind, so that errors.Is matches it.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf returns the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

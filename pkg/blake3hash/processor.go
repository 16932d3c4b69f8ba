// Package blake3hash computes single-shot BLAKE3 digests of caller-chosen
// length, optionally keyed, returned as raw bytes or lowercase hex.
package blake3hash

import (
	"encoding/hex"
	"fmt"
)

// Processor validates hash requests and drives a Primitive.
// A Processor holds no mutable state and is safe for concurrent use. The zero
// value uses DefaultPrimitive.
type Processor struct {
	primitive Primitive
	alloc     func(n int) ([]byte, error)
}

// Default is the processor backed by DefaultPrimitive.
var Default = NewProcessor(DefaultPrimitive)

// NewProcessor returns a processor using p, or DefaultPrimitive when p is nil.
func NewProcessor(p Primitive) *Processor {
	if p == nil {
		p = DefaultPrimitive
	}
	return &Processor{
		primitive: p,
		alloc:     allocate,
	}
}

// Primitive returns the backend of the processor.
func (p *Processor) Primitive() Primitive {
	if p.primitive == nil {
		return DefaultPrimitive
	}
	return p.primitive
}

// Hash hashes message with Default.
func Hash(message []byte, opts ...Option) (Result, error) {
	return Default.Process(NewRequest(message, opts...))
}

// Hash hashes message with p.
func (p *Processor) Hash(message []byte, opts ...Option) (Result, error) {
	return p.Process(NewRequest(message, opts...))
}

// Process computes the digest described by req.
//
// The output length is checked before the key, so a request invalid in both
// ways fails with InvalidOutputLength.
func (p *Processor) Process(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	primitive := p.Primitive()
	alloc := p.alloc
	if alloc == nil {
		alloc = allocate
	}

	var state State
	if req.Keyed() {
		var err error
		state, err = primitive.NewKeyed(req.Key)
		if err != nil {
			return Result{}, &Error{Kind: InvalidKeyLength, Message: err.Error()}
		}
	} else {
		state = primitive.New()
	}
	state.Update(req.Message)

	out, err := alloc(req.OutputLength)
	if err != nil {
		return Result{}, err
	}
	state.Finalize(out)
	if req.RawOutput {
		return Result{data: out, raw: true}, nil
	}

	text, err := alloc(hex.EncodedLen(len(out)))
	if err != nil {
		return Result{}, err
	}
	hex.Encode(text, out)
	return Result{data: text}, nil
}

// Validate checks the output length and then the key length of r.
func (r Request) Validate() error {
	if r.OutputLength < MinOutputLength || r.OutputLength > MaxOutputLength {
		return &Error{
			Kind:    InvalidOutputLength,
			Message: fmt.Sprintf("output length must be between %d and %d, got %d", MinOutputLength, MaxOutputLength, r.OutputLength),
		}
	}
	if r.Keyed() && len(r.Key) != KeySize {
		return &Error{
			Kind:    InvalidKeyLength,
			Message: fmt.Sprintf("key must be exactly %d bytes, got %d", KeySize, len(r.Key)),
		}
	}
	return nil
}

// allocate turns a failed slice allocation into an AllocationFailure.
func allocate(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = &Error{
				Kind:    AllocationFailure,
				Message: fmt.Sprintf("cannot allocate %d bytes: %v", n, r),
			}
		}
	}()
	return make([]byte, n), nil
}

package blake3hash

import (
	"fmt"

	"lukechampine.com/blake3"
)

// LukeChampine is the lukechampine.com/blake3 backend.
var LukeChampine Primitive = lukePrimitive{}

type lukePrimitive struct{}

func (lukePrimitive) Name() string {
	return "lukechampine"
}

func (lukePrimitive) New() State {
	return &lukeState{h: blake3.New(DefaultOutputLength, nil)}
}

func (lukePrimitive) NewKeyed(key []byte) (State, error) {
	// blake3.New panics on a bad key size
	if len(key) != KeySize {
		return nil, fmt.Errorf("blake3: key must be %d bytes, got %d", KeySize, len(key))
	}
	return &lukeState{h: blake3.New(DefaultOutputLength, key)}, nil
}

type lukeState struct {
	h *blake3.Hasher
}

func (s *lukeState) Update(p []byte) {
	_, _ = s.h.Write(p)
}

func (s *lukeState) Finalize(out []byte) {
	_, _ = s.h.XOF().Read(out)
}

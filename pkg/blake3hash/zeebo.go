package blake3hash

import "github.com/zeebo/blake3"

// Zeebo is the github.com/zeebo/blake3 backend.
var Zeebo Primitive = zeeboPrimitive{}

type zeeboPrimitive struct{}

func (zeeboPrimitive) Name() string {
	return "zeebo"
}

func (zeeboPrimitive) New() State {
	return &zeeboState{h: blake3.New()}
}

func (zeeboPrimitive) NewKeyed(key []byte) (State, error) {
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	return &zeeboState{h: h}, nil
}

type zeeboState struct {
	h *blake3.Hasher
}

func (s *zeeboState) Update(p []byte) {
	_, _ = s.h.Write(p)
}

func (s *zeeboState) Finalize(out []byte) {
	// the digest reader never fails and always fills out
	_, _ = s.h.Digest().Read(out)
}

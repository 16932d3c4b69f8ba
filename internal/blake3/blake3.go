// Package blake3 registers digest.BLAKE3 with go-digest, computing sums
// through the blake3hash processor.
//
// Import it for its side effect:
//
//	import _ "github.com/shizhMSFT/b3hash/internal/blake3"
package blake3

import (
	"bytes"
	"hash"

	"github.com/opencontainers/go-digest"

	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

func init() {
	digest.RegisterAlgorithm(digest.BLAKE3, &cryptoHash{processor: blake3hash.Default})
}

type cryptoHash struct {
	processor *blake3hash.Processor
}

func (cryptoHash) Available() bool {
	return true
}

func (cryptoHash) Size() int {
	return blake3hash.DefaultOutputLength
}

func (h cryptoHash) New() hash.Hash {
	return &bufferedHash{processor: h.processor}
}

// bufferedHash collects written bytes and hashes them in one call on Sum.
type bufferedHash struct {
	processor *blake3hash.Processor
	buf       bytes.Buffer
}

func (h *bufferedHash) Write(p []byte) (int, error) {
	return h.buf.Write(p)
}

func (h *bufferedHash) Sum(b []byte) []byte {
	res, err := h.processor.Hash(h.buf.Bytes(), blake3hash.WithRawOutput(true))
	if err != nil {
		// the default length and an absent key are always valid
		panic(err)
	}
	return append(b, res.Bytes()...)
}

func (h *bufferedHash) Reset() {
	h.buf.Reset()
}

func (h *bufferedHash) Size() int {
	return blake3hash.DefaultOutputLength
}

func (h *bufferedHash) BlockSize() int {
	return 64
}

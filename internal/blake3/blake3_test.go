package blake3

import (
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

func TestDigestAlgorithmRegistered(t *testing.T) {
	require.True(t, digest.BLAKE3.Available())
	assert.Equal(t, 32, digest.BLAKE3.Size())

	d := digest.BLAKE3.FromString("abc")
	require.NoError(t, d.Validate())
	assert.Equal(t, "blake3:6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85", d.String())
}

func TestDigestMatchesProcessor(t *testing.T) {
	content := []byte(strings.Repeat("content", 512))
	res, err := blake3hash.Hash(content)
	require.NoError(t, err)
	assert.Equal(t, res.String(), digest.BLAKE3.FromBytes(content).Encoded())

	// FromReader writes in several chunks
	d, err := digest.BLAKE3.FromReader(strings.NewReader(string(content)))
	require.NoError(t, err)
	assert.Equal(t, res.String(), d.Encoded())
}

func TestBufferedHashReset(t *testing.T) {
	h := digest.BLAKE3.Hash()
	_, err := h.Write([]byte("discarded"))
	require.NoError(t, err)
	h.Reset()
	assert.Equal(t, digest.BLAKE3.FromBytes(nil).Encoded(), digest.NewDigest(digest.BLAKE3, h).Encoded())
	assert.Equal(t, 64, h.BlockSize())
}

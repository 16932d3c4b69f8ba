package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/multiformats/go-multihash"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

const abcDigest = "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"

func TestParse(t *testing.T) {
	f, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Hex, f)

	f, err = Parse("MultiHash")
	require.NoError(t, err)
	assert.Equal(t, Multihash, f)

	_, err = Parse("base64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "descriptor")
}

func TestWrite(t *testing.T) {
	req := blake3hash.NewRequest([]byte("abc"))

	t.Run("hex", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, Hex, blake3hash.Default, req))
		assert.Equal(t, abcDigest+"\n", buf.String())
	})

	t.Run("raw", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, Raw, blake3hash.Default, req))
		assert.Equal(t, 32, buf.Len())
	})

	t.Run("digest", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, Digest, blake3hash.Default, req))
		assert.Equal(t, "blake3:"+abcDigest+"\n", buf.String())
	})

	t.Run("descriptor", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, Descriptor, blake3hash.Default, req))
		var desc ocispec.Descriptor
		require.NoError(t, json.Unmarshal(buf.Bytes(), &desc))
		assert.Equal(t, "blake3:"+abcDigest, desc.Digest.String())
		assert.Equal(t, int64(3), desc.Size)
	})

	t.Run("multihash", func(t *testing.T) {
		var buf bytes.Buffer
		long := blake3hash.NewRequest([]byte("abc"), blake3hash.WithOutputLength(64))
		require.NoError(t, Write(&buf, Multihash, blake3hash.Default, long))
		mh, err := multihash.FromB58String(string(bytes.TrimSpace(buf.Bytes())))
		require.NoError(t, err)
		decoded, err := multihash.Decode(mh)
		require.NoError(t, err)
		assert.Equal(t, uint64(multihash.BLAKE3), decoded.Code)
		assert.Equal(t, 64, decoded.Length)
	})
}

func TestWriteRejects(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Digest, blake3hash.Default, blake3hash.NewRequest([]byte("abc"), blake3hash.WithOutputLength(64)))
	assert.ErrorIs(t, err, ErrUnsupportedRequest)

	err = Write(&buf, Descriptor, blake3hash.Default, blake3hash.NewRequest([]byte("abc"), blake3hash.WithKey(make([]byte, 32))))
	assert.ErrorIs(t, err, ErrUnsupportedRequest)

	err = Write(&buf, Hex, blake3hash.Default, blake3hash.NewRequest([]byte("abc"), blake3hash.WithOutputLength(0)))
	assert.ErrorIs(t, err, blake3hash.ErrInvalidOutputLength)

	err = Write(&buf, Digest, blake3hash.Default, blake3hash.NewRequest([]byte("abc"), blake3hash.WithKey(make([]byte, 3))))
	assert.ErrorIs(t, err, blake3hash.ErrInvalidKeyLength)

	assert.Zero(t, buf.Len())
}

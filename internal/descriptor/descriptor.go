// Package descriptor builds OCI descriptors identified by BLAKE3 digests.
package descriptor

import (
	"fmt"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	_ "github.com/shizhMSFT/b3hash/internal/blake3"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

// DefaultMediaType is used when no media type is given.
const DefaultMediaType = "application/octet-stream"

// Digest returns the blake3 digest of content computed by p.
func Digest(p *blake3hash.Processor, content []byte) (digest.Digest, error) {
	res, err := p.Hash(content)
	if err != nil {
		return "", err
	}
	d := digest.NewDigestFromEncoded(digest.BLAKE3, res.String())
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("invalid blake3 digest %s: %w", d, err)
	}
	return d, nil
}

// FromBytes returns the descriptor of content.
func FromBytes(p *blake3hash.Processor, mediaType string, content []byte) (ocispec.Descriptor, error) {
	if mediaType == "" {
		mediaType = DefaultMediaType
	}
	d, err := Digest(p, content)
	if err != nil {
		return ocispec.Descriptor{}, err
	}
	return ocispec.Descriptor{
		MediaType: mediaType,
		Digest:    d,
		Size:      int64(len(content)),
	}, nil
}

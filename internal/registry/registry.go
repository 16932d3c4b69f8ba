// Package registry looks up BLAKE3-addressed blobs in OCI registries.
package registry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/errdef"
	"oras.land/oras-go/v2/registry"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"

	"github.com/shizhMSFT/b3hash/internal/descriptor"
	"github.com/shizhMSFT/b3hash/internal/trace"
	"github.com/shizhMSFT/b3hash/internal/version"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

// Options locate a repository and authenticate to its registry.
type Options struct {
	Registry      string
	Repository    string
	Username      string
	Password      string
	IdentityToken string
	PlainHTTP     bool
	// Transport is the base transport; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// StatResult reports whether a blob exists.
type StatResult struct {
	// Descriptor is computed locally from the content.
	Descriptor ocispec.Descriptor
	Exists     bool
	// Remote is the descriptor returned by the registry when the blob exists.
	Remote ocispec.Descriptor
}

// Stat computes the BLAKE3 descriptor of content with p and checks whether the
// repository has a blob with that digest.
func Stat(ctx context.Context, opts Options, p *blake3hash.Processor, content []byte) (StatResult, error) {
	desc, err := descriptor.FromBytes(p, "", content)
	if err != nil {
		return StatResult{}, err
	}
	result := StatResult{Descriptor: desc}

	repo, err := opts.repository()
	if err != nil {
		return result, err
	}
	logger := trace.Logger(ctx).WithField("repository", repo.Reference.String())
	logger.Debugf("resolving blob %s", desc.Digest)

	remoteDesc, err := repo.Blobs().Resolve(ctx, desc.Digest.String())
	switch {
	case err == nil:
		result.Exists = true
		result.Remote = remoteDesc
		logger.Infof("✅ blob %s found (%d bytes)", desc.Digest, remoteDesc.Size)
		return result, nil
	case errors.Is(err, errdef.ErrNotFound):
		logger.Infof("blob %s not found", desc.Digest)
		return result, nil
	default:
		return result, fmt.Errorf("failed to resolve blob %s: %w", desc.Digest, err)
	}
}

func (opts Options) repository() (*remote.Repository, error) {
	if opts.Registry == "" || opts.Repository == "" {
		return nil, errors.New("registry and repository are required")
	}
	repo, err := remote.NewRepository(strings.Join([]string{
		opts.Registry,
		opts.Repository,
	}, "/"))
	if err != nil {
		return nil, err
	}
	repo.Client = opts.client(repo.Reference)
	repo.PlainHTTP = opts.PlainHTTP
	return repo, nil
}

func (opts Options) client(ref registry.Reference) *auth.Client {
	base := opts.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	client := &auth.Client{
		Client: &http.Client{
			Transport: trace.NewTransport(base),
		},
		Cache:    auth.NewCache(),
		ClientID: "b3hash",
	}
	if opts.Username != "" || opts.Password != "" || opts.IdentityToken != "" {
		client.Credential = auth.StaticCredential(ref.Registry, auth.Credential{
			Username:     opts.Username,
			Password:     opts.Password,
			RefreshToken: opts.IdentityToken,
		})
	}
	client.SetUserAgent("b3hash/" + version.GetVersion())
	return client
}

// Package output renders hash results in the formats offered by the CLI.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/multiformats/go-multihash"

	"github.com/shizhMSFT/b3hash/internal/descriptor"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

// Format is an output format name.
type Format string

const (
	Hex        Format = "hex"
	Raw        Format = "raw"
	Digest     Format = "digest"
	Multihash  Format = "multihash"
	Descriptor Format = "descriptor"
)

// ErrUnsupportedRequest is returned when a format cannot represent a request.
var ErrUnsupportedRequest = errors.New("unsupported request for output format")

// Formats lists all formats, default first.
func Formats() []Format {
	return []Format{Hex, Raw, Digest, Multihash, Descriptor}
}

// Parse returns the format named name. An empty name selects Hex.
func Parse(name string) (Format, error) {
	if name == "" {
		return Hex, nil
	}
	for _, f := range Formats() {
		if strings.EqualFold(name, string(f)) {
			return f, nil
		}
	}
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown output format %q, available: %s", name, strings.Join(names, ", "))
}

// Write hashes req with p and writes the result to w in format f.
// Text formats end with a newline; Raw writes the digest bytes only.
func Write(w io.Writer, f Format, p *blake3hash.Processor, req blake3hash.Request) error {
	switch f {
	case Hex:
		req.RawOutput = false
		res, err := p.Process(req)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, res.String())
		return err
	case Raw:
		req.RawOutput = true
		res, err := p.Process(req)
		if err != nil {
			return err
		}
		_, err = w.Write(res.Bytes())
		return err
	case Multihash:
		req.RawOutput = true
		res, err := p.Process(req)
		if err != nil {
			return err
		}
		mh, err := multihash.Encode(res.Bytes(), multihash.BLAKE3)
		if err != nil {
			return fmt.Errorf("failed to encode multihash: %w", err)
		}
		_, err = fmt.Fprintln(w, multihash.Multihash(mh).B58String())
		return err
	case Digest, Descriptor:
		if err := checkContentAddressable(f, req); err != nil {
			return err
		}
		desc, err := descriptor.FromBytes(p, "", req.Message)
		if err != nil {
			return err
		}
		if f == Digest {
			_, err = fmt.Fprintln(w, desc.Digest)
			return err
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// checkContentAddressable rejects requests whose digest is not the plain
// 32-byte blake3 digest used by OCI content addressing.
func checkContentAddressable(f Format, req blake3hash.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.OutputLength != blake3hash.DefaultOutputLength {
		return fmt.Errorf("%w: %s requires a %d-byte output, got %d", ErrUnsupportedRequest, f, blake3hash.DefaultOutputLength, req.OutputLength)
	}
	if req.Keyed() {
		return fmt.Errorf("%w: %s cannot be keyed", ErrUnsupportedRequest, f)
	}
	return nil
}

package selftest

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"

	"github.com/shizhMSFT/b3hash/internal/trace"
	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

var vectorKey = []byte("whats the Elvish word for friend")

var knownVectors = []struct {
	message string
	keyed   bool
	want    string
}{
	{"", false, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"},
	{"abc", false, "6437b3ac38465133ffb63b75273a8db548c558465d79db03fd359c6cd5bd9d85"},
	{"", true, "92b2b75604ed3c761f9d6f62392c8a9227ad0ea3f09573e783f1498a4ed60d26"},
}

func (s *TestSuite) testKnownVectors(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	for _, v := range knownVectors {
		var key []byte
		if v.keyed {
			key = vectorKey
		}
		res, err := p.Hash([]byte(v.message), blake3hash.WithKey(key))
		if err != nil {
			logger.Errorf("hash %q: %v", v.message, err)
			return ResultFailure
		}
		if res.String() != v.want {
			logger.Errorf("hash %q (keyed: %v): got %s, want %s", v.message, v.keyed, res, v.want)
			return ResultFailure
		}
		logger.Infof("✅ %q (keyed: %v) = %s", v.message, v.keyed, res)
	}
	return ResultSuccess
}

func (s *TestSuite) testDeterminism(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	message := bytes.Repeat([]byte("determinism"), 4096)
	for _, key := range [][]byte{nil, vectorKey} {
		a, err := p.Hash(message, blake3hash.WithKey(key), blake3hash.WithOutputLength(200))
		if err != nil {
			logger.Errorf("first hash: %v", err)
			return ResultFailure
		}
		b, err := p.Hash(message, blake3hash.WithKey(key), blake3hash.WithOutputLength(200))
		if err != nil {
			logger.Errorf("second hash: %v", err)
			return ResultFailure
		}
		if a.String() != b.String() {
			logger.Errorf("repeated calls differ (keyed: %v)", key != nil)
			return ResultFailure
		}
	}
	logger.Info("✅ repeated calls agree")
	return ResultSuccess
}

func (s *TestSuite) testOutputLengthBounds(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	for _, n := range []int{blake3hash.MinOutputLength - 1, blake3hash.MaxOutputLength + 1} {
		_, err := p.Hash([]byte("bounds"), blake3hash.WithOutputLength(n))
		if !errors.Is(err, blake3hash.ErrInvalidOutputLength) {
			logger.Errorf("length %d: want %v, got %v", n, blake3hash.ErrInvalidOutputLength, err)
			return ResultFailure
		}
		logger.Debugf("length %d rejected: %v", n, err)
	}
	for _, n := range []int{blake3hash.MinOutputLength, blake3hash.MaxOutputLength} {
		res, err := p.Hash([]byte("bounds"), blake3hash.WithOutputLength(n), blake3hash.WithRawOutput(true))
		if err != nil {
			logger.Errorf("length %d: %v", n, err)
			return ResultFailure
		}
		if res.Len() != n {
			logger.Errorf("length %d: got %d bytes", n, res.Len())
			return ResultFailure
		}
	}
	logger.Info("✅ bounds enforced")
	return ResultSuccess
}

func (s *TestSuite) testKeyLength(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	for _, n := range []int{16, 33} {
		_, err := p.Hash([]byte("key"), blake3hash.WithKey(make([]byte, n)))
		if !errors.Is(err, blake3hash.ErrInvalidKeyLength) {
			logger.Errorf("key length %d: want %v, got %v", n, blake3hash.ErrInvalidKeyLength, err)
			return ResultFailure
		}
		logger.Debugf("key length %d rejected: %v", n, err)
	}
	plain, err := p.Hash([]byte("key"))
	if err != nil {
		logger.Errorf("unkeyed: %v", err)
		return ResultFailure
	}
	empty, err := p.Hash([]byte("key"), blake3hash.WithKey([]byte{}))
	if err != nil {
		logger.Errorf("empty key: %v", err)
		return ResultFailure
	}
	if plain.String() != empty.String() {
		logger.Error("empty key does not select unkeyed mode")
		return ResultFailure
	}
	if _, err := p.Hash([]byte("key"), blake3hash.WithKey(vectorKey)); err != nil {
		logger.Errorf("32-byte key: %v", err)
		return ResultFailure
	}
	logger.Info("✅ key lengths enforced")
	return ResultSuccess
}

func (s *TestSuite) testPrefixConsistency(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	short, err := p.Hash([]byte("hello"), blake3hash.WithKey(vectorKey), blake3hash.WithRawOutput(true))
	if err != nil {
		logger.Errorf("32-byte output: %v", err)
		return ResultFailure
	}
	long, err := p.Hash([]byte("hello"), blake3hash.WithKey(vectorKey), blake3hash.WithOutputLength(64), blake3hash.WithRawOutput(true))
	if err != nil {
		logger.Errorf("64-byte output: %v", err)
		return ResultFailure
	}
	if !bytes.Equal(short.Bytes(), long.Bytes()[:short.Len()]) {
		logger.Errorf("64-byte output %x does not start with %x", long.Bytes(), short.Bytes())
		return ResultFailure
	}
	logger.Info("✅ longer output extends shorter output")
	return ResultSuccess
}

func (s *TestSuite) testHexMatchesRaw(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	for _, n := range []int{1, 32, 100} {
		text, err := p.Hash([]byte("encoding"), blake3hash.WithOutputLength(n))
		if err != nil {
			logger.Errorf("hex output: %v", err)
			return ResultFailure
		}
		raw, err := p.Hash([]byte("encoding"), blake3hash.WithOutputLength(n), blake3hash.WithRawOutput(true))
		if err != nil {
			logger.Errorf("raw output: %v", err)
			return ResultFailure
		}
		if text.Len() != 2*n || text.String() != hex.EncodeToString(raw.Bytes()) {
			logger.Errorf("length %d: hex %s does not encode %x", n, text, raw.Bytes())
			return ResultFailure
		}
	}
	logger.Info("✅ hex output is the lowercase encoding of raw output")
	return ResultSuccess
}

func (s *TestSuite) testKeyedSeparation(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	plain, err := p.Hash([]byte("separation"))
	if err != nil {
		logger.Errorf("unkeyed: %v", err)
		return ResultFailure
	}
	keyed, err := p.Hash([]byte("separation"), blake3hash.WithKey(vectorKey))
	if err != nil {
		logger.Errorf("keyed: %v", err)
		return ResultFailure
	}
	if plain.String() == keyed.String() {
		logger.Error("keyed and unkeyed digests are equal")
		return ResultFailure
	}
	logger.Info("✅ keyed digest differs from unkeyed digest")
	return ResultSuccess
}

func (s *TestSuite) testReferenceAgreement(ctx context.Context, p *blake3hash.Processor) Result {
	logger := trace.Logger(ctx)
	ref := s.reference()
	if p.Primitive().Name() == ref.Name() {
		logger.Infof("%s is the reference backend", ref.Name())
		return ResultNotApplicable
	}
	refProcessor := blake3hash.NewProcessor(ref)
	message := bytes.Repeat([]byte{0x5a}, 3*1024+17)
	for _, key := range [][]byte{nil, vectorKey} {
		want, err := refProcessor.Hash(message, blake3hash.WithKey(key), blake3hash.WithOutputLength(1000))
		if err != nil {
			logger.Errorf("%s: %v", ref.Name(), err)
			return ResultFailure
		}
		got, err := p.Hash(message, blake3hash.WithKey(key), blake3hash.WithOutputLength(1000))
		if err != nil {
			logger.Errorf("%s: %v", p.Primitive().Name(), err)
			return ResultFailure
		}
		if got.String() != want.String() {
			logger.Errorf("%s disagrees with %s (keyed: %v)", p.Primitive().Name(), ref.Name(), key != nil)
			return ResultFailure
		}
	}
	logger.Infof("✅ agrees with %s", ref.Name())
	return ResultSuccess
}

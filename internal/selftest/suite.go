// Package selftest checks the properties of the blake3 binding against every
// registered backend and reports the outcome as markdown.
package selftest

import (
	"context"
	"iter"

	"github.com/shizhMSFT/b3hash/pkg/blake3hash"
)

// Result is the outcome of one case against one backend.
type Result int

const (
	ResultSuccess Result = iota
	ResultFailure
	ResultNotApplicable
)

// Symbol returns the report symbol of r.
func (r Result) Symbol() string {
	switch r {
	case ResultSuccess:
		return "✅"
	case ResultFailure:
		return "❌"
	default:
		return "⚠️"
	}
}

// Test checks one property through p.
type Test func(ctx context.Context, p *blake3hash.Processor) Result

type TestCase struct {
	Name string
	Test Test
}

type TestSuite struct {
	Context context.Context
	// Primitives are the backends under test. Empty means all registered ones.
	Primitives []blake3hash.Primitive
	// Reference is the backend others are compared with.
	Reference blake3hash.Primitive
}

func (s *TestSuite) Cases() iter.Seq2[string, Test] {
	cases := []TestCase{
		{Name: "Known vectors", Test: s.testKnownVectors},
		{Name: "Determinism", Test: s.testDeterminism},
		{Name: "Output length bounds", Test: s.testOutputLengthBounds},
		{Name: "Key length", Test: s.testKeyLength},
		{Name: "Prefix consistency", Test: s.testPrefixConsistency},
		{Name: "Hex matches raw output", Test: s.testHexMatchesRaw},
		{Name: "Keyed mode separation", Test: s.testKeyedSeparation},
		{Name: "Reference agreement", Test: s.testReferenceAgreement},
	}
	return func(yield func(string, Test) bool) {
		for _, c := range cases {
			if !yield(c.Name, c.Test) {
				return
			}
		}
	}
}

func (s *TestSuite) primitives() []blake3hash.Primitive {
	if len(s.Primitives) > 0 {
		return s.Primitives
	}
	var primitives []blake3hash.Primitive
	for _, name := range blake3hash.PrimitiveNames() {
		p, err := blake3hash.PrimitiveByName(name)
		if err == nil {
			primitives = append(primitives, p)
		}
	}
	return primitives
}

func (s *TestSuite) reference() blake3hash.Primitive {
	if s.Reference != nil {
		return s.Reference
	}
	return blake3hash.DefaultPrimitive
}

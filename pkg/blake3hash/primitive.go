package blake3hash

import (
	"fmt"
	"sort"
	"strings"
)

// KeySize is the key length required by keyed mode.
const KeySize = 32

// Primitive initializes BLAKE3 hasher states.
type Primitive interface {
	// Name returns the registered backend name.
	Name() string

	// New returns a state in standard (unkeyed) mode.
	New() State

	// NewKeyed returns a state in keyed mode. The key must be KeySize bytes.
	NewKeyed(key []byte) (State, error)
}

// State is a hasher state of a Primitive.
type State interface {
	// Update absorbs p.
	Update(p []byte)

	// Finalize fills out with the first len(out) bytes of the extendable output.
	Finalize(out []byte)
}

var primitives = map[string]Primitive{
	Zeebo.Name():        Zeebo,
	LukeChampine.Name(): LukeChampine,
}

// DefaultPrimitive is the backend used by Default.
var DefaultPrimitive = Zeebo

// PrimitiveByName returns the backend registered under name.
func PrimitiveByName(name string) (Primitive, error) {
	if name == "" {
		return DefaultPrimitive, nil
	}
	p, ok := primitives[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown blake3 backend %q, available: %s", name, strings.Join(PrimitiveNames(), ", "))
	}
	return p, nil
}

// PrimitiveNames lists the registered backend names in sorted order.
func PrimitiveNames() []string {
	names := make([]string, 0, len(primitives))
	for name := range primitives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package blake3hash

// Result is the outcome of a successful hash call.
//
// For raw output it holds the digest bytes; otherwise it holds the lowercase
// hex text of the digest.
type Result struct {
	data []byte
	raw  bool
}

// Raw reports whether the result holds raw digest bytes.
func (r Result) Raw() bool {
	return r.raw
}

// Bytes returns the digest bytes or the hex text as bytes.
func (r Result) Bytes() []byte {
	return r.data
}

// String returns the result as a string. Raw results may contain any byte,
// including zero.
func (r Result) String() string {
	return string(r.data)
}

// Len returns the length of the result: OutputLength for raw output, twice
// that for hex.
func (r Result) Len() int {
	return len(r.data)
}

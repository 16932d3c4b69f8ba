package blake3hash

const (
	// DefaultOutputLength is the output length when none is requested.
	DefaultOutputLength = 32
	// MinOutputLength is the smallest accepted output length.
	MinOutputLength = 1
	// MaxOutputLength is the largest accepted output length.
	MaxOutputLength = 65536
)

// Request describes a single hash call.
type Request struct {
	Message      []byte
	OutputLength int
	// Key selects keyed mode when non-empty. An empty key is the same as no key.
	Key       []byte
	RawOutput bool
}

// Option customizes a Request.
type Option func(*Request)

// NewRequest returns a request for message with defaults applied before opts.
func NewRequest(message []byte, opts ...Option) Request {
	req := Request{
		Message:      message,
		OutputLength: DefaultOutputLength,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// WithOutputLength sets the number of digest bytes.
func WithOutputLength(n int) Option {
	return func(r *Request) {
		r.OutputLength = n
	}
}

// WithKey sets the key for keyed mode.
func WithKey(key []byte) Option {
	return func(r *Request) {
		r.Key = key
	}
}

// WithRawOutput selects raw bytes instead of lowercase hex.
func WithRawOutput(raw bool) Option {
	return func(r *Request) {
		r.RawOutput = raw
	}
}

// Keyed reports whether the request selects keyed mode.
func (r Request) Keyed() bool {
	return len(r.Key) > 0
}

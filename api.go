package anatloc

import "context"

// Codec performs bidirectional transformation and validation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	// Decode converts a wire record into a domain object through its
	// constructor, so every construction check also runs on read.
	Decode(ctx context.Context, a A) (B, error)
	// Encode converts a domain object into its wire record.
	Encode(ctx context.Context, b B) (A, error)
}

// RoundTrip encodes b and decodes the result again.
func RoundTrip[A, B any](ctx context.Context, c Codec[A, B], b B) (B, error) {
	a, err := c.Encode(ctx, b)
	if err != nil {
		var zero B
		return zero, err
	}
	return c.Decode(ctx, a)
}

package serializer

import "context"

// Serializer writes a value to some destination in a configured format.
// The context bounds implementations that perform network I/O, such as
// ConfigMapWriter.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by Serializers holding resources such as open files.
type Closer interface {
	Close() error
}

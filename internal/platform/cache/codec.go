package cache

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode serialises a cached value for the remote tier.
func Encode(value any) ([]byte, error) {
	raw, err := msgpack.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode cache value: %w", err)
	}
	return raw, nil
}

func Decode(raw []byte, dst any) error {
	if err := msgpack.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode cache value: %w", err)
	}
	return nil
}

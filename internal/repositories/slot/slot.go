package slot

import "context"

// Storage is the durable string-keyed slot holding serialized cart state.
// A missing key is not an error; Read reports presence separately so
// callers can distinguish "empty" from "failed".
type Storage interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

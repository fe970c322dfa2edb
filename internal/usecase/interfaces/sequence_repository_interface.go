package interfaces

import "context"

// ISequenceRepository hands out monotonically increasing numbers per name.
// Used for proposal serial numbers.
type ISequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

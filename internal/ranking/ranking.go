// Package ranking keeps the display "order" value unique within a collection
// of live rows. Categories and menus run the same algorithm; each supplies a
// Collection bound to its own table (and, in production, to the surrounding
// transaction).
package ranking

import "context"

// Collection is a rank namespace restricted to live rows.
type Collection interface {
	// MaxRank returns the highest rank in use, 0 when the collection is empty.
	MaxRank(ctx context.Context) (int, error)
	// HolderOf reports which row currently holds rank, if any.
	HolderOf(ctx context.Context, rank int) (id uint64, ok bool, err error)
	SetRank(ctx context.Context, id uint64, rank int) error
}

// Next returns the rank a newly created row should take: 1 for an empty
// collection, max+1 otherwise.
func Next(ctx context.Context, c Collection) (int, error) {
	max, err := c.MaxRank(ctx)
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// Relocate moves the row id from rank current to rank target. If another row
// holds target, the two rows swap ranks; every other rank is left untouched.
// Ranks therefore stay unique but need not stay contiguous.
func Relocate(ctx context.Context, c Collection, id uint64, current, target int) error {
	if target == current {
		return nil
	}
	holder, ok, err := c.HolderOf(ctx, target)
	if err != nil {
		return err
	}
	if ok && holder != id {
		if err := c.SetRank(ctx, holder, current); err != nil {
			return err
		}
	}
	return c.SetRank(ctx, id, target)
}

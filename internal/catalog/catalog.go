package catalog

import (
	"context"
	"sort"
	"sync"

	"archarad-app/internal/domain/postcards"
)

// Lister is the persistence contract the catalog consumes.
type Lister interface {
	ListAll(ctx context.Context) ([]postcards.Postcard, error)
}

// Catalog holds the ordered, reloadable read view of all postcards for the
// current browsing session. Mutation happens elsewhere; after any write the
// catalog must be reloaded explicitly.
type Catalog struct {
	mu      sync.RWMutex
	lister  Lister
	records []postcards.Postcard
	lastErr error
}

func New(lister Lister) *Catalog {
	return &Catalog{lister: lister}
}

// Load fetches all records and sorts them year-descending. Undated cards
// sort last; ties break by created_at descending, then id, so the same
// underlying set always produces the same order. A fetch failure leaves the
// catalog empty with the error retrievable via Err.
func (c *Catalog) Load(ctx context.Context) error {
	fetched, err := c.lister.ListAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.records = nil
		c.lastErr = err
		return err
	}

	sortRecords(fetched)
	c.records = fetched
	c.lastErr = nil
	return nil
}

func sortRecords(records []postcards.Postcard) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		switch {
		case a.HasYear() != b.HasYear():
			return a.HasYear()
		case a.HasYear() && a.YearOrZero() != b.YearOrZero():
			return a.YearOrZero() > b.YearOrZero()
		case !a.CreatedAt.Equal(b.CreatedAt):
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}

// Snapshot returns a copy of the current ordering.
func (c *Catalog) Snapshot() []postcards.Postcard {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]postcards.Postcard, len(c.records))
	copy(out, c.records)
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// FindPosition looks a record up by id in the current ordering.
func (c *Catalog) FindPosition(id string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i, p := range c.records {
		if p.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Get returns the record at position pos in the current ordering.
func (c *Catalog) Get(pos int) (postcards.Postcard, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pos < 0 || pos >= len(c.records) {
		return postcards.Postcard{}, false
	}
	return c.records[pos], true
}

// Err returns the failure of the most recent Load, if any.
func (c *Catalog) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

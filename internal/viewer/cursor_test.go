package viewer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archarad-app/internal/catalog"
	"archarad-app/internal/domain/postcards"
	"archarad-app/internal/i18n"
)

type staticLister struct {
	records []postcards.Postcard
}

func (s *staticLister) ListAll(ctx context.Context) ([]postcards.Postcard, error) {
	return append([]postcards.Postcard(nil), s.records...), nil
}

type countingLock struct {
	suspends int
	resumes  int
}

func (l *countingLock) Suspend() { l.suspends++ }
func (l *countingLock) Resume()  { l.resumes++ }

func testCatalog(t *testing.T, ids ...string) *catalog.Catalog {
	t.Helper()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	records := make([]postcards.Postcard, 0, len(ids))
	year := 1900 + len(ids)
	for i, id := range ids {
		y := year - i
		records = append(records, postcards.Postcard{
			ID:        id,
			Title:     i18n.Text{HU: id, RO: id, EN: id, DE: id},
			Year:      &y,
			ImageURL:  "https://img.example/" + id + ".jpg",
			CreatedAt: base,
		})
	}
	cat := catalog.New(&staticLister{records: records})
	require.NoError(t, cat.Load(context.Background()))
	return cat
}

func TestOpenUnknownIDStaysClosed(t *testing.T) {
	cat := testCatalog(t, "a", "b")
	lock := &countingLock{}
	cur := NewCursor(lock)

	assert.False(t, cur.Open(cat, "ghost"))
	assert.False(t, cur.IsOpen())
	assert.Zero(t, lock.suspends, "no scroll suspension without an open view")

	_, ok := cur.Current()
	assert.False(t, ok)
}

func TestBoundaryFlags(t *testing.T) {
	cat := testCatalog(t, "a", "b", "c")
	cur := NewCursor(nil)

	require.True(t, cur.Open(cat, "a"))
	assert.False(t, cur.HasPrev())
	assert.True(t, cur.HasNext())

	cur.Prev() // no-op at the first record
	pos, ok := cur.Position()
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	cur.Next()
	cur.Next()
	assert.True(t, cur.HasPrev())
	assert.False(t, cur.HasNext())

	cur.Next() // no-op at the last record
	pos, _ = cur.Position()
	assert.Equal(t, 2, pos)
}

func TestOpenCloseOpenRoundTrip(t *testing.T) {
	cat := testCatalog(t, "a", "b", "c")
	cur := NewCursor(nil)

	require.True(t, cur.Open(cat, "b"))
	first, _ := cur.Position()

	cur.Close()
	assert.False(t, cur.IsOpen())

	require.True(t, cur.Open(cat, "b"))
	again, _ := cur.Position()
	assert.Equal(t, first, again)
}

func TestMiddlePositionNavigation(t *testing.T) {
	cat := testCatalog(t, "a", "b", "c")
	cur := NewCursor(nil)

	require.True(t, cur.Open(cat, "b"))
	pos, _ := cur.Position()
	assert.Equal(t, 1, pos)

	cur.Next()
	pos, _ = cur.Position()
	assert.Equal(t, 2, pos)
	assert.False(t, cur.HasNext())
	assert.True(t, cur.HasPrev())

	rec, ok := cur.Current()
	require.True(t, ok)
	assert.Equal(t, "c", rec.ID)
}

func TestKeyboardContract(t *testing.T) {
	cat := testCatalog(t, "a", "b", "c")
	lock := &countingLock{}
	cur := NewCursor(lock)

	// Keys are dead while closed.
	cur.HandleKey(KeyRight)
	assert.False(t, cur.IsOpen())

	require.True(t, cur.Open(cat, "b"))
	cur.HandleKey(KeyRight)
	pos, _ := cur.Position()
	assert.Equal(t, 2, pos)

	cur.HandleKey(KeyRight) // at the boundary, ignored
	pos, _ = cur.Position()
	assert.Equal(t, 2, pos)

	cur.HandleKey(KeyLeft)
	cur.HandleKey(KeyLeft)
	pos, _ = cur.Position()
	assert.Equal(t, 0, pos)

	cur.HandleKey(KeyEscape)
	assert.False(t, cur.IsOpen())
	assert.Equal(t, 1, lock.resumes)
}

func TestScrollLockBalanced(t *testing.T) {
	cat := testCatalog(t, "a", "b")
	lock := &countingLock{}
	cur := NewCursor(lock)

	require.True(t, cur.Open(cat, "a"))
	assert.Equal(t, 1, lock.suspends)

	// Re-opening without an explicit close still balances the lock.
	require.True(t, cur.Open(cat, "b"))
	assert.Equal(t, 2, lock.suspends)
	assert.Equal(t, 1, lock.resumes)

	cur.Close()
	cur.Close() // idempotent, no double release
	assert.Equal(t, 2, lock.resumes)
}

func TestSnapshotSurvivesReload(t *testing.T) {
	lister := &staticLister{}
	base := time.Now()
	y1, y2 := 1920, 1910
	lister.records = []postcards.Postcard{
		{ID: "a", Year: &y1, ImageURL: "u", CreatedAt: base},
		{ID: "b", Year: &y2, ImageURL: "u", CreatedAt: base},
	}
	cat := catalog.New(lister)
	require.NoError(t, cat.Load(context.Background()))

	cur := NewCursor(nil)
	require.True(t, cur.Open(cat, "b"))

	// The underlying set changes and the catalog reloads mid-view.
	lister.records = lister.records[:1]
	require.NoError(t, cat.Load(context.Background()))

	rec, ok := cur.Current()
	require.True(t, ok)
	assert.Equal(t, "b", rec.ID, "open view keeps its snapshot")
	assert.Equal(t, 2, cur.Len())
}

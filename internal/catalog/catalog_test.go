package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archarad-app/internal/domain/postcards"
	"archarad-app/internal/i18n"
)

type fakeLister struct {
	records []postcards.Postcard
	err     error
	calls   int
}

func (f *fakeLister) ListAll(ctx context.Context) ([]postcards.Postcard, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]postcards.Postcard, len(f.records))
	copy(out, f.records)
	return out, nil
}

func card(id string, year int, created time.Time) postcards.Postcard {
	p := postcards.Postcard{
		ID:        id,
		Title:     i18n.Text{HU: "cím", RO: "titlu", EN: "title", DE: "Titel"},
		ImageURL:  "https://img.example/" + id + ".jpg",
		CreatedAt: created,
	}
	if year != 0 {
		p.Year = &year
	}
	return p
}

func TestLoadOrdersYearDescending(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lister := &fakeLister{records: []postcards.Postcard{
		card("c", 0, base.Add(2*time.Hour)),
		card("b", 1905, base.Add(time.Hour)),
		card("a", 1920, base),
	}}
	cat := New(lister)

	require.NoError(t, cat.Load(context.Background()))

	got := cat.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID, "undated cards sort last")
}

func TestLoadOrderIsDeterministic(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	lister := &fakeLister{records: []postcards.Postcard{
		card("d", 0, base),
		card("c", 0, base), // same created_at, tie falls through to id
		card("b", 1910, base.Add(time.Minute)),
		card("a", 1910, base.Add(2*time.Minute)),
	}}
	cat := New(lister)

	require.NoError(t, cat.Load(context.Background()))
	first := cat.Snapshot()

	for i := 0; i < 5; i++ {
		require.NoError(t, cat.Load(context.Background()))
		assert.Equal(t, first, cat.Snapshot(), "repeated loads of the same set must agree")
	}

	// Dated ties break by created_at desc; undated ties by id.
	assert.Equal(t, "a", first[0].ID)
	assert.Equal(t, "b", first[1].ID)
	assert.Equal(t, "c", first[2].ID)
	assert.Equal(t, "d", first[3].ID)
}

func TestLoadFailureLeavesCatalogEmpty(t *testing.T) {
	base := time.Now()
	lister := &fakeLister{records: []postcards.Postcard{card("a", 1920, base)}}
	cat := New(lister)
	require.NoError(t, cat.Load(context.Background()))
	require.Equal(t, 1, cat.Len())

	boom := errors.New("connection refused")
	lister.err = boom
	err := cat.Load(context.Background())
	require.ErrorIs(t, err, boom)

	assert.Zero(t, cat.Len(), "failed load must not leave a partial view")
	assert.ErrorIs(t, cat.Err(), boom)

	lister.err = nil
	require.NoError(t, cat.Load(context.Background()))
	assert.NoError(t, cat.Err())
	assert.Equal(t, 1, cat.Len())
}

func TestFindPosition(t *testing.T) {
	base := time.Now()
	lister := &fakeLister{records: []postcards.Postcard{
		card("a", 1920, base),
		card("b", 1905, base),
		card("c", 0, base),
	}}
	cat := New(lister)
	require.NoError(t, cat.Load(context.Background()))

	pos, ok := cat.FindPosition("b")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok = cat.FindPosition("nope")
	assert.False(t, ok)

	got, ok := cat.Get(2)
	require.True(t, ok)
	assert.Equal(t, "c", got.ID)

	_, ok = cat.Get(3)
	assert.False(t, ok)
}

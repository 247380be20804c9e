package viewer

import (
	"archarad-app/internal/catalog"
	"archarad-app/internal/domain/postcards"
)

// Key is a keyboard input forwarded to an open cursor.
type Key string

const (
	KeyEscape Key = "Escape"
	KeyLeft   Key = "ArrowLeft"
	KeyRight  Key = "ArrowRight"
)

// ScrollLocker is the reversible background-scroll side effect tied to an
// open cursor. Suspend is called on open, Resume on any transition back to
// closed, including abrupt teardown.
type ScrollLocker interface {
	Suspend()
	Resume()
}

// Cursor is the navigation state machine tracking which single record, if
// any, is being viewed in detail. It navigates a snapshot of the catalog
// ordering taken at Open, so a concurrent reload cannot shift the position
// mid-browse.
type Cursor struct {
	scroll ScrollLocker

	snapshot  []postcards.Postcard
	pos       int
	opened    bool
	suspended bool
}

func NewCursor(scroll ScrollLocker) *Cursor {
	return &Cursor{scroll: scroll}
}

// Open positions the cursor on the record with the given id. If the id is
// absent from the catalog the cursor stays closed.
func (c *Cursor) Open(cat *catalog.Catalog, id string) bool {
	snap := cat.Snapshot()
	for i, p := range snap {
		if p.ID == id {
			c.Close()
			c.snapshot = snap
			c.pos = i
			c.opened = true
			c.suspend()
			return true
		}
	}
	return false
}

// Prev moves one position back; no-op when closed or at the first record.
func (c *Cursor) Prev() {
	if c.HasPrev() {
		c.pos--
	}
}

// Next moves one position forward; no-op when closed or at the last record.
func (c *Cursor) Next() {
	if c.HasNext() {
		c.pos++
	}
}

// Close returns to the closed state from anywhere and releases the scroll
// suspension. Safe to call repeatedly.
func (c *Cursor) Close() {
	c.opened = false
	c.snapshot = nil
	c.pos = 0
	c.resume()
}

// HandleKey applies the keyboard contract. Inputs are ignored while closed;
// Left and Right are ignored at the respective boundary.
func (c *Cursor) HandleKey(k Key) {
	if !c.opened {
		return
	}
	switch k {
	case KeyEscape:
		c.Close()
	case KeyLeft:
		c.Prev()
	case KeyRight:
		c.Next()
	}
}

func (c *Cursor) IsOpen() bool {
	return c.opened
}

// Position returns the current position; ok is false while closed.
func (c *Cursor) Position() (int, bool) {
	if !c.opened {
		return 0, false
	}
	return c.pos, true
}

func (c *Cursor) Len() int {
	return len(c.snapshot)
}

func (c *Cursor) HasPrev() bool {
	return c.opened && c.pos > 0
}

func (c *Cursor) HasNext() bool {
	return c.opened && c.pos < len(c.snapshot)-1
}

// Current returns the record under the cursor; ok is false while closed.
func (c *Cursor) Current() (postcards.Postcard, bool) {
	if !c.opened {
		return postcards.Postcard{}, false
	}
	return c.snapshot[c.pos], true
}

func (c *Cursor) suspend() {
	if c.scroll != nil && !c.suspended {
		c.scroll.Suspend()
		c.suspended = true
	}
}

func (c *Cursor) resume() {
	if c.scroll != nil && c.suspended {
		c.scroll.Resume()
		c.suspended = false
	}
}

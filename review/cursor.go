package review

import "errors"

// Workflow boundary conditions. Both are notices rather than failures: the
// cursor stays where it is and its state remains usable.
var (
	ErrEmptyDataset  = errors.New("no rows to annotate")
	ErrNoMoreRows    = errors.New("no more rows to annotate")
	ErrNoPreviousRow = errors.New("no previous row available")
)

// Cursor is the navigable position over a RecordSet during annotation.
// It owns write access to the set: stored rows change only through its
// commit step, which runs on every navigation and on Finish.
type Cursor struct {
	set     *RecordSet
	index   int
	locked  bool
	working Answers
}

// NewCursor starts an annotation workflow at startRow (clamped into
// bounds). An empty dataset returns ErrEmptyDataset and no cursor.
func NewCursor(set *RecordSet, startRow int) (*Cursor, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if startRow < 0 {
		startRow = 0
	}
	if startRow >= set.Len() {
		startRow = set.Len() - 1
	}
	c := &Cursor{set: set}
	c.loadRow(startRow)
	return c, nil
}

// loadRow seeds the working answers from the stored row. Rows marked
// correct seed all-No and become read-only.
func (c *Cursor) loadRow(i int) {
	c.index = i
	rec := c.set.Row(i)
	c.locked = rec.Correct()
	if c.locked {
		c.working = allNo()
		return
	}
	c.working = rec.Answers()
}

// Index returns the current zero-based row position.
func (c *Cursor) Index() int { return c.index }

// Total returns the number of rows under review.
func (c *Cursor) Total() int { return c.set.Len() }

// Locked reports whether the current row is marked correct and therefore
// read-only.
func (c *Cursor) Locked() bool { return c.locked }

// Record returns the current row for display.
func (c *Cursor) Record() Record { return c.set.Row(c.index) }

// Answers returns a copy of the working answers for the current row.
func (c *Cursor) Answers() Answers { return c.working.Clone() }

// SetAnswer updates one working answer. Locked rows refuse the edit.
func (c *Cursor) SetAnswer(cat Category, a Answer) error {
	if c.locked {
		return &LockedRowError{Row: c.index}
	}
	c.working[cat] = NormalizeAnswer(string(a))
	return nil
}

// commit writes the working answers into the stored row. Locked rows
// always commit all-No regardless of anything the shell displayed.
func (c *Cursor) commit() {
	rec := c.set.Row(c.index)
	if c.locked {
		rec.setAnswers(allNo())
		return
	}
	rec.setAnswers(c.working)
}

// Next commits the current row, then moves forward. At the last row it
// stays put and returns ErrNoMoreRows.
func (c *Cursor) Next() error {
	c.commit()
	if c.index+1 >= c.set.Len() {
		return ErrNoMoreRows
	}
	c.loadRow(c.index + 1)
	return nil
}

// Previous commits the current row, then moves backward. At row 0 it
// stays put and returns ErrNoPreviousRow.
func (c *Cursor) Previous() error {
	c.commit()
	if c.index == 0 {
		return ErrNoPreviousRow
	}
	c.loadRow(c.index - 1)
	return nil
}

// Finish commits the current row and ends the workflow. Every exit path,
// including cancel, routes through Finish so the in-view row is never
// silently discarded.
func (c *Cursor) Finish() {
	c.commit()
}

// OpenDrilldown starts the per-category sub-workflow for the current row,
// seeded with a snapshot of the working answers. The cursor is suspended
// until the result is merged back via Resume. Locked rows refuse with
// *LockedRowError.
func (c *Cursor) OpenDrilldown() (*Drilldown, error) {
	if c.locked {
		return nil, &LockedRowError{Row: c.index}
	}
	return newDrilldown(c.working.Clone()), nil
}

// Resume merges a finished drill-down's answers back into the working
// answers. Locked rows ignore the merge; OpenDrilldown refuses them, so
// this only defends against a stale handle.
func (c *Cursor) Resume(merged Answers) {
	if c.locked {
		return
	}
	for _, cat := range categoryOrder {
		if v, ok := merged[cat]; ok {
			c.working[cat] = NormalizeAnswer(string(v))
		}
	}
}

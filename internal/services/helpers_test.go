package services

import (
	"context"
	"fmt"
	"time"

	"control-horas/internal/domain"
	"control-horas/internal/errors"
)

// fakeClock returns a fixed instant so identity stamps and dates are
// deterministic in tests.
type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

var testInstant = time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC)

// canvasOp records a single drawing call on the fake canvas.
type canvasOp struct {
	op   string
	x, y float64
	text string
}

// fakeCanvas records every drawing operation for assertions.
type fakeCanvas struct {
	ops   []canvasOp
	pages int
}

func (c *fakeCanvas) AddPage() {
	c.pages++
	c.ops = append(c.ops, canvasOp{op: "page"})
}

func (c *fakeCanvas) SetFont(style FontStyle, size float64) {
	c.ops = append(c.ops, canvasOp{op: "font", x: float64(style), y: size})
}

func (c *fakeCanvas) SetTextColor(r, g, b int) {
	c.ops = append(c.ops, canvasOp{op: "textcolor", text: fmt.Sprintf("%d,%d,%d", r, g, b)})
}

func (c *fakeCanvas) SetDrawColor(r, g, b int) {
	c.ops = append(c.ops, canvasOp{op: "drawcolor", text: fmt.Sprintf("%d,%d,%d", r, g, b)})
}

func (c *fakeCanvas) Text(x, y float64, s string) {
	c.ops = append(c.ops, canvasOp{op: "text", x: x, y: y, text: s})
}

func (c *fakeCanvas) TextCentered(y float64, s string) {
	c.ops = append(c.ops, canvasOp{op: "center", y: y, text: s})
}

func (c *fakeCanvas) Line(x1, y1, x2, y2 float64) {
	c.ops = append(c.ops, canvasOp{op: "line", x: x1, y: y1})
}

func (c *fakeCanvas) textOps() []canvasOp {
	var texts []canvasOp
	for _, op := range c.ops {
		if op.op == "text" || op.op == "center" {
			texts = append(texts, op)
		}
	}
	return texts
}

func (c *fakeCanvas) containsText(s string) bool {
	for _, op := range c.textOps() {
		if op.text == s {
			return true
		}
	}
	return false
}

// fakeRepository is an in-memory repository with failure injection.
type fakeRepository struct {
	entries    []*domain.Entry
	dark       *bool
	failLoad   bool
	failSave   bool
	failDelete bool
	failClear  bool
	failTheme  bool
	saveCalls  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{entries: make([]*domain.Entry, 0)}
}

func (r *fakeRepository) LoadEntries(ctx context.Context) ([]*domain.Entry, error) {
	if r.failLoad {
		return nil, errors.NewStorageReadError("load entries", nil)
	}
	return append([]*domain.Entry{}, r.entries...), nil
}

func (r *fakeRepository) SaveEntry(ctx context.Context, entry *domain.Entry) error {
	r.saveCalls++
	if r.failSave {
		return errors.NewStorageWriteError("save entry", nil)
	}
	r.entries = append([]*domain.Entry{entry}, r.entries...)
	return nil
}

func (r *fakeRepository) SaveEntries(ctx context.Context, entries []*domain.Entry) error {
	if r.failSave {
		return errors.NewStorageWriteError("save entries", nil)
	}
	r.entries = append([]*domain.Entry{}, entries...)
	return nil
}

func (r *fakeRepository) DeleteEntry(ctx context.Context, id int64) error {
	if r.failDelete {
		return errors.NewStorageWriteError("delete entry", nil)
	}
	for i, entry := range r.entries {
		if entry.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return errors.NewNotFoundError("entry", fmt.Sprintf("%d", id))
}

func (r *fakeRepository) ClearEntries(ctx context.Context) error {
	if r.failClear {
		return errors.NewStorageWriteError("clear entries", nil)
	}
	r.entries = r.entries[:0]
	return nil
}

func (r *fakeRepository) LoadThemePreference(ctx context.Context) (bool, error) {
	if r.failTheme {
		return true, errors.NewStorageReadError("load theme preference", nil)
	}
	if r.dark == nil {
		return true, nil
	}
	return *r.dark, nil
}

func (r *fakeRepository) SaveThemePreference(ctx context.Context, dark bool) error {
	if r.failTheme {
		return errors.NewStorageWriteError("save theme preference", nil)
	}
	r.dark = &dark
	return nil
}

func (r *fakeRepository) Close() error {
	return nil
}

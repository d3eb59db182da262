package palette

import "fmt"

// Controller is the palette's navigation state machine: open/closed, the
// live query, the flattened result list, and the selection cursor. All
// methods run synchronously on the host's event loop.
type Controller struct {
	registry *Registry
	filter   *Filter
	history  *History

	open    bool
	query   string
	results []Result
	cursor  int

	statusFn func(string)
}

func NewController(reg *Registry, filter *Filter, history *History) *Controller {
	return &Controller{registry: reg, filter: filter, history: history}
}

// SetStatusFunc installs an optional hook for non-fatal notices (persistence
// failures, disabled selections).
func (c *Controller) SetStatusFunc(fn func(string)) {
	c.statusFn = fn
}

func (c *Controller) status(msg string) {
	if c.statusFn != nil {
		c.statusFn(msg)
	}
}

// Open resets the query and cursor and refilters. Reopening always lands on
// index 0.
func (c *Controller) Open() {
	c.open = true
	c.query = ""
	c.refresh()
}

// Close discards transient state without side effects.
func (c *Controller) Close() {
	c.open = false
	c.query = ""
	c.results = nil
	c.cursor = 0
}

func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

func (c *Controller) IsOpen() bool { return c.open }

func (c *Controller) Query() string { return c.query }

// SetQuery refilters and resets the cursor; any edit invalidates the old
// selection.
func (c *Controller) SetQuery(q string) {
	c.query = q
	c.refresh()
}

func (c *Controller) Results() []Result {
	return append([]Result(nil), c.results...)
}

// Groups returns the current results partitioned for display. Results are
// already held in grouped order, so this only reattaches the headings.
func (c *Controller) Groups() []Group {
	return GroupResults(c.results, c.registry.Categories())
}

func (c *Controller) Cursor() int { return c.cursor }

func (c *Controller) Selected() (Result, bool) {
	if len(c.results) == 0 {
		return Result{}, false
	}
	return c.results[c.cursor], true
}

// Next advances the cursor, wrapping past the last result to 0. No-op on an
// empty result list.
func (c *Controller) Next() {
	if n := len(c.results); n > 0 {
		c.cursor = (c.cursor + 1) % n
	}
}

// Prev moves the cursor back, wrapping from 0 to the last result.
func (c *Controller) Prev() {
	if n := len(c.results); n > 0 {
		c.cursor = (c.cursor + n - 1) % n
	}
}

// Confirm runs the selected command's action, records it as recent, and
// closes the palette. History persistence is best-effort: a store failure is
// reported through the status hook but never blocks the action.
func (c *Controller) Confirm() error {
	sel, ok := c.Selected()
	if !ok {
		return nil
	}
	cmd := sel.Command
	if cmd.Disabled {
		c.status(cmd.Title + " is unavailable")
		return nil
	}
	if err := c.history.RecordUse(cmd.ID); err != nil {
		c.status("history not saved: " + err.Error())
	}
	c.Close()
	if cmd.Action == nil {
		return nil
	}
	if err := cmd.Action(); err != nil {
		return fmt.Errorf("%s: %w", cmd.Title, err)
	}
	return nil
}

// Cancel closes without executing anything.
func (c *Controller) Cancel() {
	c.Close()
}

// ToggleFavorite flips favorite status on the selected command and reports
// the new state. The result set is rebuilt since the favorites group may
// have changed.
func (c *Controller) ToggleFavorite() (bool, error) {
	sel, ok := c.Selected()
	if !ok {
		return false, nil
	}
	fav, err := c.history.ToggleFavorite(sel.Command.ID)
	if err != nil {
		c.status("favorites not saved: " + err.Error())
	}
	c.refresh()
	return fav, err
}

// refresh rebuilds the result list in grouped display order: the cursor
// indexes the same flattened sequence the view renders, so the highlighted
// row is always the one Confirm runs.
func (c *Controller) refresh() {
	filtered := c.filter.Apply(c.query, c.registry, c.history)
	flat := make([]Result, 0, len(filtered))
	for _, g := range GroupResults(filtered, c.registry.Categories()) {
		flat = append(flat, g.Results...)
	}
	c.results = flat
	c.cursor = 0
}

package palette

import (
	"errors"
	"testing"
)

func newTestController(h *History) *Controller {
	reg := NewRegistry(nil, []Command{
		{ID: "a", Title: "Create Ticket"},
		{ID: "b", Title: "Search Tickets"},
		{ID: "c", Title: "Close Ticket"},
	})
	return NewController(reg, NewFilter(NewLevenshteinMatcher(0), DefaultResultLimit), h)
}

func TestOpenResetsCursor(t *testing.T) {
	c := newTestController(newTestHistory())
	c.Open()
	c.Next()
	c.Next()
	if c.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", c.Cursor())
	}
	c.Close()
	c.Open()
	if c.Cursor() != 0 {
		t.Fatalf("cursor after reopen = %d, want 0", c.Cursor())
	}
}

func TestNavigationWrapsBothEnds(t *testing.T) {
	c := newTestController(newTestHistory())
	c.Open()
	if n := len(c.Results()); n != 3 {
		t.Fatalf("result count = %d, want 3", n)
	}

	c.Next()
	c.Next()
	if c.Cursor() != 2 {
		t.Fatalf("cursor = %d, want 2", c.Cursor())
	}
	c.Next()
	if c.Cursor() != 0 {
		t.Fatalf("cursor after wrap forward = %d, want 0", c.Cursor())
	}
	c.Prev()
	if c.Cursor() != 2 {
		t.Fatalf("cursor after wrap back = %d, want 2", c.Cursor())
	}
}

func TestNavigationOnEmptyResultsIsNoop(t *testing.T) {
	c := newTestController(newTestHistory())
	c.Open()
	c.SetQuery("qqqqqq")
	if n := len(c.Results()); n != 0 {
		t.Fatalf("result count = %d, want 0", n)
	}
	c.Next()
	c.Prev()
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", c.Cursor())
	}
	if err := c.Confirm(); err != nil {
		t.Fatalf("confirm on empty results: %v", err)
	}
	if !c.IsOpen() {
		t.Fatalf("confirm on empty results should not close the palette")
	}
}

func TestCursorFollowsGroupedDisplayOrder(t *testing.T) {
	// A keyword hit in a late category outscores a title hit in an early
	// one, so grouping reorders the results for display. The cursor and
	// Confirm must follow that displayed order, not the raw score order.
	var ran []string
	reg := NewRegistry([]Category{"tickets", "admin"}, []Command{
		{ID: "reopen", Title: "Reopen Ticket", Category: "tickets",
			Action: func() error { ran = append(ran, "reopen"); return nil }},
		{ID: "history", Title: "Clear History", Category: "admin", Keywords: []string{"reset"},
			Action: func() error { ran = append(ran, "history"); return nil }},
	})
	c := NewController(reg, NewFilter(NewLevenshteinMatcher(0), DefaultResultLimit), newTestHistory())
	c.Open()
	c.SetQuery("reset")

	var display []string
	for _, g := range c.Groups() {
		for _, r := range g.Results {
			display = append(display, r.Command.ID)
		}
	}
	if len(display) != 2 || display[0] != "reopen" || display[1] != "history" {
		t.Fatalf("display order = %v, want [reopen history]", display)
	}
	if got := resultIDs(c.Results()); got[0] != display[0] || got[1] != display[1] {
		t.Fatalf("results %v diverge from display order %v", got, display)
	}

	sel, ok := c.Selected()
	if !ok || sel.Command.ID != "reopen" {
		t.Fatalf("selected = %+v, want the first displayed entry", sel)
	}
	if err := c.Confirm(); err != nil {
		t.Fatal(err)
	}
	if len(ran) != 1 || ran[0] != "reopen" {
		t.Fatalf("confirm ran %v, want the highlighted command", ran)
	}
}

func TestSetQueryResetsCursor(t *testing.T) {
	c := newTestController(newTestHistory())
	c.Open()
	c.Next()
	c.SetQuery("ticket")
	if c.Cursor() != 0 {
		t.Fatalf("cursor after query edit = %d, want 0", c.Cursor())
	}
}

func TestConfirmRunsActionRecordsRecentAndCloses(t *testing.T) {
	h := newTestHistory()
	ran := false
	reg := NewRegistry(nil, []Command{
		{ID: "a", Title: "Create Ticket", Action: func() error { ran = true; return nil }},
	})
	c := NewController(reg, NewFilter(NewLevenshteinMatcher(0), DefaultResultLimit), h)
	c.Open()

	if err := c.Confirm(); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatalf("action did not run")
	}
	if c.IsOpen() {
		t.Fatalf("palette still open after confirm")
	}
	if got := h.Recent(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("recent = %v, want [a]", got)
	}
}

func TestConfirmActionErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry(nil, []Command{
		{ID: "a", Title: "Create Ticket", Action: func() error { return boom }},
	})
	c := NewController(reg, NewFilter(NewLevenshteinMatcher(0), DefaultResultLimit), newTestHistory())
	c.Open()

	err := c.Confirm()
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
	if c.IsOpen() {
		t.Fatalf("palette should close even when the action fails")
	}
}

func TestConfirmSurvivesStoreFailure(t *testing.T) {
	h := NewHistory(brokenStore{}, 10, 10)
	ran := false
	var notice string
	reg := NewRegistry(nil, []Command{
		{ID: "a", Title: "Create Ticket", Action: func() error { ran = true; return nil }},
	})
	c := NewController(reg, NewFilter(NewLevenshteinMatcher(0), DefaultResultLimit), h)
	c.SetStatusFunc(func(msg string) { notice = msg })
	c.Open()

	if err := c.Confirm(); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Fatalf("persistence failure blocked the action")
	}
	if notice == "" {
		t.Fatalf("expected a status notice about the failed save")
	}
}

func TestCancelClosesWithoutSideEffects(t *testing.T) {
	h := newTestHistory()
	c := newTestController(h)
	c.Open()
	c.Cancel()
	if c.IsOpen() {
		t.Fatalf("palette still open after cancel")
	}
	if got := h.Recent(); len(got) != 0 {
		t.Fatalf("cancel recorded history: %v", got)
	}
}

func TestToggleFavoriteOnSelection(t *testing.T) {
	h := newTestHistory()
	c := newTestController(h)
	c.Open()
	c.Next()

	fav, err := c.ToggleFavorite()
	if err != nil || !fav {
		t.Fatalf("toggle = (%v, %v), want (true, nil)", fav, err)
	}
	if !h.IsFavorite("b") {
		t.Fatalf("favorite not recorded for b")
	}
	if c.Cursor() != 0 {
		t.Fatalf("cursor after refresh = %d, want 0", c.Cursor())
	}
}

package ticket

import "context"

// SeedIfEmpty inserts a small starter queue on first run so the console is
// not a blank screen.
func (r *Repo) SeedIfEmpty(ctx context.Context) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tickets`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	seed := []Ticket{
		{Title: "Printer on floor 2 offline", Requester: "facilities", Priority: PriorityNormal},
		{Title: "VPN drops every 20 minutes", Requester: "sales", Priority: PriorityHigh},
		{Title: "Request: second monitor", Requester: "design", Priority: PriorityLow},
	}
	for _, t := range seed {
		if _, err := r.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

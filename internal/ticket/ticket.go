// Package ticket is the service-desk domain: the ticket table and the
// repository the palette's command actions operate on.
package ticket

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusClosed     Status = "closed"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

type Ticket struct {
	ID        string
	Title     string
	Requester string
	Assignee  string
	Priority  Priority
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts t, minting an id when absent, and returns the stored row.
func (r *Repo) Create(ctx context.Context, t Ticket) (Ticket, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Priority == "" {
		t.Priority = PriorityNormal
	}
	if t.Status == "" {
		t.Status = StatusOpen
	}
	now := time.Now().UTC().Truncate(time.Second)
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tickets (id, title, requester, assignee, priority, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Requester, t.Assignee, string(t.Priority), string(t.Status),
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		return Ticket{}, fmt.Errorf("insert ticket: %w", err)
	}
	return t, nil
}

func (r *Repo) Get(ctx context.Context, id string) (*Ticket, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, requester, assignee, priority, status, created_at, updated_at
		FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns tickets newest-first, optionally restricted to one status.
func (r *Repo) List(ctx context.Context, status Status) ([]Ticket, error) {
	q := `SELECT id, title, requester, assignee, priority, status, created_at, updated_at
		FROM tickets`
	args := []any{}
	if status != "" {
		q += ` WHERE status = ?`
		args = append(args, string(status))
	}
	q += ` ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var out []Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateStatus(ctx context.Context, id string, status Status) error {
	return r.update(ctx, id, `status = ?`, string(status))
}

func (r *Repo) Assign(ctx context.Context, id, assignee string) error {
	return r.update(ctx, id, `assignee = ?, status = ?`, assignee, string(StatusInProgress))
}

func (r *Repo) update(ctx context.Context, id, setClause string, args ...any) error {
	now := time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
	args = append(args, now, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE tickets SET `+setClause+`, updated_at = ? WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("ticket %s not found", id)
	}
	return nil
}

// CountByStatus feeds the status bar.
func (r *Repo) CountByStatus(ctx context.Context) (map[Status]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM tickets GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[Status]int)
	for rows.Next() {
		var s string
		var n int
		if err := rows.Scan(&s, &n); err != nil {
			return nil, err
		}
		out[Status(s)] = n
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (Ticket, error) {
	var t Ticket
	var priority, status, created, updated string
	if err := row.Scan(&t.ID, &t.Title, &t.Requester, &t.Assignee, &priority, &status, &created, &updated); err != nil {
		return Ticket{}, err
	}
	t.Priority = Priority(priority)
	t.Status = Status(status)
	t.CreatedAt, _ = time.Parse(time.RFC3339, created)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updated)
	return t, nil
}

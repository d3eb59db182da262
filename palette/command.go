package palette

// Category buckets commands for grouping. Recent and Favorites are reserved
// for history-derived groups; hosts declare their own domain categories and
// pass them to NewRegistry in display order.
type Category string

const (
	CategoryRecent    Category = "recent"
	CategoryFavorites Category = "favorites"
)

// Command is a single palette entry supplied by the host application.
type Command struct {
	ID          string
	Title       string
	Subtitle    string
	Description string
	Category    Category
	Keywords    []string
	Action      func() error
	Disabled    bool
}

// Registry holds the host's command set. Registration order is preserved and
// doubles as the deterministic tie-break for equal fuzzy scores.
type Registry struct {
	commands   []Command
	byID       map[string]int
	categories []Category
}

// NewRegistry builds a registry with the host's domain categories in display
// order. Commands without an ID are dropped; a re-registered ID replaces the
// earlier entry in place.
func NewRegistry(categories []Category, cmds []Command) *Registry {
	r := &Registry{
		byID:       make(map[string]int),
		categories: append([]Category(nil), categories...),
	}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

func (r *Registry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if idx, ok := r.byID[c.ID]; ok {
		r.commands[idx] = c
		return
	}
	r.byID[c.ID] = len(r.commands)
	r.commands = append(r.commands, c)
}

func (r *Registry) Get(id string) (Command, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Command{}, false
	}
	return r.commands[idx], true
}

// Commands returns entries in registration order.
func (r *Registry) Commands() []Command {
	return append([]Command(nil), r.commands...)
}

func (r *Registry) Len() int {
	return len(r.commands)
}

// Categories returns the host's declared domain category order.
func (r *Registry) Categories() []Category {
	return append([]Category(nil), r.categories...)
}

// Result is one filtered palette entry. Recent and Favorite mark entries the
// filter surfaced from history; they take precedence over the command's
// nominal category when grouping.
type Result struct {
	Command  Command
	Score    float64
	Recent   bool
	Favorite bool
}

// EffectiveCategory is the group a result renders under.
func (r Result) EffectiveCategory() Category {
	if r.Recent {
		return CategoryRecent
	}
	if r.Favorite {
		return CategoryFavorites
	}
	return r.Command.Category
}

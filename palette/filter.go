package palette

// Per-section heads for the empty-query view.
const (
	recentHead   = 5
	favoriteHead = 5
)

const DefaultResultLimit = 12

// Filter produces the flattened result list for a query. It owns no state;
// the controller calls it on every query change.
type Filter struct {
	Matcher Matcher
	Limit   int
}

func NewFilter(m Matcher, limit int) *Filter {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	return &Filter{Matcher: m, Limit: limit}
}

// Apply returns at most Limit results. Empty query: up to 5 recents
// (most-recent-first), then up to 5 favorites not already shown, falling
// back to the head of the registry when history is empty. Non-empty query:
// matcher-ranked hits. Disabled commands never surface.
func (f *Filter) Apply(query string, reg *Registry, history *History) []Result {
	if query == "" {
		return f.browse(reg, history)
	}
	return f.search(query, reg)
}

func (f *Filter) browse(reg *Registry, history *History) []Result {
	out := make([]Result, 0, f.Limit)
	seen := make(map[string]bool)

	recents := history.Recent()
	if len(recents) > recentHead {
		recents = recents[:recentHead]
	}
	for _, id := range recents {
		cmd, ok := reg.Get(id)
		if !ok || cmd.Disabled || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, Result{Command: cmd, Recent: true})
	}

	favs := 0
	for _, id := range history.Favorites() {
		if favs >= favoriteHead {
			break
		}
		cmd, ok := reg.Get(id)
		if !ok || cmd.Disabled || seen[id] {
			continue
		}
		seen[id] = true
		favs++
		out = append(out, Result{Command: cmd, Favorite: true})
	}

	if len(out) == 0 {
		for _, cmd := range reg.Commands() {
			if cmd.Disabled {
				continue
			}
			out = append(out, Result{Command: cmd})
			if len(out) >= f.Limit {
				break
			}
		}
	}

	if len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func (f *Filter) search(query string, reg *Registry) []Result {
	cmds := reg.Commands()
	corpus := make([][]string, len(cmds))
	for i, cmd := range cmds {
		fields := []string{cmd.Title, cmd.Subtitle, cmd.Description}
		fields = append(fields, cmd.Keywords...)
		corpus[i] = fields
	}

	out := make([]Result, 0, f.Limit)
	for _, m := range f.Matcher.Search(query, corpus) {
		cmd := cmds[m.Index]
		if cmd.Disabled {
			continue
		}
		out = append(out, Result{Command: cmd, Score: m.Score})
		if len(out) >= f.Limit {
			break
		}
	}
	return out
}

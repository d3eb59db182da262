package palette

// Group is a contiguous run of results under one heading.
type Group struct {
	Category Category
	Results  []Result
}

// GroupResults partitions results by effective category. Group order is
// fixed: Recent, Favorites, then the host's declared categories, then any
// remaining category in encounter order. Within a group, filter order is
// preserved.
func GroupResults(results []Result, categoryOrder []Category) []Group {
	buckets := make(map[Category][]Result)
	var extras []Category
	known := map[Category]bool{CategoryRecent: true, CategoryFavorites: true}
	for _, c := range categoryOrder {
		known[c] = true
	}
	for _, r := range results {
		cat := r.EffectiveCategory()
		if _, seen := buckets[cat]; !seen && !known[cat] {
			extras = append(extras, cat)
		}
		buckets[cat] = append(buckets[cat], r)
	}

	order := make([]Category, 0, 2+len(categoryOrder)+len(extras))
	order = append(order, CategoryRecent, CategoryFavorites)
	order = append(order, categoryOrder...)
	order = append(order, extras...)

	out := make([]Group, 0, len(buckets))
	for _, cat := range order {
		if rs := buckets[cat]; len(rs) > 0 {
			out = append(out, Group{Category: cat, Results: rs})
		}
	}
	return out
}

package careers

import (
	"sort"
	"strings"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/util"
)

const (
	// DefaultMatchWeight is added for every keyword found in a career name.
	DefaultMatchWeight = 2
	// DefaultViewSize is how many careers the page shows before the form is submitted.
	DefaultViewSize = 6
)

// Scored is a career name with its interest score.
type Scored struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Recommend ranks the careers of pack against the selected interest labels and returns at most n.
// Every keyword of a selected tag that appears in a career name adds weight. Labels missing from
// interests are ignored.
func Recommend(pack content.CareerPack, interests []content.InterestTag, selected []string, n, weight int) []Scored {
	if n <= 0 {
		return []Scored{}
	}
	if weight <= 0 {
		weight = DefaultMatchWeight
	}

	byLabel := make(map[string][]string, len(interests))
	for _, it := range interests {
		byLabel[it.Label] = it.Keywords
	}
	var keywords [][]string
	for _, label := range util.NormalizeList(selected) {
		if kws, ok := byLabel[label]; ok {
			keywords = append(keywords, kws)
		}
	}

	base := distinct(pack.Careers)
	scored := make([]Scored, 0, len(base))
	for _, name := range base {
		score := 0
		for _, kws := range keywords {
			for _, kw := range kws {
				if kw != "" && strings.Contains(name, kw) {
					score += weight
				}
			}
		}
		scored = append(scored, Scored{Name: name, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Name < scored[j].Name
	})
	// Zero scores stay in the list, so n results come back whenever the pack has n careers.
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// DefaultView returns the first careers of the pack in source order, unscored.
func DefaultView(pack content.CareerPack) []Scored {
	base := distinct(pack.Careers)
	if len(base) > DefaultViewSize {
		base = base[:DefaultViewSize]
	}
	out := make([]Scored, 0, len(base))
	for _, name := range base {
		out = append(out, Scored{Name: name})
	}
	return out
}

// pick rotates through items by position so the same request always renders the same card.
func pick(items []string, i int) string {
	if len(items) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return items[i%len(items)]
}

func distinct(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

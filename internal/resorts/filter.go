package resorts

import (
	"fmt"
	"sort"

	"guide-backend/internal/content"
)

// Match is a resort that passed the filter, with the range that was compared.
type Match struct {
	Resort content.Resort
	Range  content.MinuteRange
	Bucket Bucket
}

// Filter keeps resorts whose range for mode has an upper bound of at most maxMinutes and whose
// bucket is accepted. An empty accepted list accepts every bucket. Results are ordered by
// upper bound, then lower bound, then name.
func Filter(resorts []content.Resort, mode TravelMode, maxMinutes int, accepted []Bucket, th Thresholds) []Match {
	allow := make(map[Bucket]bool, len(accepted))
	for _, b := range accepted {
		allow[b] = true
	}

	out := make([]Match, 0, len(resorts))
	for _, r := range resorts {
		rng := mode.Range(r)
		if rng == nil || rng.Max > maxMinutes {
			continue
		}
		bucket := Classify(r.Difficulty, th)
		if len(allow) > 0 && !allow[bucket] {
			continue
		}
		out = append(out, Match{Resort: r, Range: *rng, Bucket: bucket})
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Range.Max != b.Range.Max {
			return a.Range.Max < b.Range.Max
		}
		if a.Range.Min != b.Range.Min {
			return a.Range.Min < b.Range.Min
		}
		return a.Resort.Name < b.Resort.Name
	})
	return out
}

// FormatRange renders a range as "50–80분", or "50분" when both ends match.
func FormatRange(r *content.MinuteRange) string {
	if r == nil {
		return "—"
	}
	if r.Min == r.Max {
		return fmt.Sprintf("%d분", r.Min)
	}
	return fmt.Sprintf("%d–%d분", r.Min, r.Max)
}

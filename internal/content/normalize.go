package content

import "guide-backend/internal/shared/util"

// normalize rewrites every key and every string compared against user input to trimmed NFC,
// the same form request values are reduced to. Files saved with decomposed Hangul then
// index and match like the embedded copies.
func normalize(b *Bundle) {
	for i := range b.Interests {
		it := &b.Interests[i]
		it.Label = util.NormalizeInput(it.Label)
		normalizeAll(it.Keywords)
	}
	for i := range b.Types {
		p := &b.Types[i]
		p.Code = util.NormalizeInput(p.Code)
		normalizeAll(p.Careers)
	}
	for i := range b.Tests {
		b.Tests[i].Code = util.NormalizeInput(b.Tests[i].Code)
	}
	for i := range b.Exercises {
		b.Exercises[i].Code = util.NormalizeInput(b.Exercises[i].Code)
	}
	for i := range b.Symptoms {
		s := &b.Symptoms[i]
		s.Key = util.NormalizeInput(s.Key)
		normalizeAll(s.Tags)
		normalizeAll(s.Tests)
		normalizeAll(s.Exercises)
	}
	for i := range b.Resorts {
		b.Resorts[i].Name = util.NormalizeInput(b.Resorts[i].Name)
	}
}

func normalizeAll(items []string) {
	for i, item := range items {
		items[i] = util.NormalizeInput(item)
	}
}

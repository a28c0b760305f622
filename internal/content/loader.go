package content

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"guide-backend/internal/shared/storage/object"
)

type careersDoc struct {
	Interests []InterestTag `yaml:"interests"`
	Types     []CareerPack  `yaml:"types"`
}

type shoulderDoc struct {
	Tests     []PhysicalTest `yaml:"tests"`
	Exercises []Exercise     `yaml:"exercises"`
	Symptoms  []SymptomEntry `yaml:"symptoms"`
}

type resortsDoc struct {
	Resorts []Resort `yaml:"resorts"`
}

// Load reads, schema-checks and cross-checks the three content files from src. Keys and matched
// strings are NFC-normalized before checking.
func Load(ctx context.Context, src object.Reader) (*Bundle, error) {
	var careers careersDoc
	if err := decode(ctx, src, CareersFile, &careers); err != nil {
		return nil, err
	}
	var shoulder shoulderDoc
	if err := decode(ctx, src, ShoulderFile, &shoulder); err != nil {
		return nil, err
	}
	var resorts resortsDoc
	if err := decode(ctx, src, ResortsFile, &resorts); err != nil {
		return nil, err
	}

	b := &Bundle{
		Interests: careers.Interests,
		Types:     careers.Types,
		Tests:     shoulder.Tests,
		Exercises: shoulder.Exercises,
		Symptoms:  shoulder.Symptoms,
		Resorts:   resorts.Resorts,
	}
	normalize(b)
	if err := Check(b); err != nil {
		return nil, err
	}
	b.index()
	return b, nil
}

// LoadEmbedded loads the bundle compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return Load(context.Background(), EmbeddedSource{})
}

func decode(ctx context.Context, src object.Reader, file string, out any) error {
	rc, err := src.Open(ctx, file)
	if err != nil {
		return fmt.Errorf("open content %s: %w", file, err)
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("read content %s: %w", file, err)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBundle, file, err)
	}
	if err := validateDocument(file, generic); err != nil {
		return err
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidBundle, file, err)
	}
	return nil
}

// Check verifies invariants the schemas cannot express: unique keys, symptom references
// that resolve and minute ranges with min <= max.
func Check(b *Bundle) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	labels := map[string]bool{}
	for _, it := range b.Interests {
		if labels[it.Label] {
			add("duplicate interest %q", it.Label)
		}
		labels[it.Label] = true
	}
	codes := map[string]bool{}
	for _, p := range b.Types {
		if codes[p.Code] {
			add("duplicate type %q", p.Code)
		}
		codes[p.Code] = true
	}

	tests := map[string]bool{}
	for _, t := range b.Tests {
		if tests[t.Code] {
			add("duplicate test %q", t.Code)
		}
		tests[t.Code] = true
	}
	exercises := map[string]bool{}
	for _, e := range b.Exercises {
		if exercises[e.Code] {
			add("duplicate exercise %q", e.Code)
		}
		exercises[e.Code] = true
	}
	symptoms := map[string]bool{}
	for _, s := range b.Symptoms {
		if symptoms[s.Key] {
			add("duplicate symptom %q", s.Key)
		}
		symptoms[s.Key] = true
		for _, code := range s.Tests {
			if !tests[code] {
				add("symptom %q references unknown test %q", s.Key, code)
			}
		}
		for _, code := range s.Exercises {
			if !exercises[code] {
				add("symptom %q references unknown exercise %q", s.Key, code)
			}
		}
	}

	names := map[string]bool{}
	for _, r := range b.Resorts {
		if names[r.Name] {
			add("duplicate resort %q", r.Name)
		}
		names[r.Name] = true
		ranges := []struct {
			mode string
			rng  *MinuteRange
		}{{"car", r.Car}, {"public", r.Public}, {"ktx", r.KTX}}
		for _, m := range ranges {
			if m.rng != nil && m.rng.Min > m.rng.Max {
				add("resort %q has %s range %d > %d", r.Name, m.mode, m.rng.Min, m.rng.Max)
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidBundle, strings.Join(problems, "; "))
	}
	return nil
}

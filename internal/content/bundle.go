package content

// Bundle is the immutable set of lookup tables shared by every request.
type Bundle struct {
	Interests []InterestTag
	Types     []CareerPack
	Tests     []PhysicalTest
	Exercises []Exercise
	Symptoms  []SymptomEntry
	Resorts   []Resort

	types     map[string]int
	tests     map[string]int
	exercises map[string]int
	symptoms  map[string]int
}

func (b *Bundle) index() {
	b.types = make(map[string]int, len(b.Types))
	for i, p := range b.Types {
		b.types[p.Code] = i
	}
	b.tests = make(map[string]int, len(b.Tests))
	for i, t := range b.Tests {
		b.tests[t.Code] = i
	}
	b.exercises = make(map[string]int, len(b.Exercises))
	for i, e := range b.Exercises {
		b.exercises[e.Code] = i
	}
	b.symptoms = make(map[string]int, len(b.Symptoms))
	for i, s := range b.Symptoms {
		b.symptoms[s.Key] = i
	}
}

// CareerPack returns the pack for a type code.
func (b *Bundle) CareerPack(code string) (CareerPack, bool) {
	i, ok := b.types[code]
	if !ok {
		return CareerPack{}, false
	}
	return b.Types[i], true
}

// TypeCodes lists type codes in table order.
func (b *Bundle) TypeCodes() []string {
	out := make([]string, 0, len(b.Types))
	for _, p := range b.Types {
		out = append(out, p.Code)
	}
	return out
}

// InterestLabels lists interest labels in table order.
func (b *Bundle) InterestLabels() []string {
	out := make([]string, 0, len(b.Interests))
	for _, it := range b.Interests {
		out = append(out, it.Label)
	}
	return out
}

// Test returns a physical test by code.
func (b *Bundle) Test(code string) (PhysicalTest, bool) {
	i, ok := b.tests[code]
	if !ok {
		return PhysicalTest{}, false
	}
	return b.Tests[i], true
}

// Exercise returns an exercise by code.
func (b *Bundle) Exercise(code string) (Exercise, bool) {
	i, ok := b.exercises[code]
	if !ok {
		return Exercise{}, false
	}
	return b.Exercises[i], true
}

// Symptom returns a symptom entry by its description key.
func (b *Bundle) Symptom(key string) (SymptomEntry, bool) {
	i, ok := b.symptoms[key]
	if !ok {
		return SymptomEntry{}, false
	}
	return b.Symptoms[i], true
}

// SymptomKeys lists symptom keys in table order.
func (b *Bundle) SymptomKeys() []string {
	out := make([]string, 0, len(b.Symptoms))
	for _, s := range b.Symptoms {
		out = append(out, s.Key)
	}
	return out
}

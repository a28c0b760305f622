package content

// InterestTag maps an interest label shown in the UI to the keywords matched against career names.
type InterestTag struct {
	Label    string   `yaml:"label" json:"label"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CareerPack is the career guidance record for one personality type.
type CareerPack struct {
	Code         string   `yaml:"code" json:"code"`
	Summary      string   `yaml:"summary" json:"summary"`
	Strengths    []string `yaml:"strengths" json:"strengths"`
	Careers      []string `yaml:"careers" json:"careers"`
	Environments []string `yaml:"environments" json:"environments"`
	StudyTips    []string `yaml:"study_tips" json:"studyTips"`
	FamousPeople []string `yaml:"famous_people" json:"famousPeople"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
}

// PhysicalTest is a shoulder examination maneuver.
type PhysicalTest struct {
	Code      string `yaml:"code" json:"code"`
	Name      string `yaml:"name" json:"name"`
	Target    string `yaml:"target" json:"target"`
	Procedure string `yaml:"procedure" json:"procedure"`
	Positive  string `yaml:"positive" json:"positive"`
	Caution   string `yaml:"caution,omitempty" json:"caution,omitempty"`
}

// Exercise is a home exercise with ordered steps.
type Exercise struct {
	Code    string   `yaml:"code" json:"code"`
	Name    string   `yaml:"name" json:"name"`
	Goal    string   `yaml:"goal" json:"goal"`
	Steps   []string `yaml:"steps" json:"steps"`
	Dosage  string   `yaml:"dosage" json:"dosage"`
	Diagram string   `yaml:"diagram" json:"diagram"`
	Caution string   `yaml:"caution,omitempty" json:"caution,omitempty"`
}

// SymptomEntry links a symptom description to test and exercise codes.
type SymptomEntry struct {
	Key       string   `yaml:"key" json:"key"`
	Tags      []string `yaml:"tags" json:"tags"`
	Tests     []string `yaml:"tests" json:"tests"`
	Exercises []string `yaml:"exercises" json:"exercises"`
}

// MinuteRange is a rough door-to-door travel time in minutes.
type MinuteRange struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Difficulty holds slope-mix percentages. Any value may be absent and they need not sum to 100.
type Difficulty struct {
	Beginner     *int `yaml:"beginner,omitempty" json:"beginner,omitempty"`
	Intermediate *int `yaml:"intermediate,omitempty" json:"intermediate,omitempty"`
	Advanced     *int `yaml:"advanced,omitempty" json:"advanced,omitempty"`
}

// Empty reports whether no percentage is present.
func (d Difficulty) Empty() bool {
	return d.Beginner == nil && d.Intermediate == nil && d.Advanced == nil
}

// Link is an outgoing URL shown next to a resort.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Resort is a ski resort record with per-mode travel ranges.
type Resort struct {
	Name       string       `yaml:"name" json:"name"`
	Icon       string       `yaml:"icon,omitempty" json:"icon,omitempty"`
	Region     string       `yaml:"region" json:"region"`
	Highlights []string     `yaml:"highlights" json:"highlights"`
	Car        *MinuteRange `yaml:"car,omitempty" json:"car,omitempty"`
	Public     *MinuteRange `yaml:"public,omitempty" json:"public,omitempty"`
	KTX        *MinuteRange `yaml:"ktx,omitempty" json:"ktx,omitempty"`
	Note       string       `yaml:"note,omitempty" json:"note,omitempty"`
	SourceHint string       `yaml:"source_hint,omitempty" json:"sourceHint,omitempty"`
	Difficulty Difficulty   `yaml:"difficulty,omitempty" json:"difficulty"`
	MapLinks   []Link       `yaml:"map_links,omitempty" json:"mapLinks,omitempty"`
}

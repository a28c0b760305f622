package shoulder

import (
	"errors"
	"fmt"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/util"
)

var ErrUnknownSymptom = errors.New("unknown symptom")

// Disclaimer is shown on every page, apart from the advisories.
const Disclaimer = "이 정보는 일반적인 참고용이며 진단을 대신하지 않습니다. 통증이 심해지거나 2주 이상 지속되면 전문의와 상담하세요."

// Flags are the red-flag checkboxes. Each set flag adds one advisory.
type Flags struct {
	Trauma bool `json:"trauma"`
	Fever  bool `json:"fever"`
	Neuro  bool `json:"neuro"`
}

// AdvisoryKind names the flag an advisory came from.
type AdvisoryKind string

const (
	AdvisoryTrauma AdvisoryKind = "trauma"
	AdvisoryFever  AdvisoryKind = "fever"
	AdvisoryNeuro  AdvisoryKind = "neuro"
)

// Advisory is a fixed warning attached to a lookup.
type Advisory struct {
	Kind AdvisoryKind `json:"kind"`
	Text string       `json:"text"`
}

var advisoryText = map[AdvisoryKind]string{
	AdvisoryTrauma: "넘어지거나 부딪힌 뒤 시작된 통증이라면 골절·탈구·힘줄 파열 여부를 먼저 확인해야 합니다. 운동보다 진료와 영상 검사를 우선하세요.",
	AdvisoryFever:  "열이 나거나 어깨가 붉게 붓고 뜨겁다면 감염 가능성이 있습니다. 바로 진료를 받으세요.",
	AdvisoryNeuro:  "팔 저림, 감각 저하, 근력 저하가 함께 있다면 목 신경 문제일 수 있습니다. 신경학적 진찰을 받아 보세요.",
}

// Result is a resolved symptom entry.
type Result struct {
	Symptom    string                 `json:"symptom"`
	Tags       []string               `json:"tags"`
	Tests      []content.PhysicalTest `json:"tests"`
	Exercises  []content.Exercise     `json:"exercises"`
	Advisories []Advisory             `json:"advisories"`
}

// Lookup resolves a symptom to its tests and exercises in table order and appends one advisory
// per set flag.
func Lookup(b *content.Bundle, symptom string, flags Flags) (Result, error) {
	key := util.NormalizeInput(symptom)
	entry, ok := b.Symptom(key)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownSymptom, symptom)
	}

	res := Result{
		Symptom:    entry.Key,
		Tags:       entry.Tags,
		Tests:      make([]content.PhysicalTest, 0, len(entry.Tests)),
		Exercises:  make([]content.Exercise, 0, len(entry.Exercises)),
		Advisories: Advisories(flags),
	}
	for _, code := range entry.Tests {
		if t, ok := b.Test(code); ok {
			res.Tests = append(res.Tests, t)
		}
	}
	for _, code := range entry.Exercises {
		if e, ok := b.Exercise(code); ok {
			res.Exercises = append(res.Exercises, e)
		}
	}
	return res, nil
}

// Advisories returns the advisories for the set flags, trauma first.
func Advisories(flags Flags) []Advisory {
	out := []Advisory{}
	if flags.Trauma {
		out = append(out, Advisory{Kind: AdvisoryTrauma, Text: advisoryText[AdvisoryTrauma]})
	}
	if flags.Fever {
		out = append(out, Advisory{Kind: AdvisoryFever, Text: advisoryText[AdvisoryFever]})
	}
	if flags.Neuro {
		out = append(out, Advisory{Kind: AdvisoryNeuro, Text: advisoryText[AdvisoryNeuro]})
	}
	return out
}

package resorts

import (
	"fmt"
	"strings"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/util"
)

// TravelMode selects which minute range of a resort is compared.
type TravelMode string

const (
	ModeCar    TravelMode = "car"
	ModePublic TravelMode = "public"
	ModeKTX    TravelMode = "ktx"
)

// Modes lists the travel modes in display order.
var Modes = []TravelMode{ModeCar, ModePublic, ModeKTX}

var modeLabels = map[TravelMode]string{
	ModeCar:    "자가용(운전)",
	ModePublic: "대중교통(버스/지하철)",
	ModeKTX:    "KTX/철도 연계",
}

// Label returns the Korean display label.
func (m TravelMode) Label() string {
	return modeLabels[m]
}

// Range returns the resort's minute range for m, or nil when the resort has none.
func (m TravelMode) Range(r content.Resort) *content.MinuteRange {
	switch m {
	case ModeCar:
		return r.Car
	case ModePublic:
		return r.Public
	case ModeKTX:
		return r.KTX
	default:
		return nil
	}
}

// ParseMode accepts a mode key, its full label or a label prefix such as "자가용".
func ParseMode(raw string) (TravelMode, error) {
	v := util.NormalizeInput(raw)
	if v == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownMode)
	}
	key := TravelMode(strings.ToLower(v))
	if _, ok := modeLabels[key]; ok {
		return key, nil
	}
	for _, m := range Modes {
		if strings.HasPrefix(m.Label(), v) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
}

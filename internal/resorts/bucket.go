package resorts

import (
	"fmt"
	"strings"

	"guide-backend/internal/content"
	"guide-backend/internal/shared/config"
)

// Bucket is a coarse difficulty class derived from slope percentages.
type Bucket string

const (
	BucketBeginner     Bucket = "beginner"
	BucketIntermediate Bucket = "intermediate"
	BucketAdvanced     Bucket = "advanced"
	BucketBalanced     Bucket = "balanced"
	BucketUnknown      Bucket = "unknown"
)

// Buckets lists every bucket in display order.
var Buckets = []Bucket{BucketBeginner, BucketIntermediate, BucketAdvanced, BucketBalanced, BucketUnknown}

var bucketLabels = map[Bucket]string{
	BucketBeginner:     "초보 친화",
	BucketIntermediate: "중급 중심",
	BucketAdvanced:     "상급 비중 높음",
	BucketBalanced:     "균형형",
	BucketUnknown:      "데이터 부족",
}

// Label returns the Korean display label.
func (b Bucket) Label() string {
	return bucketLabels[b]
}

// ParseBucket accepts a bucket key or its label.
func ParseBucket(raw string) (Bucket, error) {
	v := strings.TrimSpace(raw)
	key := Bucket(strings.ToLower(v))
	if _, ok := bucketLabels[key]; ok {
		return key, nil
	}
	for b, label := range bucketLabels {
		if label == v {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBucket, raw)
}

// Thresholds are the percentage cut-offs used by Classify.
type Thresholds struct {
	AdvancedHeavyMin       int
	BeginnerFriendlyMin    int
	IntermediateCentricMin int
}

// DefaultThresholds returns the stock cut-offs.
func DefaultThresholds() Thresholds {
	return Thresholds{AdvancedHeavyMin: 30, BeginnerFriendlyMin: 40, IntermediateCentricMin: 40}
}

// ThresholdsFrom reads cut-offs from config, keeping defaults for unset values.
func ThresholdsFrom(cfg config.ResortsConfig) Thresholds {
	th := DefaultThresholds()
	if cfg.AdvancedHeavyMin > 0 {
		th.AdvancedHeavyMin = cfg.AdvancedHeavyMin
	}
	if cfg.BeginnerFriendlyMin > 0 {
		th.BeginnerFriendlyMin = cfg.BeginnerFriendlyMin
	}
	if cfg.IntermediateCentricMin > 0 {
		th.IntermediateCentricMin = cfg.IntermediateCentricMin
	}
	return th
}

// Classify buckets a difficulty mix. Rules are checked in order: advanced, beginner,
// intermediate, then balanced. Missing percentages count as zero unless all are missing.
func Classify(d content.Difficulty, th Thresholds) Bucket {
	if d.Empty() {
		return BucketUnknown
	}
	beginner, intermediate, advanced := value(d.Beginner), value(d.Intermediate), value(d.Advanced)
	switch {
	case advanced >= th.AdvancedHeavyMin:
		return BucketAdvanced
	case beginner >= th.BeginnerFriendlyMin:
		return BucketBeginner
	case intermediate >= th.IntermediateCentricMin:
		return BucketIntermediate
	default:
		return BucketBalanced
	}
}

func value(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

package clickpack

// ClickType is the categorised strength of a press or release
// Values are ordered hard, regular, soft, micro with click/release interleaved,
// which is also the bucket order inside PlayerClicks
type ClickType int

const (
	HardClick ClickType = iota
	HardRelease
	Click
	Release
	SoftClick
	SoftRelease
	MicroClick
	MicroRelease
	ClickNone // no preference, skip
)

const clickTypeCount = int(ClickNone)

// ClickTypes lists the eight real click types in bucket order
var ClickTypes = [clickTypeCount]ClickType{
	HardClick, HardRelease, Click, Release,
	SoftClick, SoftRelease, MicroClick, MicroRelease,
}

var clickTypeNames = [...]string{
	HardClick:    "hardclicks",
	HardRelease:  "hardreleases",
	Click:        "clicks",
	Release:      "releases",
	SoftClick:    "softclicks",
	SoftRelease:  "softreleases",
	MicroClick:   "microclicks",
	MicroRelease: "microreleases",
	ClickNone:    "none",
}

func (ct ClickType) String() string {
	if ct < 0 || ct > ClickNone {
		return "invalid"
	}
	return clickTypeNames[ct]
}

// IsClick reports whether ct is one of the four push strengths
func (ct ClickType) IsClick() bool {
	return ct >= HardClick && ct < ClickNone && ct%2 == 0
}

// IsRelease reports whether ct is one of the four release strengths
func (ct ClickType) IsRelease() bool {
	return ct >= HardClick && ct < ClickNone && ct%2 == 1
}

// strength is 0 (hard) through 3 (micro)
func (ct ClickType) strength() int {
	return int(ct) / 2
}

func clickTypeOf(strength int, release bool) ClickType {
	ct := ClickType(strength * 2)
	if release {
		ct++
	}
	return ct
}

// Timings holds the inter-event gap thresholds in seconds
// Gaps at or below Soft are micro
type Timings struct {
	Hard    float64 `toml:"hard"`
	Regular float64 `toml:"regular"`
	Soft    float64 `toml:"soft"`
}

// DefaultTimings returns the stock thresholds
func DefaultTimings() Timings {
	return Timings{
		Hard:    2.0,
		Regular: 0.15,
		Soft:    0.025,
	}
}

// Valid reports whether hard > regular > soft >= 0
func (t Timings) Valid() bool {
	return t.Hard > t.Regular && t.Regular > t.Soft && t.Soft >= 0
}

// FromTime classifies an event by the gap since the previous event of the same kind
// Boundaries use strict comparison: a gap equal to a threshold lands in the weaker bin
func FromTime(push bool, dt float64, t Timings) ClickType {
	var strength int
	switch {
	case dt > t.Hard:
		strength = 0
	case dt > t.Regular:
		strength = 1
	case dt > t.Soft:
		strength = 2
	default:
		strength = 3
	}
	return clickTypeOf(strength, !push)
}

// strengthOrder is the nearest-first walk from each strength
var strengthOrder = [4][4]int{
	{0, 1, 2, 3}, // hard
	{1, 0, 2, 3}, // regular
	{2, 3, 1, 0}, // soft
	{3, 2, 1, 0}, // micro
}

var preferredTable = buildPreferred()

func buildPreferred() [clickTypeCount + 1][clickTypeCount]ClickType {
	var table [clickTypeCount + 1][clickTypeCount]ClickType
	for _, ct := range ClickTypes {
		release := ct.IsRelease()
		order := strengthOrder[ct.strength()]
		for i, s := range order {
			table[ct][i] = clickTypeOf(s, release)
			table[ct][i+4] = clickTypeOf(s, !release)
		}
	}
	for i := range table[ClickNone] {
		table[ClickNone][i] = ClickNone
	}
	return table
}

// Preferred returns the intra-bank fallback order for ct
// Same parity first (nearest strength first), then the opposite parity
// ClickNone yields eight ClickNone entries
func (ct ClickType) Preferred() [clickTypeCount]ClickType {
	if ct < 0 || ct > ClickNone {
		return preferredTable[ClickNone]
	}
	return preferredTable[ct]
}

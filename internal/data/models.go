package data

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Score is a numeric stat as stored in the country document. Older records
// may carry a tier label (or nothing) where a number belongs; those are kept
// verbatim in raw and reported as unset so the document round-trips.
type Score struct {
	value float64
	set   bool
	raw   json.RawMessage
}

// NewScore returns a set score holding v.
func NewScore(v float64) Score {
	return Score{value: v, set: true}
}

// Value reports the numeric value and whether the score holds a number.
func (s Score) Value() (float64, bool) {
	return s.value, s.set
}

// Int returns the value truncated to an int, or 0 when unset.
func (s Score) Int() int {
	if !s.set {
		return 0
	}
	return int(s.value)
}

// IsSet reports whether the score holds a number.
func (s Score) IsSet() bool {
	return s.set
}

// String formats the score for display. Unset scores show their raw
// content, or "unset" when there is none.
func (s Score) String() string {
	if s.set {
		return strconv.FormatFloat(s.value, 'f', -1, 64)
	}
	if len(s.raw) == 0 {
		return "unset"
	}
	var text string
	if err := json.Unmarshal(s.raw, &text); err == nil {
		return text
	}
	return string(s.raw)
}

// MarshalJSON writes the number, or the original non-numeric content.
func (s Score) MarshalJSON() ([]byte, error) {
	if s.set {
		if s.value == math.Trunc(s.value) && math.Abs(s.value) < 1<<53 {
			return []byte(strconv.FormatInt(int64(s.value), 10)), nil
		}
		return json.Marshal(s.value)
	}
	if len(s.raw) == 0 {
		return []byte("null"), nil
	}
	return s.raw, nil
}

// UnmarshalJSON accepts any JSON value; only numbers produce a set score.
func (s *Score) UnmarshalJSON(b []byte) error {
	*s = Score{}
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		s.value, s.set = n, true
		return nil
	}
	s.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// StatBlock pairs a recorded tier with its score.
type StatBlock struct {
	Tier  string `json:"tier"`
	Value Score  `json:"value"`
}

// Country is one nation in the ledger. Name is the document key and is not
// serialized inside the record itself.
type Country struct {
	Name             string    `json:"-"`
	Leader           string    `json:"leader"`
	MilitaryStrength StatBlock `json:"military_strength"`
	Stability        StatBlock `json:"stability"`
	Economy          StatBlock `json:"economy"`
	Morale           Score     `json:"morale"`
	Supply           Score     `json:"supply"`
	Composition      string    `json:"composition"`
	Tags             []string  `json:"tags"`
}

// DefaultCountry is the record a debug reset writes back.
func DefaultCountry(name string) Country {
	return Country{
		Name:             name,
		Leader:           "Unknown",
		MilitaryStrength: StatBlock{Tier: "Trivial"},
		Economy:          StatBlock{Tier: "Collapsed", Value: NewScore(0)},
		Stability:        StatBlock{Tier: "Anarchy", Value: NewScore(0)},
		Morale:           NewScore(50),
		Supply:           NewScore(50),
		Composition:      "Unknown",
		Tags:             []string{},
	}
}

// War status values.
const (
	WarActive = "active"
	WarClosed = "closed"
)

// War is one conflict tracked in the war log. Momentum is the unclamped
// running total; only rendering clamps it to the intensity.
type War struct {
	Name          string `json:"name"`
	Attacker      string `json:"attacker"`
	Defender      string `json:"defender"`
	Momentum      int    `json:"momentum"`
	Intensity     int    `json:"intensity"`
	AttackerEmoji string `json:"attacker_emoji"`
	DefenderEmoji string `json:"defender_emoji"`
	Status        string `json:"status"`
	StartedAt     string `json:"started_at"`
	EndedAt       string `json:"ended_at,omitempty"`
}

// IsActive reports whether the war is still being fought.
func (w War) IsActive() bool {
	return w.Status == WarActive
}

// WarLog is the persisted wars document.
type WarLog struct {
	Wars []War `json:"wars"`
}

// Calendar is the process-wide year and turn.
type Calendar struct {
	Year int `json:"year"`
	Turn int `json:"turn"`
}

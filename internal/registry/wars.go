package registry

import (
	"fmt"
	"strings"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

// Intensity bounds and default.
const (
	MinIntensity     = 1
	MaxIntensity     = 20
	DefaultIntensity = 5
)

// Wars is the in-memory war log. It is a snapshot of the stored document;
// the caller persists Log() after mutating it.
type Wars struct {
	wars []data.War
}

// NewWars wraps a loaded war log.
func NewWars(log data.WarLog) *Wars {
	return &Wars{wars: append([]data.War(nil), log.Wars...)}
}

// Log returns the document to persist.
func (r *Wars) Log() data.WarLog {
	wars := make([]data.War, len(r.wars))
	copy(wars, r.wars)
	return data.WarLog{Wars: wars}
}

// Len is the number of wars, active or closed.
func (r *Wars) Len() int {
	return len(r.wars)
}

// Declaration holds the fields of a new war.
type Declaration struct {
	Name          string
	Attacker      string
	Defender      string
	Intensity     int
	AttackerEmoji string
	DefenderEmoji string
}

// Declare opens a new active war with zero momentum. Names are unique across
// the whole log, closed wars included.
func (r *Wars) Declare(d Declaration, startedAt string) (data.War, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" || strings.TrimSpace(d.Attacker) == "" || strings.TrimSpace(d.Defender) == "" {
		return data.War{}, fmt.Errorf("a war needs a name, an attacker and a defender: %w", engine.ErrInvalidArgument)
	}
	for _, w := range r.wars {
		if SameName(w.Name, name) {
			return data.War{}, fmt.Errorf("war %q: %w", w.Name, engine.ErrAlreadyExists)
		}
	}

	intensity := d.Intensity
	if intensity == 0 {
		intensity = DefaultIntensity
	}
	w := data.War{
		Name:          name,
		Attacker:      strings.TrimSpace(d.Attacker),
		Defender:      strings.TrimSpace(d.Defender),
		Momentum:      0,
		Intensity:     clampIntensity(intensity),
		AttackerEmoji: orDefault(d.AttackerEmoji, engine.DefaultAttackerGlyph),
		DefenderEmoji: orDefault(d.DefenderEmoji, engine.DefaultDefenderGlyph),
		Status:        data.WarActive,
		StartedAt:     startedAt,
	}
	r.wars = append(r.wars, w)
	return w, nil
}

// Active finds the active war with the given name.
func (r *Wars) Active(name string) (data.War, error) {
	i, err := r.activeIndex(name)
	if err != nil {
		return data.War{}, err
	}
	return r.wars[i], nil
}

// Find returns the first war with the given name regardless of status.
func (r *Wars) Find(name string) (data.War, bool) {
	for _, w := range r.wars {
		if SameName(w.Name, name) {
			return w, true
		}
	}
	return data.War{}, false
}

// Update adds delta to an active war's momentum. The stored total is not
// clamped; the bar clamps when rendering.
func (r *Wars) Update(name string, delta int) (data.War, error) {
	i, err := r.activeIndex(name)
	if err != nil {
		return data.War{}, err
	}
	r.wars[i].Momentum += delta
	return r.wars[i], nil
}

// WarPatch carries optional replacements for an active war.
type WarPatch struct {
	Attacker      *string
	Defender      *string
	Intensity     *int
	AttackerEmoji *string
	DefenderEmoji *string
}

// Edit overwrites only the provided fields. Empty strings and a zero
// intensity count as not provided.
func (r *Wars) Edit(name string, p WarPatch) (data.War, error) {
	i, err := r.activeIndex(name)
	if err != nil {
		return data.War{}, err
	}
	w := &r.wars[i]
	if p.Attacker != nil && *p.Attacker != "" {
		w.Attacker = *p.Attacker
	}
	if p.Defender != nil && *p.Defender != "" {
		w.Defender = *p.Defender
	}
	if p.Intensity != nil && *p.Intensity != 0 {
		w.Intensity = clampIntensity(*p.Intensity)
	}
	if p.AttackerEmoji != nil && *p.AttackerEmoji != "" {
		w.AttackerEmoji = *p.AttackerEmoji
	}
	if p.DefenderEmoji != nil && *p.DefenderEmoji != "" {
		w.DefenderEmoji = *p.DefenderEmoji
	}
	return *w, nil
}

// Close ends an active war on the given date.
func (r *Wars) Close(name, endedAt string) (data.War, error) {
	i, err := r.activeIndex(name)
	if err != nil {
		return data.War{}, err
	}
	r.wars[i].Status = data.WarClosed
	r.wars[i].EndedAt = endedAt
	return r.wars[i], nil
}

// Delete permanently removes every war, active or closed, whose name equals
// name ignoring case, and reports how many were removed. Unlike lookups it
// does not fold underscores or inner spaces.
func (r *Wars) Delete(name string) int {
	name = strings.TrimSpace(name)
	return r.remove(func(w data.War) bool { return strings.EqualFold(w.Name, name) })
}

func (r *Wars) remove(match func(data.War) bool) int {
	kept := r.wars[:0]
	removed := 0
	for _, w := range r.wars {
		if match(w) {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	r.wars = kept
	return removed
}

// Restore adds a previously recorded war unchanged. An existing war with the
// same name is replaced when replace is set; otherwise nothing changes and
// Restore returns false.
func (r *Wars) Restore(w data.War, replace bool) bool {
	if _, found := r.Find(w.Name); found {
		if !replace {
			return false
		}
		r.remove(func(old data.War) bool { return SameName(old.Name, w.Name) })
	}
	r.wars = append(r.wars, w)
	return true
}

// List returns active wars, or every war when includeClosed is set.
func (r *Wars) List(includeClosed bool) []data.War {
	var out []data.War
	for _, w := range r.wars {
		if includeClosed || w.IsActive() {
			out = append(out, w)
		}
	}
	return out
}

// Search returns names containing fragment, for completion. At most limit
// results are returned when limit > 0.
func (r *Wars) Search(fragment string, activeOnly bool, limit int) []string {
	needle := NormalizeName(fragment)
	var out []string
	for _, w := range r.wars {
		if activeOnly && !w.IsActive() {
			continue
		}
		if strings.Contains(NormalizeName(w.Name), needle) {
			out = append(out, w.Name)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

func (r *Wars) activeIndex(name string) (int, error) {
	for i, w := range r.wars {
		if w.IsActive() && SameName(w.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no active war named %q: %w", name, engine.ErrNotFound)
}

// BarIntensity is the intensity a war is drawn with. Legacy records that
// never stored one use DefaultIntensity.
func BarIntensity(w data.War) int {
	if w.Intensity < 1 {
		return DefaultIntensity
	}
	return w.Intensity
}

func clampIntensity(v int) int {
	return max(MinIntensity, min(MaxIntensity, v))
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

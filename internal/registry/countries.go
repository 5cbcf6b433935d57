package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
)

// Countries is the in-memory country ledger keyed by exact, case-sensitive name.
type Countries struct {
	byName map[string]data.Country
}

// NewCountries wraps a loaded countries document.
func NewCountries(doc map[string]data.Country) *Countries {
	byName := make(map[string]data.Country, len(doc))
	for name, c := range doc {
		c.Name = name
		byName[name] = c
	}
	return &Countries{byName: byName}
}

// Document returns the map to persist.
func (r *Countries) Document() map[string]data.Country {
	out := make(map[string]data.Country, len(r.byName))
	for name, c := range r.byName {
		out[name] = c
	}
	return out
}

// Len is the number of registered countries.
func (r *Countries) Len() int {
	return len(r.byName)
}

// Get returns the country with exactly this name.
func (r *Countries) Get(name string) (data.Country, error) {
	c, ok := r.byName[name]
	if !ok {
		return data.Country{}, fmt.Errorf("country %q: %w", name, engine.ErrNotFound)
	}
	return c, nil
}

// Put stores c under its name, replacing any previous record.
func (r *Countries) Put(c data.Country) {
	r.byName[c.Name] = c
}

// Names lists registered countries alphabetically.
func (r *Countries) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Search returns names containing fragment case-insensitively, for completion.
func (r *Countries) Search(fragment string, limit int) []string {
	needle := strings.ToLower(fragment)
	var out []string
	for _, name := range r.Names() {
		if strings.Contains(strings.ToLower(name), needle) {
			out = append(out, name)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// Registration is what a GM supplies to record a new country. Tier fields
// name a tier in the matching table; the stored value is rolled inside it.
type Registration struct {
	Name          string
	Leader        string
	MilitaryTier  string
	StabilityTier string
	EconomyTier   string
	MoraleTier    string
	SupplyTier    string
	Composition   string
	Tags          string // comma separated
}

// Register records a new country, rolling each stat uniformly inside the chosen tier.
func (r *Countries) Register(reg Registration, tiers engine.TierSet, src engine.Source) (data.Country, error) {
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return data.Country{}, fmt.Errorf("a country needs a name: %w", engine.ErrInvalidArgument)
	}
	if _, exists := r.byName[name]; exists {
		return data.Country{}, fmt.Errorf("country %q: %w", name, engine.ErrAlreadyExists)
	}

	military, err := tiers.Military.Lookup(reg.MilitaryTier)
	if err != nil {
		return data.Country{}, fmt.Errorf("military tier: %w", err)
	}
	stability, err := tiers.Stability.Lookup(reg.StabilityTier)
	if err != nil {
		return data.Country{}, fmt.Errorf("stability tier: %w", err)
	}
	economy, err := tiers.Economy.Lookup(reg.EconomyTier)
	if err != nil {
		return data.Country{}, fmt.Errorf("economy tier: %w", err)
	}
	morale, err := tiers.Morale.Lookup(reg.MoraleTier)
	if err != nil {
		return data.Country{}, fmt.Errorf("morale tier: %w", err)
	}
	supply, err := tiers.Supply.Lookup(reg.SupplyTier)
	if err != nil {
		return data.Country{}, fmt.Errorf("supply tier: %w", err)
	}

	c := data.Country{
		Name:             name,
		Leader:           strings.TrimSpace(reg.Leader),
		MilitaryStrength: data.StatBlock{Tier: military.Name, Value: rollIn(src, military)},
		Stability:        data.StatBlock{Tier: stability.Name, Value: rollIn(src, stability)},
		Economy:          data.StatBlock{Tier: economy.Name, Value: rollIn(src, economy)},
		Morale:           rollIn(src, morale),
		Supply:           rollIn(src, supply),
		Composition:      strings.TrimSpace(reg.Composition),
		Tags:             SplitTags(reg.Tags),
	}
	r.byName[name] = c
	return c, nil
}

// Reset overwrites an existing country with the default record.
func (r *Countries) Reset(name string) (data.Country, error) {
	if _, err := r.Get(name); err != nil {
		return data.Country{}, err
	}
	c := data.DefaultCountry(name)
	r.byName[name] = c
	return c, nil
}

// SplitTags turns "Reformist, Elite,," into a de-duplicated tag list.
func SplitTags(raw string) []string {
	tags := []string{}
	seen := make(map[string]bool)
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

func rollIn(src engine.Source, t engine.Tier) data.Score {
	return data.NewScore(float64(src.IntRange(t.Low, t.High)))
}

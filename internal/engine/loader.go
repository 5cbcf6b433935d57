package engine

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
)

// TiersFile is the reference file looked up in the data directories.
const TiersFile = "tiers.yaml"

//go:embed tiers.yaml
var defaultTiers []byte

// TierSet holds one table per tiered stat.
type TierSet struct {
	Economy   TierTable `yaml:"economy"`
	Stability TierTable `yaml:"stability"`
	Military  TierTable `yaml:"military"`
	Morale    TierTable `yaml:"morale"`
	Supply    TierTable `yaml:"supply"`
}

// Validate checks every table in the set.
func (s TierSet) Validate() error {
	tables := []struct {
		name  string
		table TierTable
	}{
		{"economy", s.Economy},
		{"stability", s.Stability},
		{"military", s.Military},
		{"morale", s.Morale},
		{"supply", s.Supply},
	}
	for _, t := range tables {
		if err := t.table.Validate(); err != nil {
			return fmt.Errorf("%s tiers: %w", t.name, err)
		}
	}
	return nil
}

// For returns the table governing a stat field.
func (s TierSet) For(field StatField) TierTable {
	switch field {
	case StatEconomy:
		return s.Economy
	case StatStability:
		return s.Stability
	case StatMilitary:
		return s.Military
	case StatMorale:
		return s.Morale
	case StatSupply:
		return s.Supply
	}
	return nil
}

// DefaultTierSet returns the built-in tables.
func DefaultTierSet() TierSet {
	var set TierSet
	if err := data.Decode(defaultTiers, &set); err != nil {
		panic(fmt.Sprintf("embedded tiers.yaml: %v", err))
	}
	return set
}

// LoadTierSet reads tiers.yaml from the loader's data directories, falling
// back to the built-in tables when no override exists. Tables missing from
// an override keep their built-in definition.
func LoadTierSet(loader *data.Loader) (TierSet, error) {
	set := DefaultTierSet()
	var override TierSet
	err := loader.Load(TiersFile, &override)
	switch {
	case errors.Is(err, data.ErrNoReference):
		return set, nil
	case err != nil:
		return TierSet{}, err
	}

	if override.Economy != nil {
		set.Economy = override.Economy
	}
	if override.Stability != nil {
		set.Stability = override.Stability
	}
	if override.Military != nil {
		set.Military = override.Military
	}
	if override.Morale != nil {
		set.Morale = override.Morale
	}
	if override.Supply != nil {
		set.Supply = override.Supply
	}
	if err := set.Validate(); err != nil {
		return TierSet{}, err
	}
	return set, nil
}

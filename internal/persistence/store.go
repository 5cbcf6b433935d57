package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
)

// Document names. The JSON store maps each to a file of the same name.
const (
	CountriesDoc = "countries.json"
	WarsDoc      = "warlog.json"
	CalendarDoc  = "turn_tracker.json"
)

// Store loads and saves the three persisted documents. Every load reads the
// current document; every save replaces it whole.
type Store interface {
	LoadCountries() (map[string]data.Country, error)
	SaveCountries(countries map[string]data.Country) error
	LoadWars() (data.WarLog, error)
	SaveWars(log data.WarLog) error
	// LoadCalendar returns def when no calendar has been saved yet.
	LoadCalendar(def data.Calendar) (data.Calendar, error)
	SaveCalendar(cal data.Calendar) error
	Close() error
}

// backend reads and writes raw document bodies. read returns nil, nil for
// a document that does not exist yet.
type backend interface {
	read(name string) ([]byte, error)
	write(name string, body []byte) error
	close() error
}

// Documents implements Store on top of a raw backend.
type Documents struct {
	b backend
}

// indents keeps the layout of the legacy files.
var indents = map[string]string{
	CountriesDoc: "    ",
	WarsDoc:      "  ",
	CalendarDoc:  "    ",
}

func (d *Documents) load(name string, target any) (bool, error) {
	body, err := d.b.read(name)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return true, nil
}

func (d *Documents) save(name string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indents[name])
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := d.b.write(name, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (d *Documents) LoadCountries() (map[string]data.Country, error) {
	countries := map[string]data.Country{}
	if _, err := d.load(CountriesDoc, &countries); err != nil {
		return nil, err
	}
	if countries == nil {
		countries = map[string]data.Country{}
	}
	for name, c := range countries {
		c.Name = name
		countries[name] = c
	}
	return countries, nil
}

func (d *Documents) SaveCountries(countries map[string]data.Country) error {
	if countries == nil {
		countries = map[string]data.Country{}
	}
	return d.save(CountriesDoc, countries)
}

func (d *Documents) LoadWars() (data.WarLog, error) {
	var log data.WarLog
	if _, err := d.load(WarsDoc, &log); err != nil {
		return data.WarLog{}, err
	}
	if log.Wars == nil {
		log.Wars = []data.War{}
	}
	return log, nil
}

func (d *Documents) SaveWars(log data.WarLog) error {
	if log.Wars == nil {
		log.Wars = []data.War{}
	}
	return d.save(WarsDoc, log)
}

func (d *Documents) LoadCalendar(def data.Calendar) (data.Calendar, error) {
	var cal data.Calendar
	found, err := d.load(CalendarDoc, &cal)
	if err != nil {
		return data.Calendar{}, err
	}
	if !found {
		return def, nil
	}
	return cal, nil
}

func (d *Documents) SaveCalendar(cal data.Calendar) error {
	return d.save(CalendarDoc, cal)
}

// Close releases the backend.
func (d *Documents) Close() error {
	return d.b.close()
}

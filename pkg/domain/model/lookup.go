package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// NotAvailable is rendered wherever an id or code cannot be resolved
const NotAvailable = "N/A"

var (
	ErrEmptyLookupValue     = goerr.New("lookup value is empty")
	ErrDuplicateLookupValue = goerr.New("duplicate lookup value")
)

// LookupEntry maps a stored code to its display label
type LookupEntry struct {
	Value string `json:"value" toml:"value"`
	Name  string `json:"name" toml:"name"`
}

// LookupTable is an ordered list of lookup entries
type LookupTable []LookupEntry

// FindValueName returns the label of code, or NotAvailable
func (t LookupTable) FindValueName(code string) string {
	for _, e := range t {
		if e.Value == code {
			return e.Name
		}
	}
	return NotAvailable
}

// Has reports whether code is a value of the table
func (t LookupTable) Has(code string) bool {
	for _, e := range t {
		if e.Value == code {
			return true
		}
	}
	return false
}

// Validate checks values are non-empty and unique
func (t LookupTable) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, e := range t {
		if e.Value == "" {
			return goerr.Wrap(ErrEmptyLookupValue, "invalid lookup entry", goerr.V("index", i))
		}
		if _, ok := seen[e.Value]; ok {
			return goerr.Wrap(ErrDuplicateLookupValue, "invalid lookup entry", goerr.V("value", e.Value))
		}
		seen[e.Value] = struct{}{}
	}
	return nil
}

// FindValueName is the free function form of LookupTable.FindValueName
func FindValueName(table LookupTable, code string) string {
	return table.FindValueName(code)
}

// Lookups holds the enumerated tables used to render stored codes
type Lookups struct {
	ActionTypes  LookupTable `json:"actionTypes"`
	Countries    LookupTable `json:"countries"`
	Visibilities LookupTable `json:"visibilities"`
	Tenses       LookupTable `json:"tenses"`
	Sizes        LookupTable `json:"sizes"`
}

// Validate validates every table
func (l *Lookups) Validate() error {
	tables := map[string]LookupTable{
		"action_types": l.ActionTypes,
		"countries":    l.Countries,
		"visibilities": l.Visibilities,
		"tenses":       l.Tenses,
		"sizes":        l.Sizes,
	}
	for name, table := range tables {
		if err := table.Validate(); err != nil {
			return goerr.Wrap(err, "invalid lookup table", goerr.V("table", name))
		}
	}
	return nil
}

// DefaultLookups returns the built-in Czech tables
func DefaultLookups() *Lookups {
	return &Lookups{
		ActionTypes: LookupTable{
			{Value: "mission", Name: "Mise"},
			{Value: "other", Name: "Jiná hlavní akce"},
			{Value: "secondary", Name: "Vedlejší akce"},
			{Value: "intelligence", Name: "Zpravodajská akce"},
		},
		Countries: LookupTable{
			{Value: "ch", Name: "Švýcarsko"},
			{Value: "de", Name: "Německo"},
			{Value: "fr", Name: "Francie"},
			{Value: "it", Name: "Itálie"},
			{Value: "at", Name: "Rakousko"},
			{Value: "gb", Name: "Velká Británie"},
			{Value: "us", Name: "USA"},
			{Value: "su", Name: "Sovětský svaz"},
			{Value: "international", Name: "Mezinárodní"},
		},
		Visibilities: LookupTable{
			{Value: "public", Name: "Veřejná"},
			{Value: "private", Name: "Soukromá"},
			{Value: "secret", Name: "Tajná"},
		},
		Tenses: LookupTable{
			{Value: "past", Name: "Minulý čas"},
			{Value: "present", Name: "Přítomný čas"},
			{Value: "future", Name: "Budoucí čas"},
		},
		Sizes: LookupTable{
			{Value: "small", Name: "Malé kolo"},
			{Value: "medium", Name: "Střední kolo"},
			{Value: "large", Name: "Velké kolo"},
		},
	}
}

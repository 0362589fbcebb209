package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/swiss-game/swiss/pkg/domain/model"
)

func TestFindValueName(t *testing.T) {
	table := model.LookupTable{
		{Value: "mission", Name: "Mise"},
		{Value: "other", Name: "Jiná hlavní akce"},
	}

	gt.Value(t, model.FindValueName(table, "mission")).Equal("Mise")
	gt.Value(t, model.FindValueName(table, "unknown")).Equal(model.NotAvailable)
	gt.Value(t, model.FindValueName(table, "")).Equal(model.NotAvailable)
	gt.Value(t, model.FindValueName(nil, "mission")).Equal(model.NotAvailable)
}

func TestLookups_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		gt.NoError(t, model.DefaultLookups().Validate())
	})

	t.Run("empty value", func(t *testing.T) {
		l := model.DefaultLookups()
		l.Countries = append(l.Countries, model.LookupEntry{Name: "Nowhere"})
		gt.Error(t, l.Validate()).Is(model.ErrEmptyLookupValue)
	})

	t.Run("duplicate value", func(t *testing.T) {
		l := model.DefaultLookups()
		l.Sizes = append(l.Sizes, model.LookupEntry{Value: "small", Name: "Again"})
		gt.Error(t, l.Validate()).Is(model.ErrDuplicateLookupValue)
	})
}

func TestLookupTable_Has(t *testing.T) {
	table := model.LookupTable{{Value: "cz", Name: "N/A"}}
	gt.Bool(t, table.Has("cz")).True()
	gt.Bool(t, table.Has("sk")).False()
	gt.Bool(t, table.Has("")).False()
}

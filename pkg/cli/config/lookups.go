package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/swiss-game/swiss/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"
)

// Lookups holds CLI flags for the enumerated tables and the collation language
type Lookups struct {
	path     string
	language string
}

// Flags returns CLI flags for lookup configuration
func (l *Lookups) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "lookup-config",
			Usage:       "TOML file replacing built-in lookup tables",
			Sources:     cli.EnvVars("SWISS_LOOKUP_CONFIG"),
			Destination: &l.path,
		},
		&cli.StringFlag{
			Name:        "language",
			Usage:       "BCP 47 language used to sort project keywords",
			Value:       "cs",
			Sources:     cli.EnvVars("SWISS_LANGUAGE"),
			Destination: &l.language,
		},
	}
}

func (l Lookups) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", l.path),
		slog.String("language", l.language),
	)
}

// Configure returns the lookup tables in effect
func (l *Lookups) Configure() (*model.Lookups, error) {
	if l.path == "" {
		return model.DefaultLookups(), nil
	}
	return LoadLookups(l.path)
}

// Language returns the collation language
func (l *Lookups) Language() (language.Tag, error) {
	if l.language == "" {
		return language.Czech, nil
	}
	tag, err := language.Parse(l.language)
	if err != nil {
		return language.Und, goerr.Wrap(ErrInvalidConfig, "invalid language", goerr.V("language", l.language))
	}
	return tag, nil
}

// lookupFile is the TOML layout of a lookup file. A table that is present
// replaces the built-in one; absent tables keep their defaults.
type lookupFile struct {
	ActionTypes  model.LookupTable `toml:"action_types"`
	Countries    model.LookupTable `toml:"countries"`
	Visibilities model.LookupTable `toml:"visibilities"`
	Tenses       model.LookupTable `toml:"tenses"`
	Sizes        model.LookupTable `toml:"sizes"`
}

// LoadLookups reads a lookup file and merges it over the defaults
func LoadLookups(path string) (*model.Lookups, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read lookup file", goerr.V(ConfigPathKey, path))
	}

	return ParseLookups(data, path)
}

// ParseLookups decodes TOML lookup tables and merges them over the defaults
func ParseLookups(data []byte, path string) (*model.Lookups, error) {
	var file lookupFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(ErrInvalidLookups, "failed to parse TOML",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}

	lookups := model.DefaultLookups()
	merge := func(dst *model.LookupTable, src model.LookupTable) {
		if src != nil {
			*dst = src
		}
	}
	merge(&lookups.ActionTypes, file.ActionTypes)
	merge(&lookups.Countries, file.Countries)
	merge(&lookups.Visibilities, file.Visibilities)
	merge(&lookups.Tenses, file.Tenses)
	merge(&lookups.Sizes, file.Sizes)

	if err := lookups.Validate(); err != nil {
		return nil, goerr.Wrap(ErrInvalidLookups, "lookup validation failed",
			goerr.V(ConfigPathKey, path), goerr.V("error", err.Error()))
	}
	return lookups, nil
}

package destinations

import (
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pubplot/pkg/errors"
)

// configFile is the TOML shape for user-defined destinations:
//
//	[destinations.affinity-print]
//	css-pixel-units = false
//	save-dpi = 600
type configFile struct {
	Destinations map[string]destinationConfig `toml:"destinations"`
}

type destinationConfig struct {
	CSSPixelUnits bool    `toml:"css-pixel-units"`
	SaveDPI       float64 `toml:"save-dpi"`
}

// LoadConfig reads a TOML file and registers the destinations it declares.
// Registration stops at the first failure (malformed TOML, duplicate name,
// bad save-dpi) and the error is returned with its code intact.
func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	return ParseConfig(data)
}

// ParseConfig registers the destinations declared in raw TOML. A declared
// destination with no save-dpi gets [DefaultSaveDPI]. Names are processed
// in sorted order so failures are deterministic.
func ParseConfig(data []byte) error {
	var cfg configFile
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse destinations config")
	}

	names := make([]string, 0, len(cfg.Destinations))
	for name := range cfg.Destinations {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		dc := cfg.Destinations[name]
		if dc.SaveDPI == 0 {
			dc.SaveDPI = DefaultSaveDPI
		}
		d := Destination{Name: name, CSSPixelUnits: dc.CSSPixelUnits, SaveDPI: dc.SaveDPI}
		if err := Register(d); err != nil {
			return err
		}
	}
	return nil
}

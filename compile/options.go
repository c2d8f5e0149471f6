package compile

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml"

	"github.com/evelant/rune/common"
)

// Options holds the feature configuration of one compilation.
type Options struct {
	// Whether the experimental macros feature is enabled.
	Macros bool
}

// ParseOption applies a single `name=value` compiler option of the form
// passed on the command line: eg. `-O macros=true`.
func (o *Options) ParseOption(option string) error {
	name, value, found := strings.Cut(option, "=")
	if !found {
		value = "true"
	}

	var flag bool
	switch value {
	case "true":
		flag = true
	case "false":
		flag = false
	default:
		return fmt.Errorf("unsupported option value `%s`", value)
	}

	switch name {
	case "macros":
		o.Macros = flag
	default:
		return fmt.Errorf("unsupported compiler option `%s`", name)
	}

	return nil
}

// -----------------------------------------------------------------------------

// Manifest is a Rune module manifest as loaded from its TOML file.
type Manifest struct {
	// The name of the module.
	Name string

	// The Rune version the module was written against.
	Version string

	// The compiler options the manifest enables.
	Options Options
}

// tomlManifest represents a Rune module manifest as it is encoded in TOML.
type tomlManifest struct {
	Name    string `toml:"name"`
	Version string `toml:"rune-version"`

	Options struct {
		Macros bool `toml:"macros"`
	} `toml:"options"`
}

// LoadManifest loads and validates a module manifest from the given path.
func LoadManifest(path string) (*Manifest, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read module file at `%s`: %w", path, err)
	}

	tomlMan := &tomlManifest{}
	if err := toml.Unmarshal(buff, tomlMan); err != nil {
		return nil, fmt.Errorf("error parsing module file at `%s`: %w", path, err)
	}

	if tomlMan.Name == "" {
		return nil, fmt.Errorf("module file at `%s` is missing a module name", path)
	}

	if !isValidIdentifier(tomlMan.Name) {
		return nil, fmt.Errorf("module name `%s` must be a valid identifier", tomlMan.Name)
	}

	if tomlMan.Version == "" {
		tomlMan.Version = common.RuneVersion
	}

	return &Manifest{
		Name:    tomlMan.Name,
		Version: tomlMan.Version,
		Options: Options{Macros: tomlMan.Options.Macros},
	}, nil
}

// isValidIdentifier returns whether or not a given string would be a valid
// identifier (module name, item name, etc.).
func isValidIdentifier(idstr string) bool {
	if idstr == "" {
		return false
	}

	if idstr[0] == '_' || ('a' <= idstr[0] && idstr[0] <= 'z') || ('A' <= idstr[0] && idstr[0] <= 'Z') {
		for _, c := range idstr[1:] {
			if c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') {
				continue
			}

			return false
		}

		return true
	}

	return false
}

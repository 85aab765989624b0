package profile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/rcakit/ishikawa/pkg/errors"
)

// LoadTOML reads a profile from a TOML file and validates it. Fields left
// unset in the file default to the detailed profile's values, so a custom
// profile only needs to state what it changes.
func LoadTOML(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "profile file %s", path)
		}
		return Profile{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "read profile file %s", path)
	}

	p := Detailed()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Profile{}, errors.Wrap(errors.ErrCodeInvalidProfile, err, "parse profile file %s", path)
	}
	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

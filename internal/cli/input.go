package cli

import (
	"io"
	"os"

	"github.com/rcakit/ishikawa/pkg/diagram"
	"github.com/rcakit/ishikawa/pkg/errors"
	"github.com/rcakit/ishikawa/pkg/profile"
)

// readInput loads a diagram input payload from path, or from stdin when
// path is "-". The raw bytes are returned alongside the decoded input so
// callers can derive cache keys from exactly what the producer sent.
func readInput(path string) ([]byte, diagram.Input, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, diagram.Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
	} else {
		data, err = os.ReadFile(path)
		if os.IsNotExist(err) {
			return nil, diagram.Input{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file not found: %s", path)
		}
		if err != nil {
			return nil, diagram.Input{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
		}
	}

	in, err := diagram.DecodeBytes(data)
	if err != nil {
		return nil, diagram.Input{}, err
	}
	return data, in, nil
}

// resolveProfile picks the layout profile: an explicit TOML file wins over
// the named builtin.
func resolveProfile(name, file string) (profile.Profile, error) {
	if file != "" {
		return profile.LoadTOML(file)
	}
	return profile.ByName(name)
}

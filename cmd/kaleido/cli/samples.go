package cli

import (
	"io"

	"github.com/flynn/json5"

	"go.skia.org/kaleido/go/skerr"
	"go.skia.org/kaleido/go/util"
)

// Sample is one demonstration expression in a samples config file.
type Sample struct {
	// Name labels the sample in output.
	Name string `json:"name"`

	// Source is the expression text.
	Source string `json:"source"`

	// Eval evaluates the sample after tokenizing it. Leave false for sources
	// that use tokens beyond the expression grammar, e.g. function
	// definitions, which tokenize but do not evaluate.
	Eval bool `json:"eval"`
}

// Samples is the root of a samples config file.
type Samples struct {
	Samples []Sample `json:"samples"`
}

// LoadSamples reads a Samples config from a JSON5 file and validates it.
func LoadSamples(file string) (*Samples, error) {
	var s Samples
	err := util.WithReadFile(file, func(r io.Reader) error {
		return json5.NewDecoder(r).Decode(&s)
	})
	if err != nil {
		return nil, skerr.Wrapf(err, "reading samples from %s", file)
	}
	if len(s.Samples) == 0 {
		return nil, skerr.Fmt("no samples in %s", file)
	}
	for i, smp := range s.Samples {
		if smp.Name == "" || smp.Source == "" {
			return nil, skerr.Fmt("sample %d in %s is missing name or source", i, file)
		}
	}
	return &s, nil
}

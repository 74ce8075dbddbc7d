package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rkeating/reli/internal/ports"
)

// LoadSamples reads measurement values from a text file. Values may be
// separated by whitespace, newlines, or commas; everything after a '#' on a
// line is a comment. Returns ErrInvalidInput when the file holds no values
// or a token fails to parse.
func LoadSamples(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	var samples []float64
	for ln, line := range strings.Split(string(data), "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.ReplaceAll(line, ",", " ")
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad value %q: %w", path, ln+1, tok, ports.ErrInvalidInput)
			}
			samples = append(samples, v)
		}
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%s holds no sample values: %w", path, ports.ErrInvalidInput)
	}
	return samples, nil
}

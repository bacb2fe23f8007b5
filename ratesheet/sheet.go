// SPDX-License-Identifier: MIT

package ratesheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sugawarayuuta/sonnet"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/fxarb/arbitrage"
)

// Sentinel errors for sheet handling.
var (
	// ErrUnknownFormat indicates an encoding other than YAML or JSON.
	ErrUnknownFormat = errors.New("ratesheet: unknown format")

	// ErrEmptySheet indicates a sheet without any rates.
	ErrEmptySheet = errors.New("ratesheet: sheet has no rates")

	// ErrLabelMismatch indicates that the number of currency codes differs
	// from the size of the rate matrix.
	ErrLabelMismatch = errors.New("ratesheet: currency count does not match rates")
)

// Format names a sheet encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Sheet is one exchange-rate matrix with optional currency codes.
type Sheet struct {
	Name       string      `yaml:"name,omitempty" json:"name,omitempty"`
	Currencies []string    `yaml:"currencies,omitempty" json:"currencies,omitempty"`
	Rates      [][]float64 `yaml:"rates" json:"rates"`
}

// Default returns the three-currency USD/EUR/GBP sheet, which contains the
// GBP → EUR → USD → GBP opportunity.
func Default() *Sheet {
	return &Sheet{
		Name:       "majors",
		Currencies: []string{"USD", "EUR", "GBP"},
		Rates: [][]float64{
			{1.0, 0.9, 0.8},
			{1.1, 1.0, 0.7},
			{1.25, 1.4, 1.0},
		},
	}
}

// Size returns the number of currencies in the sheet.
func (s *Sheet) Size() int { return len(s.Rates) }

// Label returns the currency code for index i, or the decimal index when
// the sheet carries no codes.
func (s *Sheet) Label(i int) string {
	if i >= 0 && i < len(s.Currencies) {
		return s.Currencies[i]
	}

	return strconv.Itoa(i)
}

// Labels maps a sequence of indices to currency codes.
func (s *Sheet) Labels(idx []int) []string {
	if idx == nil {
		return nil
	}
	out := make([]string, len(idx))
	for k, i := range idx {
		out[k] = s.Label(i)
	}

	return out
}

// Validate checks the sheet shape and delegates the rate checks to
// arbitrage.Validate, so a valid sheet is always accepted by Detect.
func (s *Sheet) Validate() error {
	n := len(s.Rates)
	if n == 0 {
		return ErrEmptySheet
	}
	if len(s.Currencies) != 0 && len(s.Currencies) != n {
		return fmt.Errorf("%w: %d codes for %d rows", ErrLabelMismatch, len(s.Currencies), n)
	}
	if err := arbitrage.Validate(n, s.Rates); err != nil {
		return fmt.Errorf("ratesheet %q: %w", s.Name, err)
	}

	return nil
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Parse decodes data in format f and validates the result.
func Parse(data []byte, f Format) (*Sheet, error) {
	var s Sheet
	var err error
	switch f {
	case FormatYAML:
		err = yaml.UnmarshalStrict(data, &s)
	case FormatJSON:
		err = sonnet.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("ratesheet: decode %s: %w", f, err)
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load reads, decodes and validates the sheet at path. The format follows
// the file extension. A sheet without a name is named after the file.
func Load(path string) (*Sheet, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ratesheet: read %s: %w", path, err)
	}
	s, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

// Encode serialises the sheet in format f. JSON output is indented.
func (s *Sheet) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatJSON:
		data, err := sonnet.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("ratesheet: encode json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

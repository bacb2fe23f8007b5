package ratesheet_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fxarb/arbitrage"
	"github.com/katalvlaran/fxarb/ratesheet"
)

const majorsYAML = `name: majors
currencies: [USD, EUR, GBP]
rates:
  - [1.0, 0.9, 0.8]
  - [1.1, 1.0, 0.7]
  - [1.25, 1.4, 1.0]
`

const majorsJSON = `{"currencies":["USD","EUR","GBP"],"rates":[[1,0.9,0.8],[1.1,1,0.7],[1.25,1.4,1]]}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_YAMLAndJSONAgree(t *testing.T) {
	t.Parallel()

	y, err := ratesheet.Load(writeFile(t, "majors.yaml", majorsYAML))
	require.NoError(t, err)
	j, err := ratesheet.Load(writeFile(t, "majors.json", majorsJSON))
	require.NoError(t, err)

	assert.Equal(t, ratesheet.Default(), y)
	assert.Equal(t, y.Rates, j.Rates)
	assert.Equal(t, y.Currencies, j.Currencies)
	assert.Equal(t, "majors", j.Name) // named after the file
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	_, err := ratesheet.Load(writeFile(t, "rates.csv", "1,2"))
	assert.ErrorIs(t, err, ratesheet.ErrUnknownFormat)

	_, err = ratesheet.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ratesheet.Load(writeFile(t, "bad.yaml", "rates: [[1, 0], [1, 1]]\n"))
	assert.ErrorIs(t, err, arbitrage.ErrInvalidRate)

	_, err = ratesheet.Load(writeFile(t, "unknown.yaml", "rates: [[1]]\nbogus: 1\n"))
	assert.Error(t, err) // strict decoding rejects unknown keys

	_, err = ratesheet.Load(writeFile(t, "broken.json", "{"))
	assert.Error(t, err)
}

func TestSheet_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sheet   ratesheet.Sheet
		wantErr error
	}{
		{"empty", ratesheet.Sheet{}, ratesheet.ErrEmptySheet},
		{"labels", ratesheet.Sheet{Currencies: []string{"USD"}, Rates: [][]float64{{1, 1}, {1, 1}}}, ratesheet.ErrLabelMismatch},
		{"ragged", ratesheet.Sheet{Rates: [][]float64{{1, 1}, {1}}}, arbitrage.ErrDimensionMismatch},
		{"unlabelled ok", ratesheet.Sheet{Rates: [][]float64{{1, 2}, {0.5, 1}}}, nil},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sheet.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSheet_Labels(t *testing.T) {
	t.Parallel()

	s := ratesheet.Default()
	assert.Equal(t, []string{"GBP", "EUR", "USD", "GBP"}, s.Labels([]int{2, 1, 0, 2}))
	assert.Nil(t, s.Labels(nil))

	bare := &ratesheet.Sheet{Rates: [][]float64{{1, 1}, {1, 1}}}
	assert.Equal(t, "1", bare.Label(1))
	assert.Equal(t, 2, bare.Size())
}

func TestSheet_EncodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []ratesheet.Format{ratesheet.FormatYAML, ratesheet.FormatJSON} {
		data, err := ratesheet.Default().Encode(f)
		require.NoError(t, err)

		back, err := ratesheet.Parse(data, f)
		require.NoError(t, err)
		assert.Equal(t, ratesheet.Default(), back)
	}

	_, err := ratesheet.Default().Encode("toml")
	assert.ErrorIs(t, err, ratesheet.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ratesheet.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, ratesheet.FormatYAML, f)

	f, err = ratesheet.FormatFromPath("/tmp/x.JSON")
	require.NoError(t, err)
	assert.Equal(t, ratesheet.FormatJSON, f)

	_, err = ratesheet.ParseFormat("xml")
	assert.ErrorIs(t, err, ratesheet.ErrUnknownFormat)
}

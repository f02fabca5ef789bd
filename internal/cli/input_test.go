package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlScenario = `
quantity: 100
offers:
  - id: a
    price: 8
    capacity: 30
  - id: b
    price: 9
    moq: 10
    step: 5
    share: 0.8
budget: 1000
`

func TestParseInput(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		format    string
		expected  model.OptimizeInput
		wantErr   bool
		errTarget error
	}{
		{
			name:   "json",
			data:   `{"quantity":100,"offers":[{"id":"a","price":8,"capacity":30},{"id":"b","price":9}]}`,
			format: FormatJSON,
			expected: model.OptimizeInput{
				Quantity: 100,
				Offers: []model.Offer{
					{ID: "a", Price: 8, Capacity: model.Ptr(30)},
					{ID: "b", Price: 9},
				},
			},
		},
		{
			name:   "yaml",
			data:   yamlScenario,
			format: FormatYAML,
			expected: model.OptimizeInput{
				Quantity: 100,
				Offers: []model.Offer{
					{ID: "a", Price: 8, Capacity: model.Ptr(30)},
					{ID: "b", Price: 9, MOQ: 10, Step: 5, Share: model.Ptr(0.8)},
				},
				Budget: model.Ptr(1000),
			},
		},
		{
			name:     "yml alias and empty offers",
			data:     "quantity: 5\noffers: []\n",
			format:   "yml",
			expected: model.OptimizeInput{Quantity: 5, Offers: []model.Offer{}},
		},
		{
			name:      "unsupported format",
			data:      "quantity = 5",
			format:    "toml",
			wantErr:   true,
			errTarget: ErrUnsupportedFormat,
		},
		{
			name:    "malformed json",
			data:    `{"quantity":`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name:    "zero quantity",
			data:    `{"quantity":0,"offers":[]}`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name:    "missing offers",
			data:    "quantity: 10\n",
			format:  FormatYAML,
			wantErr: true,
		},
		{
			name:      "duplicate offer id",
			data:      `{"quantity":10,"offers":[{"id":"a","price":1},{"id":"a","price":2}]}`,
			format:    FormatJSON,
			wantErr:   true,
			errTarget: dto.ErrDuplicateOfferID,
		},
		{
			name:    "negative price",
			data:    `{"quantity":10,"offers":[{"id":"a","price":-1}]}`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name:    "share above one",
			data:    `{"quantity":10,"offers":[{"id":"a","price":1,"share":1.5}]}`,
			format:  FormatJSON,
			wantErr: true,
		},
		{
			name:    "empty offer id",
			data:    `{"quantity":10,"offers":[{"id":"","price":1}]}`,
			format:  FormatJSON,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ParseInput([]byte(tt.data), tt.format)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errTarget != nil {
					assert.ErrorIs(t, err, tt.errTarget)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, input)
		})
	}
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "quote.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlScenario), 0o600))

	t.Run("format from extension", func(t *testing.T) {
		input, err := LoadInput(yamlPath, "")
		require.NoError(t, err)
		assert.Equal(t, float64(100), input.Quantity)
		assert.Len(t, input.Offers, 2)
	})

	t.Run("explicit format wins", func(t *testing.T) {
		_, err := LoadInput(yamlPath, FormatJSON)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadInput(filepath.Join(dir, "missing.json"), "")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/guttosm/quote-optimizer/internal/domain/dto"
	"github.com/guttosm/quote-optimizer/internal/domain/model"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for input files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Input formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// validate applies the same binding rules as the HTTP API.
var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// LoadInput reads and validates an optimization input file. format may be
// empty, in which case it is taken from the file extension.
func LoadInput(path, format string) (model.OptimizeInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.OptimizeInput{}, fmt.Errorf("read input: %w", err)
	}
	if format == "" {
		format = formatFromPath(path)
	}
	return ParseInput(data, format)
}

// ParseInput decodes and validates an optimization input.
func ParseInput(data []byte, format string) (model.OptimizeInput, error) {
	var req dto.OptimizeRequest

	switch strings.ToLower(format) {
	case FormatJSON:
		if err := json.Unmarshal(data, &req); err != nil {
			return model.OptimizeInput{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return model.OptimizeInput{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return model.OptimizeInput{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := validate.Struct(&req); err != nil {
		return model.OptimizeInput{}, fmt.Errorf("invalid input: %w", err)
	}
	if err := req.Validate(); err != nil {
		return model.OptimizeInput{}, fmt.Errorf("invalid input: %w", err)
	}
	return req.ToInput(), nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

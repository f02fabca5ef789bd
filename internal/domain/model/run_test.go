package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizationRun_JSON(t *testing.T) {
	run := OptimizationRun{
		ID:     "run-1",
		Source: SourceHTTP,
		Input: OptimizeInput{
			Quantity: 100,
			Offers:   []Offer{{ID: "a", Price: 8, Share: Ptr(0.3)}, {ID: "b", Price: 9}},
		},
		Result:    OptimizeResult{Allocation: map[string]float64{"a": 30, "b": 70}, Cost: 870, Violations: []string{}},
		Satisfied: true,
		CreatedAt: time.Date(2025, 1, 28, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(run)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	input := raw["input"].(map[string]interface{})
	offers := input["offers"].([]interface{})
	second := offers[1].(map[string]interface{})
	assert.NotContains(t, second, "share")
	assert.NotContains(t, second, "capacity")
	assert.NotContains(t, input, "budget")

	result := raw["result"].(map[string]interface{})
	assert.Equal(t, []interface{}{}, result["violations"])
}

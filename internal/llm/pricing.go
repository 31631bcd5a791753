package llm

import "sort"

// ModelCost is USD pricing per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the USD cost of a request with the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*c.InputPerMTok + float64(outputTokens)*c.OutputPerMTok) / 1_000_000
}

// LookupCost returns pricing for a model id, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// PricedModels returns the model ids with known pricing, sorted.
func PricedModels() []string {
	ids := make([]string, 0, len(modelCosts))
	for id := range modelCosts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// modelCosts covers the default and aliased models only.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5-20251001":   {1, 5},
	"claude-sonnet-4-20250514":    {3, 15},
	"gpt-4o-mini":                 {0.15, 0.6},
	"gpt-4.1-mini":                {0.4, 1.6},
	"gemini-2.0-flash":            {0.1, 0.4},
	"gemini-2.5-pro":              {1.25, 10},
	"google/gemini-2.0-flash-exp": {0, 0},
}

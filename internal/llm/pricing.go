package llm

import "strings"

// ModelCost holds pricing for a model in USD. Text models are priced per
// million tokens; image models per generated picture.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
	PerImage      float64
}

// Cost calculates the USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// Estimate prices an aggregated usage row. Image calls report no tokens, so
// they are costed by count.
func (c ModelCost) Estimate(calls, inputTokens, outputTokens int) float64 {
	return float64(calls)*c.PerImage + c.Cost(inputTokens, outputTokens)
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// OpenRouter IDs ("anthropic/claude-haiku-4-5") fall back to the bare
// model name.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	if _, bare, ok := strings.Cut(modelID, "/"); ok {
		if c, ok := modelCosts[bare]; ok {
			return &c
		}
	}
	return nil
}

// modelCosts covers the text models that can return schema-bound lesson
// JSON and the image models used for illustrations. DALL-E prices are for
// standard quality at 1024x1024.
// Last reviewed: 2026-10-19.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-20241022":  {InputPerMTok: 0.8, OutputPerMTok: 4},
	"claude-3-5-haiku-latest":    {InputPerMTok: 0.8, OutputPerMTok: 4},
	"claude-3-7-sonnet-20250219": {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-3-7-sonnet-latest":   {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-3-haiku-20240307":    {InputPerMTok: 0.25, OutputPerMTok: 1.25},
	"claude-haiku-4-5":           {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-haiku-4-5-20251001":  {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-opus-4-1":            {InputPerMTok: 15, OutputPerMTok: 75},
	"claude-opus-4-1-20250805":   {InputPerMTok: 15, OutputPerMTok: 75},
	"claude-opus-4-5":            {InputPerMTok: 5, OutputPerMTok: 25},
	"claude-opus-4-5-20251101":   {InputPerMTok: 5, OutputPerMTok: 25},
	"claude-opus-4-6":            {InputPerMTok: 5, OutputPerMTok: 25},
	"claude-sonnet-4-0":          {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-20250514":   {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-5":          {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-sonnet-4-5-20250929": {InputPerMTok: 3, OutputPerMTok: 15},

	// OpenAI
	"gpt-4o":            {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-2024-08-06": {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-2024-11-20": {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-mini":       {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"gpt-4.1":           {InputPerMTok: 2, OutputPerMTok: 8},
	"gpt-4.1-mini":      {InputPerMTok: 0.4, OutputPerMTok: 1.6},
	"gpt-4.1-nano":      {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gpt-5":             {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gpt-5-mini":        {InputPerMTok: 0.25, OutputPerMTok: 2},
	"gpt-5-nano":        {InputPerMTok: 0.05, OutputPerMTok: 0.4},
	"gpt-5.1":           {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gpt-5.2":           {InputPerMTok: 1.75, OutputPerMTok: 14},
	"o3":                {InputPerMTok: 2, OutputPerMTok: 8},
	"o3-mini":           {InputPerMTok: 1.1, OutputPerMTok: 4.4},
	"o4-mini":           {InputPerMTok: 1.1, OutputPerMTok: 4.4},
	"dall-e-2":          {PerImage: 0.02},
	"dall-e-3":          {PerImage: 0.04},

	// Google
	"gemini-2.0-flash":              {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.0-flash-lite":         {InputPerMTok: 0.075, OutputPerMTok: 0.3},
	"gemini-2.5-flash":              {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-2.5-flash-lite":         {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-pro":                {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gemini-3-flash-preview":        {InputPerMTok: 0.5, OutputPerMTok: 3},
	"gemini-3-pro-preview":          {InputPerMTok: 2, OutputPerMTok: 12},
	"gemini-flash-latest":           {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-flash-lite-latest":      {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"imagen-3.0-generate-002":       {PerImage: 0.03},
	"imagen-4.0-generate-001":       {PerImage: 0.04},
	"imagen-4.0-fast-generate-001":  {PerImage: 0.02},
	"imagen-4.0-ultra-generate-001": {PerImage: 0.06},
}

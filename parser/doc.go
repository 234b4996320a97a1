// Package parser extracts structured content from LLM responses.
//
// Models wrap structured output in narrative prose, markdown code
// fences, and frequently emit almost-JSON (single quotes, trailing
// commas, unquoted keys). The JSON extraction paths apply a layered
// recovery strategy: candidate extraction from fences and brace spans,
// strict parsing, then automatic repair before failing.
//
//	p := parser.NewParser()
//	data, err := p.ExtractJSON(response)        // map[string]any
//	answer, err := parser.DecodeJSONAs[Answer](p, response)
//
// Extraction stops at shape recovery; validating the decoded value
// against a schema is the caller's concern.
package parser

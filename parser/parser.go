package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"gopkg.in/yaml.v3"
)

// ErrNoJSON is returned when no parseable JSON is found in a response.
var ErrNoJSON = errors.New("no JSON found in response")

// CodeBlock represents a fenced code block.
type CodeBlock struct {
	// Language is the language specifier after the opening fence
	// (e.g. "go", "json"). Empty for bare fences.
	Language string

	// Content is the code inside the block, excluding fences.
	Content string
}

// Parser extracts structured content from LLM responses. Models wrap
// structured output in prose and markdown fences, and frequently emit
// almost-JSON; the JSON paths therefore run a repair pass before
// giving up.
type Parser struct {
	codeBlockRegex *regexp.Regexp
}

// NewParser creates a new response parser.
func NewParser() *Parser {
	return &Parser{
		codeBlockRegex: regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```"),
	}
}

// CodeBlocks finds all fenced code blocks in the response.
func (p *Parser) CodeBlocks(response string) []CodeBlock {
	matches := p.codeBlockRegex.FindAllStringSubmatch(response, -1)
	blocks := make([]CodeBlock, 0, len(matches))
	for _, match := range matches {
		blocks = append(blocks, CodeBlock{
			Language: match[1],
			Content:  match[2],
		})
	}
	return blocks
}

// StripCodeBlocks returns the response with fenced code blocks removed.
func (p *Parser) StripCodeBlocks(response string) string {
	return strings.TrimSpace(p.codeBlockRegex.ReplaceAllString(response, ""))
}

// ExtractJSON extracts and parses the first JSON object found in the
// response. Candidates are tried in order: json-tagged code blocks,
// untagged code blocks, then the first brace-delimited span of the
// raw text. Candidates that fail strict parsing get a repair pass.
// Returns ErrNoJSON when nothing parses.
func (p *Parser) ExtractJSON(response string) (map[string]any, error) {
	for _, candidate := range p.jsonCandidates(response) {
		var data map[string]any
		if err := decodeWithRepair(candidate, &data); err == nil {
			return data, nil
		}
	}
	return nil, ErrNoJSON
}

// ExtractYAML extracts and parses the first YAML document found in a
// yaml-tagged code block.
func (p *Parser) ExtractYAML(response string) (map[string]any, error) {
	for _, block := range p.CodeBlocks(response) {
		if block.Language != "yaml" && block.Language != "yml" {
			continue
		}
		var data map[string]any
		if err := yaml.Unmarshal([]byte(block.Content), &data); err == nil {
			return data, nil
		}
	}
	return nil, errors.New("no YAML found in response")
}

// jsonCandidates returns candidate JSON strings in priority order.
func (p *Parser) jsonCandidates(response string) []string {
	var tagged, untagged []string
	for _, block := range p.CodeBlocks(response) {
		switch block.Language {
		case "json":
			tagged = append(tagged, block.Content)
		case "":
			untagged = append(untagged, block.Content)
		}
	}

	candidates := append(tagged, untagged...)

	// Fall back to the outermost brace-delimited span of the raw text.
	if start := strings.Index(response, "{"); start >= 0 {
		if end := strings.LastIndex(response, "}"); end > start {
			candidates = append(candidates, response[start:end+1])
		}
	}
	return candidates
}

// DecodeJSONAs extracts the first JSON object from the response and
// decodes it into T.
func DecodeJSONAs[T any](p *Parser, response string) (T, error) {
	for _, candidate := range p.jsonCandidates(response) {
		var out T
		if err := decodeWithRepair(candidate, &out); err == nil {
			return out, nil
		}
	}
	var zero T
	return zero, ErrNoJSON
}

// decodeWithRepair tries strict JSON first, then a repaired variant.
func decodeWithRepair(candidate string, v any) error {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(candidate), v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}
	return json.Unmarshal([]byte(repaired), v)
}

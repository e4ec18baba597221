package router

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"rag-assistant/internal/model"
)

var (
	errNoJSONObject = errors.New("no JSON object in response")
	errInvalidJSON  = errors.New("malformed JSON object in response")
)

// extractJSONObject returns the first balanced {...} span of raw. Braces
// inside string literals are ignored.
func extractJSONObject(raw string) (string, error) {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return "", errNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], nil
			}
		}
	}
	return "", errNoJSONObject
}

// parseDecision builds a decision from raw backend output. Missing fields
// take their defaults; only the absence of a well-formed object is an error.
func parseDecision(raw string) (model.RouteDecision, error) {
	span, err := extractJSONObject(raw)
	if err != nil {
		return model.RouteDecision{}, err
	}
	if !gjson.Valid(span) {
		return model.RouteDecision{}, errInvalidJSON
	}

	doc := gjson.Parse(span)

	d := model.RouteDecision{
		Operation:        model.ParseOperation(doc.Get("operation").String()),
		PrimarySource:    normalizeSource(doc.Get("primary_source").String()),
		SecondarySources: []string{},
		Arguments:        map[string]string{},
		Reasoning:        doc.Get("reasoning").String(),
		SearchStrategy:   doc.Get("search_strategy").String(),
		Confidence:       parseConfidence(doc.Get("confidence")),
	}
	if d.PrimarySource == "" {
		d.PrimarySource = model.SourceNotes
	}

	secondary := doc.Get("secondary_sources")
	if secondary.IsArray() {
		for _, s := range secondary.Array() {
			if v := normalizeSource(s.String()); v != "" {
				d.SecondarySources = append(d.SecondarySources, v)
			}
		}
	}

	args := doc.Get("arguments")
	if args.IsObject() {
		args.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.Null {
				d.Arguments[key.String()] = value.String()
			}
			return true
		})
	}

	return d, nil
}

func normalizeSource(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// parseConfidence reads a number or numeric string, defaulting to
// DefaultConfidence, and clamps it to [0, 1].
func parseConfidence(r gjson.Result) float64 {
	c := DefaultConfidence
	switch r.Type {
	case gjson.Number:
		c = r.Float()
	case gjson.String:
		if v, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64); err == nil {
			c = v
		}
	}
	if math.IsNaN(c) {
		return DefaultConfidence
	}
	return math.Max(0, math.Min(1, c))
}

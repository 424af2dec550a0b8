package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Parse extracts and decodes a Plan from raw generator output. Models wrap
// JSON in markdown fences or prepend prose despite instructions, so we locate
// the outermost JSON object instead of decoding the text verbatim.
func Parse(raw string) (*Plan, error) {
	body := extractJSON(raw)
	if body == "" {
		return nil, fmt.Errorf("no JSON object found in generator output")
	}

	dec := json.NewDecoder(strings.NewReader(body))
	var p Plan
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}

	if err := p.checkShape(); err != nil {
		return nil, err
	}
	return &p, nil
}

// extractJSON returns the substring from the first '{' to its matching '}'.
// Content inside string literals is skipped so braces in notes don't confuse
// the depth count.
func extractJSON(raw string) string {
	start := strings.IndexByte(raw, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return raw[start : i+1]
				}
			}
		}
	}
	return ""
}

func (p *Plan) checkShape() error {
	if p.WeekNumber < 1 {
		return fmt.Errorf("plan week_number %d: must be >= 1", p.WeekNumber)
	}
	if len(p.Days) == 0 {
		return fmt.Errorf("plan has no training days")
	}
	for i, d := range p.Days {
		if d.Day < 1 || d.Day > 7 {
			return fmt.Errorf("day %d: day number %d out of range 1-7", i+1, d.Day)
		}
		if len(d.Exercises) == 0 {
			return fmt.Errorf("day %d has no exercises", d.Day)
		}
		for j, ex := range d.Exercises {
			if strings.TrimSpace(ex.Name) == "" {
				return fmt.Errorf("day %d exercise %d: empty name", d.Day, j+1)
			}
		}
	}
	return nil
}

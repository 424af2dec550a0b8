package conflict

import (
	"fmt"
	"strings"
)

// Summary is the UI-facing digest of a conflict check. It is rendered, not
// reprocessed: the pipeline gates on CanProceed alone.
type Summary struct {
	CanProceed bool   `json:"can_proceed"`
	Blocking   int    `json:"blocking"`
	Warnings   int    `json:"warnings"`
	Infos      int    `json:"infos"`
	Text       string `json:"text"`
}

// Summarize produces a human-readable digest with per-severity counts.
func Summarize(conflicts []Conflict) Summary {
	s := Summary{CanProceed: CanProceed(conflicts)}

	for _, c := range conflicts {
		switch c.Severity {
		case SeverityBlocking:
			s.Blocking++
		case SeverityWarning:
			s.Warnings++
		case SeverityInfo:
			s.Infos++
		}
	}

	if len(conflicts) == 0 {
		s.Text = "No conflicts detected. Ready to generate."
		return s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d conflict(s): %d blocking, %d warning(s), %d info.\n",
		len(conflicts), s.Blocking, s.Warnings, s.Infos)
	for _, c := range conflicts {
		fmt.Fprintf(&b, "[%s] %s — %s\n", strings.ToUpper(string(c.Severity)), c.Title, c.Description)
		for _, r := range c.ResolutionOptions {
			fmt.Fprintf(&b, "    option: %s\n", r)
		}
	}
	if s.Blocking > 0 {
		b.WriteString("Generation is blocked until the blocking conflicts are resolved.")
	} else {
		b.WriteString("Generation can proceed; warnings will shape the plan.")
	}
	s.Text = b.String()
	return s
}

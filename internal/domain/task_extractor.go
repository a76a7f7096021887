package domain

import "regexp"

// taskRule is one recognition rule: a pattern and the capture group holding the ID
type taskRule struct {
	name    string
	pattern *regexp.Regexp
	group   int
}

// taskRules are evaluated in order and the first match wins.
// The bracketed form is tried before the bare form so "[ECO-12]" never
// yields a truncated tag; hash-numeric IDs are the last resort.
var taskRules = []taskRule{
	{name: "bracketed", pattern: regexp.MustCompile(`\[([A-Z]+-\d+)\]`), group: 1}, // [ECOLOGY-2994]
	{name: "bare", pattern: regexp.MustCompile(`([A-Z]+-\d+)`), group: 1},          // ECOLOGY-2994
	{name: "hash", pattern: regexp.MustCompile(`#(\d+)`), group: 1},                // #1234
}

// ExtractTaskID returns the task identifier embedded in a commit subject.
// The boolean is false when no rule matches, which means "skip this record".
func ExtractTaskID(subject string) (string, bool) {
	for _, rule := range taskRules {
		m := rule.pattern.FindStringSubmatch(subject)
		if len(m) > rule.group && m[rule.group] != "" {
			return m[rule.group], true
		}
	}
	return "", false
}

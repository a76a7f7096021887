package git

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// validRefChars matches characters accepted in branch arguments.
// Allows: alphanumeric, hyphens, underscores, dots, slashes
var validRefChars = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)

// validateBranchName checks a user-supplied branch before it reaches git.
//
// The rules are stricter than git-check-ref-format: remote-tracking names
// such as origin/release-1.2 pass, but revision expressions (HEAD~2, @{u})
// and shell metacharacters are rejected.
func validateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}

	for _, prefix := range []string{".", "/", "-"} {
		if strings.HasPrefix(name, prefix) {
			return fmt.Errorf("branch name cannot start with '%s'", prefix)
		}
	}
	for _, suffix := range []string{".lock", ".", "/"} {
		if strings.HasSuffix(name, suffix) {
			return fmt.Errorf("branch name cannot end with '%s'", suffix)
		}
	}
	for _, seq := range []string{"..", "//", "@{"} {
		if strings.Contains(name, seq) {
			return fmt.Errorf("branch name cannot contain '%s'", seq)
		}
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("branch name cannot contain control characters")
		}
	}

	if !validRefChars.MatchString(name) {
		return fmt.Errorf("branch name %q contains invalid characters (only alphanumeric, '.', '_', '-', '/' allowed)", name)
	}

	return nil
}

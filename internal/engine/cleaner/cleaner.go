// Package cleaner strips IDE-injected context from user-authored text.
// IDE-integrated agents prefix user turns with active-file/open-tabs
// boilerplate that is noise in a readable transcript.
package cleaner

import (
	"regexp"
	"strings"
)

var (
	reEnvContext   = regexp.MustCompile(`(?is)<environment_context[\s\S]*?</environment_context>\n?`)
	reIDEHeading   = regexp.MustCompile(`(?i)^\s*#\s*Context from my IDE setup:`)
	reActiveFileH2 = regexp.MustCompile(`(?i)^\s*##\s*Active file:\s*`)
	reOpenTabsH2   = regexp.MustCompile(`(?i)^\s*##\s*Open tabs:\s*`)
	reActiveFileLi = regexp.MustCompile(`(?i)^\s*-\s*Active file:\s*`)
	reOpenTabsLi   = regexp.MustCompile(`(?i)^\s*-\s*Open tabs:\s*`)
	reBullet       = regexp.MustCompile(`^\s*-\s+`)
	reBlankRuns    = regexp.MustCompile(`\n{3,}`)
)

// scanState is the line-filter state: either passing lines through, or
// suppressing the bullet list that follows an "Open tabs" marker.
type scanState int

const (
	normal scanState = iota
	skippingBullets
)

// Clean removes environment_context regions (each with its trailing newline,
// so removal leaves no blank seam) and IDE-context headings and bullets from
// text, then collapses runs of 3+ newlines to 2 and trims the ends. Empty
// input is returned unchanged.
func Clean(text string) string {
	if text == "" {
		return text
	}
	text = reEnvContext.ReplaceAllString(text, "")

	var out []string
	state := normal
	for _, line := range strings.Split(text, "\n") {
		switch {
		case reIDEHeading.MatchString(line):
			// Dropped without touching skip state.
		case reActiveFileH2.MatchString(line):
			state = normal
		case reOpenTabsH2.MatchString(line):
			state = skippingBullets
		case reActiveFileLi.MatchString(line):
			// Dropped without touching skip state.
		case reOpenTabsLi.MatchString(line):
			state = skippingBullets
		case state == skippingBullets && reBullet.MatchString(line):
			// Still inside the open-tabs bullet list.
		default:
			// First non-bullet line ends skip mode and is kept.
			state = normal
			out = append(out, line)
		}
	}

	cleaned := strings.Join(out, "\n")
	cleaned = reBlankRuns.ReplaceAllString(cleaned, "\n\n")
	return strings.TrimSpace(cleaned)
}

// Package render turns canonical messages into markdown document lines.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/mossline/scribe/internal/engine/cleaner"
	"github.com/mossline/scribe/internal/model"
)

// Display truncation limits. Truncated output is for readability only and
// must never feed back into processing.
const (
	toolResultLimit = 1000
	objectLimit     = 2000
)

// AppendContent renders a message's content onto lines and returns the
// extended slice. User-role plain text passes through the cleaner before
// emission; empty results produce no lines.
func AppendContent(lines []string, content model.Content, role string) []string {
	switch content.Kind {
	case model.ContentText:
		return appendText(lines, content.Text, role)
	case model.ContentBlocks:
		for _, b := range content.Blocks {
			lines = appendBlock(lines, b, role)
		}
		return lines
	case model.ContentObject:
		return append(lines,
			"```json",
			cut(prettyJSON(content.Object), objectLimit),
			"```",
			"")
	default:
		return lines
	}
}

func appendText(lines []string, text, role string) []string {
	if role == model.RoleUser {
		text = cleaner.Clean(text)
	}
	if text == "" {
		return lines
	}
	return append(lines, text, "")
}

func appendBlock(lines []string, b model.Block, role string) []string {
	switch b.Kind {
	case model.BlockText:
		return appendText(lines, b.Text, role)
	case model.BlockToolUse:
		return append(lines,
			fmt.Sprintf("**Tool Use:** `%s`", b.ToolName),
			"```json",
			prettyJSON(b.ToolInput),
			"```",
			"")
	case model.BlockToolResult:
		lines = append(lines, fmt.Sprintf("**Tool Result:** %s", b.ToolUseID))
		if s, ok := b.Result.(string); ok {
			lines = append(lines, "```", truncate(s, toolResultLimit), "```")
		} else {
			lines = append(lines, "```json", cut(prettyJSON(b.Result), toolResultLimit), "```")
		}
		return append(lines, "")
	case model.BlockRaw:
		return append(lines, b.Text, "")
	default:
		return lines
	}
}

// prettyJSON renders v with two-space indentation, best effort: values that
// survived json.Unmarshal always marshal, so the fallback only covers inputs
// injected through the library API.
func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// truncate limits s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// cut limits s to max runes with no marker — used for rendered JSON, where
// the cut is already visibly mid-structure.
func cut(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

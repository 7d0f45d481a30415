package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mossline/scribe/internal/model"
)

// Title heads every generated document.
const Title = "# Claude/Codex Chat History"

// isoLayouts cover the timestamp encodings seen across agent logs, tried in
// order after normalizing a trailing Z to an explicit offset.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// FormatTime renders an ISO-8601 timestamp as "YYYY-MM-DD HH:MM:SS".
// Absent timestamps render as "Unknown time"; unparsable ones pass through
// raw rather than being hidden.
func FormatTime(ts string) string {
	if ts == "" {
		return "Unknown time"
	}
	norm := ts
	if strings.HasSuffix(norm, "Z") {
		norm = strings.TrimSuffix(norm, "Z") + "+00:00"
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, norm); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}
	return ts
}

// Document walks timestamp-sorted messages and assembles the final markdown
// document: title, a section per contiguous provenance run (with cwd and
// session id from the run's first message), a timestamp/role header per
// message, rendered content, and a total count trailer.
//
// A provenance value may open several sections when its messages interleave
// with another file's timestamps; that is accepted, not deduplicated.
func Document(messages []model.Message) string {
	lines := []string{Title, ""}

	currentFile := ""
	inSection := false
	count := 0

	for _, msg := range messages {
		if !inSection || currentFile != msg.File {
			currentFile = msg.File
			inSection = true
			lines = append(lines, fmt.Sprintf("\n---\n\n## Conversation: %s\n", msg.File))
			if msg.Cwd != "" {
				lines = append(lines, fmt.Sprintf("**Working Directory:** `%s`\n", msg.Cwd))
			}
			if msg.SessionID != "" {
				lines = append(lines, fmt.Sprintf("**Session ID:** `%s`\n", msg.SessionID))
			}
		}

		lines = append(lines, fmt.Sprintf("### [%s] %s\n", FormatTime(msg.Timestamp), strings.ToUpper(msg.Role)))
		lines = AppendContent(lines, msg.Content, msg.Role)
		count++
	}

	lines = append(lines, fmt.Sprintf("\n---\n\n*Total messages: %d*", count))
	return strings.Join(lines, "\n")
}

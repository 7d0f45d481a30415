package model

// Role values a canonical message may carry. Records resolving to anything
// else (system events, tool lifecycle, summaries) are not messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is Scribe's canonical unit — one normalized chat turn.
// Immutable after normalization: consumed once by the sort and once by the
// renderer.
type Message struct {
	Timestamp string // source encoding preserved; "" when absent (sorts first)
	Role      string // RoleUser or RoleAssistant, lower-cased
	Content   Content
	File      string // provenance: originating source name, used for grouping
	MessageID string // informational only, never used for dedup
	Cwd       string // attached to the first message of a file group
	SessionID string
}

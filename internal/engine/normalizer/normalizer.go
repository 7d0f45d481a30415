// Package normalizer reconciles divergent agent-log schemas into canonical
// messages. It is a best-effort reconciler: every field is resolved through
// an ordered chain of typed accessor attempts, and records that cannot be
// classified are dropped rather than rejected with an error.
package normalizer

import (
	"strings"

	"github.com/mossline/scribe/internal/model"
)

// Normalize maps one raw record to a canonical message. The second return
// is false when the record is not a message (system events, tool lifecycle,
// anything whose role does not resolve to user/assistant).
//
// Known shapes: a nested "message" object (Claude Code), a "payload" wrapper
// that may itself nest a "message" (Codex response_item), flat top-level
// fields, and streaming partials under "delta". Malformed intermediate
// shapes degrade to the next precedence tier; Normalize never panics.
func Normalize(rec model.RawRecord, provenance string) (model.Message, bool) {
	payload := rec.Map("payload")
	msg := rec.Map("message")
	if msg == nil && payload != nil {
		msg = payload.Map("message")
	}

	role := resolveRole(rec, msg, payload)
	if role == "" {
		return model.Message{}, false
	}

	return model.Message{
		Timestamp: firstNonEmpty(
			rec.Str("timestamp"),
			payload.Str("timestamp"),
			rec.Str("created_at"),
			rec.Str("time"),
			rec.Str("ts"),
		),
		Role:    role,
		Content: resolveContent(rec, msg, payload),
		File:    provenance,
		MessageID: firstNonEmpty(
			rec.Str("uuid"),
			rec.Str("id"),
		),
		Cwd: firstNonEmpty(
			rec.Str("cwd"),
			payload.Str("cwd"),
			rec.Str("working_directory"),
		),
		SessionID: firstNonEmpty(
			rec.Str("sessionId"),
			payload.Str("sessionId"),
			rec.Str("session_id"),
		),
	}, true
}

// resolveRole walks the role tiers: nested message, payload, then top-level
// role/type/source. Synonym mapping ("assistant_response", "model", etc.)
// applies only to the top-level tier — nested roles are trusted as written.
// Returns the lower-cased canonical role, or "" when the record is not a
// message.
func resolveRole(rec, msg, payload model.RawRecord) string {
	role := msg.Str("role")
	if role == "" {
		role = payload.Str("role")
	}
	if role == "" {
		role = firstNonEmpty(rec.Str("role"), rec.Str("type"), rec.Str("source"))
		role = mapRoleSynonym(role)
	}

	canonical := strings.ToLower(role)
	if canonical != model.RoleUser && canonical != model.RoleAssistant {
		return ""
	}
	return canonical
}

// mapRoleSynonym maps role variants like "assistant_response" to a member of
// the closed role set. Unmappable values pass through unchanged and fail the
// closed-set check in resolveRole.
func mapRoleSynonym(role string) string {
	rl := strings.ToLower(role)
	if rl == model.RoleUser || rl == model.RoleAssistant {
		return role
	}
	if strings.Contains(rl, "assistant") || rl == "model" {
		return model.RoleAssistant
	}
	if strings.Contains(rl, "user") {
		return model.RoleUser
	}
	return role
}

// resolveContent walks the content tiers: message object, payload, top-level
// content/text, then streaming "delta" partials. The first present, non-null
// value wins even when empty. No tier resolving yields empty text.
func resolveContent(rec, msg, payload model.RawRecord) model.Content {
	for _, r := range []model.RawRecord{msg, payload, rec} {
		if v, ok := r.Lookup("content"); ok && v != nil {
			return resolveUnion(v)
		}
	}
	if v, ok := rec.Lookup("text"); ok && v != nil {
		return resolveUnion(v)
	}
	if delta, ok := rec.Lookup("delta"); ok {
		switch d := delta.(type) {
		case map[string]any:
			dm := model.RawRecord(d)
			if v, ok := dm.Lookup("content"); ok && v != nil {
				return resolveUnion(v)
			}
			if v, ok := dm.Lookup("text"); ok && v != nil {
				return resolveUnion(v)
			}
		case string:
			return model.Content{Kind: model.ContentText, Text: d}
		}
	}
	return model.Content{}
}

// resolveUnion maps a raw content value onto the content union. String, list,
// and object are the recognized variants; anything else (numbers, booleans)
// renders as nothing and becomes empty text.
func resolveUnion(v any) model.Content {
	switch c := v.(type) {
	case string:
		return model.Content{Kind: model.ContentText, Text: c}
	case []any:
		return model.Content{Kind: model.ContentBlocks, Blocks: resolveBlocks(c)}
	case map[string]any:
		return model.Content{Kind: model.ContentObject, Object: c}
	default:
		return model.Content{}
	}
}

// resolveBlocks maps list elements onto tagged blocks. Object elements
// dispatch on their "type"; unknown types and non-string scalars are
// silently dropped.
func resolveBlocks(items []any) []model.Block {
	var blocks []model.Block
	for _, item := range items {
		switch el := item.(type) {
		case map[string]any:
			m := model.RawRecord(el)
			switch m.Str("type") {
			case "text", "input_text", "output_text":
				blocks = append(blocks, model.Block{Kind: model.BlockText, Text: m.Str("text")})
			case "tool_use":
				name := "unknown"
				if v, ok := m.Lookup("name"); ok {
					if s, isStr := v.(string); isStr {
						name = s
					}
				}
				input, ok := m.Lookup("input")
				if !ok || input == nil {
					input = map[string]any{}
				}
				blocks = append(blocks, model.Block{Kind: model.BlockToolUse, ToolName: name, ToolInput: input})
			case "tool_result":
				id := "unknown"
				if v, ok := m.Lookup("tool_use_id"); ok {
					if s, isStr := v.(string); isStr {
						id = s
					}
				}
				result, ok := m.Lookup("content")
				if !ok {
					result = ""
				}
				blocks = append(blocks, model.Block{Kind: model.BlockToolResult, ToolUseID: id, Result: result})
			}
		case string:
			blocks = append(blocks, model.Block{Kind: model.BlockRaw, Text: el})
		}
	}
	return blocks
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

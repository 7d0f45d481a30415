package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mossline/scribe/internal/model"
)

func textContent(s string) model.Content {
	return model.Content{Kind: model.ContentText, Text: s}
}

func TestAppendPlainText(t *testing.T) {
	lines := AppendContent(nil, textContent("hello"), model.RoleAssistant)
	assert.Equal(t, []string{"hello", ""}, lines)
}

func TestAppendEmptyTextProducesNothing(t *testing.T) {
	lines := AppendContent(nil, textContent(""), model.RoleAssistant)
	assert.Empty(t, lines)
}

func TestUserTextIsCleaned(t *testing.T) {
	input := "## Open tabs:\n- a.py\n- b.py\nactual question"
	lines := AppendContent(nil, textContent(input), model.RoleUser)
	assert.Equal(t, []string{"actual question", ""}, lines)
}

func TestAssistantTextNotCleaned(t *testing.T) {
	input := "## Open tabs:\n- a.py"
	lines := AppendContent(nil, textContent(input), model.RoleAssistant)
	assert.Equal(t, []string{input, ""}, lines)
}

func TestUserTextCleanedToNothingProducesNothing(t *testing.T) {
	lines := AppendContent(nil, textContent("## Open tabs:\n- a.py"), model.RoleUser)
	assert.Empty(t, lines)
}

func TestToolUseBlock(t *testing.T) {
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockToolUse, ToolName: "bash", ToolInput: map[string]any{"command": "ls"}},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, []string{
		"**Tool Use:** `bash`",
		"```json",
		"{\n  \"command\": \"ls\"\n}",
		"```",
		"",
	}, lines)
}

func TestToolResultStringTruncation(t *testing.T) {
	long := strings.Repeat("x", 1500)
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockToolResult, ToolUseID: "tr-1", Result: long},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	require.Equal(t, 5, len(lines))
	assert.Equal(t, "**Tool Result:** tr-1", lines[0])
	assert.Equal(t, "```", lines[1])
	assert.Equal(t, strings.Repeat("x", 1000)+"...", lines[2])
	assert.Equal(t, "```", lines[3])
	assert.Equal(t, "", lines[4])
}

func TestToolResultShortStringUntouched(t *testing.T) {
	short := strings.Repeat("y", 900)
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockToolResult, ToolUseID: "tr-2", Result: short},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, short, lines[2])
	assert.False(t, strings.HasSuffix(lines[2], "..."))
}

func TestToolResultTruncationIsRuneSafe(t *testing.T) {
	long := strings.Repeat("日本語", 500) // 1500 runes
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockToolResult, ToolUseID: "tr-3", Result: long},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.True(t, utf8.ValidString(lines[2]))
	assert.Equal(t, 1003, utf8.RuneCountInString(lines[2])) // 1000 + "..."
}

func TestToolResultStructuredOutput(t *testing.T) {
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockToolResult, ToolUseID: "tr-4", Result: map[string]any{"ok": true}},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, "```json", lines[1])
	assert.Equal(t, "{\n  \"ok\": true\n}", lines[2])
}

func TestToolResultStructuredTruncatedPostSerialization(t *testing.T) {
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockToolResult, ToolUseID: "tr-5", Result: map[string]any{"data": strings.Repeat("z", 2000)}},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, 1000, utf8.RuneCountInString(lines[2]))
}

func TestRawStringBlock(t *testing.T) {
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockRaw, Text: "verbatim"},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, []string{"verbatim", ""}, lines)
}

func TestBlockOrderPreserved(t *testing.T) {
	content := model.Content{Kind: model.ContentBlocks, Blocks: []model.Block{
		{Kind: model.BlockText, Text: "one"},
		{Kind: model.BlockRaw, Text: "two"},
	}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, []string{"one", "", "two", ""}, lines)
}

func TestObjectContentRendered(t *testing.T) {
	content := model.Content{Kind: model.ContentObject, Object: map[string]any{"k": "v"}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, []string{"```json", "{\n  \"k\": \"v\"\n}", "```", ""}, lines)
}

func TestObjectContentTruncatedTo2000(t *testing.T) {
	content := model.Content{Kind: model.ContentObject, Object: map[string]any{"big": strings.Repeat("a", 5000)}}
	lines := AppendContent(nil, content, model.RoleAssistant)
	assert.Equal(t, 2000, utf8.RuneCountInString(lines[1]))
}

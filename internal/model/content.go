package model

// ContentKind discriminates the content union. Source logs encode content as
// a plain string, a list of typed blocks, or a bare object; the normalizer
// resolves the shape once so the renderer never re-probes raw JSON.
type ContentKind int

const (
	ContentText   ContentKind = iota // plain text, possibly empty
	ContentBlocks                    // ordered block sequence
	ContentObject                    // unstructured object, pretty-printed as-is
)

// Content is the resolved content union of a canonical message.
// The zero value is empty text — content is never "missing".
type Content struct {
	Kind   ContentKind
	Text   string
	Blocks []Block
	Object map[string]any
}

// BlockKind discriminates one element of a block sequence.
type BlockKind int

const (
	BlockText       BlockKind = iota // text / input_text / output_text
	BlockToolUse                     // tool invocation evidence
	BlockToolResult                  // tool output, truncated for display
	BlockRaw                         // bare string element, emitted verbatim
)

// Block is one structured unit inside a message's content sequence.
// Unknown block types are dropped during normalization, not represented.
type Block struct {
	Kind BlockKind

	Text string // BlockText and BlockRaw payload

	ToolName  string // BlockToolUse
	ToolInput any    // BlockToolUse: structured input, {} when absent

	ToolUseID string // BlockToolResult
	Result    any    // BlockToolResult: string or structured output
}

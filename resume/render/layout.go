package render

import (
	"strings"

	"resume-builder/resume/model"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockList
)

// block is a run of paragraph lines or bullet items within a section body.
type block struct {
	Kind  blockKind
	Lines []string
}

// IsList is used by the HTML template.
func (b block) IsList() bool {
	return b.Kind == blockList
}

// sectionBlocks groups body lines: consecutive "- " lines form one list,
// other lines are paragraphs, and blank lines end the current block.
func sectionBlocks(s model.Section) []block {
	var out []block
	var cur *block
	flush := func() {
		if cur != nil && len(cur.Lines) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	for _, raw := range s.Lines() {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			continue
		}
		kind := blockParagraph
		if strings.HasPrefix(line, "- ") {
			kind = blockList
			line = strings.TrimSpace(strings.TrimPrefix(line, "- "))
		}
		if cur == nil || cur.Kind != kind {
			flush()
			cur = &block{Kind: kind}
		}
		cur.Lines = append(cur.Lines, line)
	}
	flush()
	return out
}

package chat

import (
	"strings"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/session"
)

const systemInstructions = `INSTRUCTIONS:
1. You are a Knowledge Base Assistant.
2. Answer the user's question STRICTLY based on the provided documents.
3. Do NOT use outside knowledge or general training data.
4. If the answer cannot be found in the documents, politely state that the information is not present in the files.
5. Cite the document name if possible.`

// BuildPrompt assembles the instruction string sent alongside the document
// handles: the fixed system block, every prior turn as a "ROLE: text" line
// in chronological order, then the newest user message and an empty
// assistant marker. The whole history is resent verbatim each turn; there is
// no truncation or token budgeting.
func BuildPrompt(history []session.Turn, newest string) string {
	var sb strings.Builder
	sb.WriteString(systemInstructions)
	sb.WriteString("\n\n")
	for _, t := range history {
		sb.WriteString(strings.ToUpper(string(t.Role)))
		sb.WriteString(": ")
		sb.WriteString(t.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("\nUSER: ")
	sb.WriteString(newest)
	sb.WriteString("\nASSISTANT:")
	return sb.String()
}

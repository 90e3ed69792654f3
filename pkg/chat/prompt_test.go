package chat

import (
	"strings"
	"testing"

	"github.com/umair-qsols/hazwoper-knowledge-base/pkg/session"
)

func TestBuildPromptFirstTurn(t *testing.T) {
	prompt := BuildPrompt(nil, "What is the total in Section 3?")

	if !strings.HasPrefix(prompt, "INSTRUCTIONS:") {
		t.Fatalf("prompt must start with the system block:\n%s", prompt)
	}
	if !strings.Contains(prompt, "STRICTLY based on the provided documents") {
		t.Fatal("system block missing the grounding constraint")
	}
	if !strings.HasSuffix(prompt, "\nUSER: What is the total in Section 3?\nASSISTANT:") {
		t.Fatalf("prompt must end with the new question and an empty assistant marker:\n%s", prompt)
	}
}

func TestBuildPromptResendsHistoryVerbatim(t *testing.T) {
	history := []session.Turn{
		{Role: session.RoleUser, Text: "What is the total in Section 3?"},
		{Role: session.RoleAssistant, Text: "The total is $4,200 (report.pdf)."},
	}
	prompt := BuildPrompt(history, "And in Section 4?")

	wantPair := "USER: What is the total in Section 3?\nASSISTANT: The total is $4,200 (report.pdf).\n"
	idx := strings.Index(prompt, wantPair)
	if idx < 0 {
		t.Fatalf("prior turns must appear verbatim:\n%s", prompt)
	}
	if newIdx := strings.Index(prompt, "USER: And in Section 4?"); newIdx < idx {
		t.Fatal("prior turns must precede the new question")
	}
}

func TestBuildPromptUppercasesRoles(t *testing.T) {
	history := []session.Turn{{Role: session.RoleUser, Text: "hi"}}
	prompt := BuildPrompt(history, "again")

	if strings.Contains(prompt, "user: hi") {
		t.Fatal("roles must render uppercase")
	}
	if !strings.Contains(prompt, "USER: hi\n") {
		t.Fatalf("missing rendered turn:\n%s", prompt)
	}
}

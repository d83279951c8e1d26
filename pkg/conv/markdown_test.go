package conv

import (
	"strings"
	"testing"
)

func TestMarkdownToTelegramHTML_Bold(t *testing.T) {
	out := MarkdownToTelegramHTML([]byte("**ORDER PLACED!**"))
	if !strings.Contains(out, "<strong>ORDER PLACED!</strong>") {
		t.Errorf("expected bold tag, got %q", out)
	}
}

func TestMarkdownToTelegramHTML_StripsUnsupportedTags(t *testing.T) {
	out := MarkdownToTelegramHTML([]byte("# Menu\n\nitem"))
	if strings.Contains(out, "<h1>") {
		t.Errorf("h1 should be stripped, got %q", out)
	}
	if !strings.Contains(out, "Menu") {
		t.Errorf("text content should survive, got %q", out)
	}
}

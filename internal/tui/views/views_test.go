package views

import (
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/wchat/internal/model"
	"github.com/matheus3301/wchat/internal/status"
	"github.com/matheus3301/wchat/internal/tui/ui"
)

func TestSanitizeForTerminal(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"👍\U0001F3FB", "👍"},
		{"a\u200db", "ab"},
		{"line1\nline2\tx", "line1\nline2\tx"},
		{"\x1b[31mred\x1b[0m", "[31mred[0m"},
		{"bell\a", "bell"},
		{"c1\u009b2J", "c12J"},
	}
	for _, tt := range tests {
		if got := sanitizeForTerminal(tt.in); got != tt.want {
			t.Errorf("sanitizeForTerminal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSingleLine(t *testing.T) {
	if got := singleLine("  Ana\n  Maria\t"); got != "Ana Maria" {
		t.Fatalf("singleLine = %q", got)
	}
}

func TestRenderQR(t *testing.T) {
	out := renderQR("http://127.0.0.1/files/u1/1_a.png")
	if strings.Contains(out, "failed") {
		t.Fatalf("unexpected failure: %s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) < 10 {
		t.Fatalf("expected a multi-line code, got %d lines", len(lines))
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Fatal("expected half-block characters")
	}
}

func TestUnreadBadge(t *testing.T) {
	tests := map[int]string{0: "", -1: "", 3: " 3 ", 99: " 99 ", 100: " 99+ "}
	for n, want := range tests {
		if got := UnreadBadge(n); got != want {
			t.Errorf("UnreadBadge(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestRenderThread(t *testing.T) {
	theme := ui.DefaultTheme()
	readAt := time.Date(2024, 5, 1, 10, 5, 0, 0, time.UTC)
	msgs := []model.Message{
		{ID: "1", UID: "peer", DisplayName: "Bea", RecipientID: "me", Text: "hi [there]", CreatedAt: readAt},
		{ID: "2", UID: "me", DisplayName: "Me", RecipientID: "peer", Text: "yo", CreatedAt: readAt,
			Read: true, ReadAt: &readAt, Status: model.StatusRead},
		{ID: "3", UID: "me", DisplayName: "Me", RecipientID: "peer", CreatedAt: readAt,
			Status: model.StatusSent, IsAttachment: true, FileType: "image/png", FileSize: 2048},
	}

	out := RenderThread(theme, msgs, "me")

	if !strings.Contains(out, "Bea") {
		t.Error("peer name missing")
	}
	if strings.Count(out, "You") != 2 {
		t.Errorf("expected own messages labelled You:\n%s", out)
	}
	if !strings.Contains(out, "✓✓") {
		t.Error("read receipt missing")
	}
	if !strings.Contains(out, "[attachment: image/png, 2.0 kB]") {
		t.Errorf("attachment marker missing:\n%s", out)
	}
	// Brackets in user text are escaped so tview does not treat them as tags.
	if !strings.Contains(out, "hi [there[]") {
		t.Errorf("text not escaped:\n%s", out)
	}
	if strings.Index(out, "hi") > strings.Index(out, "yo") {
		t.Error("messages out of order")
	}
}

func TestLatestAttachment(t *testing.T) {
	msgs := []model.Message{
		{ID: "1", IsAttachment: true, FileURL: "u1"},
		{ID: "2", Text: "x"},
		{ID: "3", IsAttachment: true, FileURL: "u3"},
		{ID: "4", IsAttachment: true},
	}
	m, ok := LatestAttachment(msgs)
	if !ok || m.ID != "3" {
		t.Fatalf("LatestAttachment = %q, %v", m.ID, ok)
	}
	if _, ok := LatestAttachment(msgs[1:2]); ok {
		t.Fatal("expected no attachment")
	}
}

func TestStateLabel(t *testing.T) {
	if got := StateLabel(status.Ready, ""); !strings.Contains(got, "ready") {
		t.Errorf("ready label = %q", got)
	}
	got := StateLabel(status.Degraded, "missing index")
	if !strings.Contains(got, "degraded") || !strings.Contains(got, "(missing index)") {
		t.Errorf("degraded label = %q", got)
	}
}

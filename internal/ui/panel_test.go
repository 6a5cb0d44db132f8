package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		done, total, width int
		want               string
	}{
		{0, 4, 8, "░░░░░░░░   0%"},
		{1, 4, 8, "██░░░░░░  25%"},
		{4, 4, 8, "████████ 100%"},
		{0, 0, 2, "░░░░░   0%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.done, tt.total, tt.width); got != tt.want {
			t.Errorf("ProgressBar(%d, %d, %d) = %q, want %q", tt.done, tt.total, tt.width, got, tt.want)
		}
	}
}

func TestPanel_FramesLinesToWidestLine(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{"ab", "[x] milk"})

	want := strings.Join([]string{
		"+----------+",
		"| ab       |",
		"| [x] milk |",
		"+----------+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("panel:\n%s\nwant:\n%s", got, want)
	}
}

func TestPanel_IgnoresEscapeCodesInWidth(t *testing.T) {
	SetTheme("classic")

	var buf bytes.Buffer
	Panel(&buf, []string{fgGreen + "☑" + reset + " milk", "bread!!!"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "┌──────────┐" {
		t.Fatalf("unexpected top border %q", lines[0])
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("classic")

	if !SetTheme("NEON") {
		t.Fatalf("expected neon to be known")
	}
	if Current().BoxChecked != "◼" {
		t.Fatalf("expected neon symbols, got %q", Current().BoxChecked)
	}
	if SetTheme("sepia") {
		t.Fatalf("expected unknown theme to report false")
	}
	if Current().Name != "classic" {
		t.Fatalf("expected fallback to classic, got %q", Current().Name)
	}
}

func TestC_NoColorForBuffers(t *testing.T) {
	SetColorForcing(false, false)
	var buf bytes.Buffer
	if got := C(&buf, fgRed, "x"); got != "x" {
		t.Fatalf("expected plain text for a non-terminal writer, got %q", got)
	}

	SetColorForcing(true, false)
	defer SetColorForcing(false, false)
	if got := C(&buf, fgRed, "x"); got != fgRed+"x"+reset {
		t.Fatalf("expected forced colour, got %q", got)
	}

	Fail(&buf, "boom")
	if !strings.Contains(buf.String(), "✖ boom") {
		t.Fatalf("unexpected fail output %q", buf.String())
	}
}

package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 0, 'H')
	c.Set(3, 1, 'O')

	out := c.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != " H  " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "   O" {
		t.Errorf("line 1 = %q", lines[1])
	}

	c.Clear()
	if strings.TrimSpace(c.String()) != "" {
		t.Error("canvas not empty after Clear")
	}
}

func TestCanvasOutOfBoundsDropped(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(-1, 0, 'x')
	c.Set(0, 5, 'x')
	c.Set(5, 0, 'x')
	if strings.TrimSpace(c.String()) != "" {
		t.Error("out-of-bounds writes should be dropped")
	}
}

func TestSymbolFallback(t *testing.T) {
	if symbolFor(1) != 'H' || symbolFor(92) != 'U' {
		t.Error("known elements should map to their glyphs")
	}
	if symbolFor(47) != '@' {
		t.Errorf("unknown element glyph = %q", symbolFor(47))
	}
}

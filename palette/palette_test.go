package palette

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBuiltin(t *testing.T) {
	for _, name := range Names() {
		pal, err := Load(name)
		if err != nil {
			t.Errorf("could not load built-in palette %q: %v", name, err)
			continue
		}
		if len(pal) < 2 {
			t.Errorf("built-in palette %q holds only %d characters", name, len(pal))
		}
	}
}

func TestLoadClassicEnds(t *testing.T) {
	pal, err := Load("classic")
	if err != nil {
		t.Fatalf("could not load classic palette: %v", err)
	}
	if pal[0] != '$' {
		t.Errorf("classic palette starts with %q, want '$'", pal[0])
	}
	if pal[len(pal)-1] != ' ' {
		t.Errorf("classic palette ends with %q, want space", pal[len(pal)-1])
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("no-such-ramp"); err == nil {
		t.Error("unknown palette name did not fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.txt")
	if err := os.WriteFile(path, []byte("#+. \n"), 0o644); err != nil {
		t.Fatalf("could not write ramp file: %v", err)
	}

	pal, err := Load(path)
	if err != nil {
		t.Fatalf("could not load ramp file: %v", err)
	}
	if got := string(pal); got != "#+. " {
		t.Errorf("loaded ramp %q, want %q", got, "#+. ")
	}
}

func TestLoadFileTooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ramp.txt")
	if err := os.WriteFile(path, []byte("#\n"), 0o644); err != nil {
		t.Fatalf("could not write ramp file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("single-character ramp did not fail")
	}
}

func TestReversed(t *testing.T) {
	pal := Palette("abc")
	rev := pal.Reversed()
	if got := string(rev); got != "cba" {
		t.Errorf("reversed ramp is %q, want %q", got, "cba")
	}
	// The original stays untouched.
	if got := string(pal); got != "abc" {
		t.Errorf("source ramp changed to %q", got)
	}
}

func TestCharBounds(t *testing.T) {
	pal, err := Load("classic")
	if err != nil {
		t.Fatalf("could not load classic palette: %v", err)
	}

	if c := pal.Char(0); c != pal[0] {
		t.Errorf("luminance 0 maps to %q, want %q", c, pal[0])
	}
	if c := pal.Char(255); c != pal[len(pal)-1] {
		t.Errorf("luminance 255 maps to %q, want %q", c, pal[len(pal)-1])
	}
}

func TestCharMonotonic(t *testing.T) {
	for _, name := range Names() {
		pal, err := Load(name)
		if err != nil {
			t.Fatalf("could not load palette %q: %v", name, err)
		}

		prev := -1
		for lum := 0; lum <= 255; lum++ {
			idx := lum * (len(pal) - 1) / 255
			if pal.Char(uint8(lum)) != pal[idx] {
				t.Fatalf("palette %q luminance %d maps off its index", name, lum)
			}
			if idx < prev {
				t.Fatalf("palette %q index decreased at luminance %d", name, lum)
			}
			prev = idx
		}
	}
}

package funge

import "testing"

func TestNewFieldAllSpaces(t *testing.T) {
	f := NewField(80, 25)

	for y := 0; y < 25; y++ {
		for x := 0; x < 80; x++ {
			v, ok := f.Get(x, y)
			if !ok {
				t.Fatalf("(%d,%d) absent, want present", x, y)
			}
			if v != OpNoOp {
				t.Fatalf("(%d,%d) = %d, want space", x, y, v)
			}
		}
	}
}

func TestGetOutOfBoundsIsAbsent(t *testing.T) {
	f := NewField(3, 2)

	for _, c := range [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}, {100, 100}} {
		if _, ok := f.Get(c[0], c[1]); ok {
			t.Errorf("(%d,%d) present, want absent", c[0], c[1])
		}
	}
}

func TestSetOutOfBoundsIsIgnored(t *testing.T) {
	f := NewField(2, 2)

	f.Set(2, 0, 'x')
	f.Set(0, 2, 'x')
	f.Set(-1, -1, 'x')

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if v, _ := f.Get(x, y); v != OpNoOp {
				t.Errorf("(%d,%d) = %d, want space after OOB writes", x, y, v)
			}
		}
	}
}

func TestSetInBounds(t *testing.T) {
	f := NewField(2, 2)

	f.Set(1, 1, '@')
	if v, ok := f.Get(1, 1); !ok || v != '@' {
		t.Errorf("(1,1) = %d (present=%v), want '@'", v, ok)
	}
}

func TestLoadTruncates(t *testing.T) {
	// Long lines lose their tail, extra rows are dropped entirely.
	f := FieldFromString("012\n01\n01", 2, 2)

	if got := f.Row(0); got != "01" {
		t.Errorf("row 0 = %q, want %q", got, "01")
	}
	if got := f.Row(1); got != "01" {
		t.Errorf("row 1 = %q, want %q", got, "01")
	}
	if _, ok := f.Get(2, 0); ok {
		t.Error("(2,0) present, want absent")
	}
	if _, ok := f.Get(0, 2); ok {
		t.Error("(0,2) present, want absent")
	}
}

func TestLoadShortLineLeavesSpaces(t *testing.T) {
	f := FieldFromString("ab", 4, 2)

	if got := f.Row(0); got != "ab  " {
		t.Errorf("row 0 = %q, want %q", got, "ab  ")
	}
	if got := f.Row(1); got != "    " {
		t.Errorf("row 1 = %q, want all spaces", got)
	}
}

func TestLoadWideRuneEndsLine(t *testing.T) {
	// A rune wider than one byte ends that line's copy; the following
	// line still loads.
	f := FieldFromString("aébc\nxy", 4, 2)

	if got := f.Row(0); got != "a   " {
		t.Errorf("row 0 = %q, want copy cut at the wide rune", got)
	}
	if got := f.Row(1); got != "xy  " {
		t.Errorf("row 1 = %q, want %q", got, "xy  ")
	}
}

func TestLoadStripsCarriageReturn(t *testing.T) {
	f := FieldFromString("ab\r\ncd", 2, 2)

	if got := f.Row(0); got != "ab" {
		t.Errorf("row 0 = %q, want %q", got, "ab")
	}
	if got := f.Row(1); got != "cd" {
		t.Errorf("row 1 = %q, want %q", got, "cd")
	}
}

func TestRowOutOfBounds(t *testing.T) {
	f := NewField(2, 2)
	if got := f.Row(5); got != "" {
		t.Errorf("row 5 = %q, want empty", got)
	}
}

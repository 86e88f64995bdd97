package chess

import "testing"

func TestSquareLabels(t *testing.T) {
	tests := []struct {
		row, col int
		label    string
	}{
		{0, 0, "a8"},
		{0, 7, "h8"},
		{7, 0, "a1"},
		{7, 7, "h1"},
		{4, 4, "e4"},
		{6, 4, "e2"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := Sq(tt.row, tt.col).Label(); got != tt.label {
				t.Errorf("Sq(%d, %d).Label() = %q; want %q", tt.row, tt.col, got, tt.label)
			}
		})
	}
}

func TestSquareRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := Sq(row, col)
			got, ok := ParseSquare(sq.Label())
			if !ok || got != sq {
				t.Errorf("ParseSquare(%q) = %v, %v; want %v", sq.Label(), got, ok, sq)
			}
			if file, rank := sq.File(), sq.RankChar(); FromFileRank(file, rank) != sq {
				t.Errorf("FromFileRank(%c, %c) != %v", file, rank, sq)
			}
		}
	}
}

func TestParseSquareRejects(t *testing.T) {
	for _, label := range []string{"", "e", "e9", "i1", "E4", "e44", "4e"} {
		if _, ok := ParseSquare(label); ok {
			t.Errorf("ParseSquare(%q) ok = true; want false", label)
		}
	}
}

func TestSquareLight(t *testing.T) {
	tests := []struct {
		label string
		light bool
	}{
		{"a8", true},
		{"b8", false},
		{"a1", false},
		{"h1", true},
		{"d4", false},
		{"e4", true},
	}
	for _, tt := range tests {
		if got := MustSquare(tt.label).Light(); got != tt.light {
			t.Errorf("%s.Light() = %v; want %v", tt.label, got, tt.light)
		}
	}
}

func TestSquareCompare(t *testing.T) {
	tests := []struct {
		a, b Square
		want int
	}{
		{Sq(0, 0), Sq(0, 0), 0},
		{Sq(0, 1), Sq(0, 0), 1},
		{Sq(0, 7), Sq(1, 0), -1},
		{Sq(3, 3), Sq(2, 5), 1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d; want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSquareArithmetic(t *testing.T) {
	e2 := MustSquare("e2")
	if got := e2.Add(-2, 0); got != MustSquare("e4") {
		t.Errorf("e2.Add(-2, 0) = %v; want e4", got)
	}
	rows, cols := MustSquare("g1").Diff(e2)
	if rows != 1 || cols != 2 {
		t.Errorf("g1.Diff(e2) = (%d, %d); want (1, 2)", rows, cols)
	}
	if Sq(-1, 3).Valid() {
		t.Error("Sq(-1, 3).Valid() = true")
	}
}

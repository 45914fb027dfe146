package num

import (
	"testing"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		A, B int64
		Want int64
	}{
		{A: 7, B: 2, Want: 3},
		{A: -7, B: 2, Want: -4},
		{A: -4, B: 2, Want: -2},
		{A: 7, B: -2, Want: -4},
		{A: 0, B: 5, Want: 0},
	}
	for _, c := range tests {
		if got := FloorDiv(c.A, c.B); got != c.Want {
			t.Errorf("%d / %d: want %d - got %d", c.A, c.B, c.Want, got)
		}
	}
}

func TestMod(t *testing.T) {
	tests := []struct {
		A, B int64
		Want int64
	}{
		{A: 7, B: 2, Want: 1},
		{A: -7, B: 2, Want: 1},
		{A: -4, B: 2, Want: 0},
		{A: 7, B: -2, Want: -1},
		{A: -1, B: 7, Want: 6},
	}
	for _, c := range tests {
		if got := Mod(c.A, c.B); got != c.Want {
			t.Errorf("%d %% %d: want %d - got %d", c.A, c.B, c.Want, got)
		}
	}
}

package core

import "testing"

func TestToCell(t *testing.T) {
	tests := []struct {
		name       string
		v          Vec
		cols, rows int
		wantX      int
		wantY      int
	}{
		{"origin", Vec{0, 0}, 80, 24, 0, 0},
		{"center", Vec{PlayWidth / 2, PlayHeight / 2}, 80, 24, 40, 12},
		{"bottom-right edge", Vec{PlayWidth, PlayHeight}, 80, 24, 80, 24},
		{"above the top", Vec{640, -150}, 80, 24, 40, -5},
		{"left of screen", Vec{-20.4, 0}, 80, 24, -2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := ToCell(tc.v, tc.cols, tc.rows)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tc.v, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestVecDelta(t *testing.T) {
	a := Vec{X: 500, Y: 300}
	b := Vec{X: 490, Y: 250}

	dx, dy := a.Delta(b)
	if dx != 10 || dy != 50 {
		t.Errorf("Delta() = (%v, %v), expected (10, 50)", dx, dy)
	}
	dx2, dy2 := b.Delta(a)
	if dx2 != dx || dy2 != dy {
		t.Error("Delta() should be symmetric")
	}

	if got := a.Add(Vec{X: -3, Y: 20}); got != (Vec{X: 497, Y: 320}) {
		t.Errorf("Add() = %v, expected {497 320}", got)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestInputFrame(t *testing.T) {
	in := NewInputFrame(ActionMoveLeft, ActionFire)

	if !in.MoveLeft() || in.MoveRight() || !in.FirePressed() {
		t.Errorf("unexpected intents: left=%v right=%v fire=%v", in.MoveLeft(), in.MoveRight(), in.FirePressed())
	}

	in.Clear()
	if in.Has(ActionMoveLeft) || in.Has(ActionFire) {
		t.Error("Clear() should reset all actions")
	}

	var zero InputFrame
	if zero.Has(ActionFire) {
		t.Error("zero InputFrame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set() on zero InputFrame should allocate")
	}
}

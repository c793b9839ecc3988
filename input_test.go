package pix

import (
	"image"
	"testing"
)

func TestInputState_KeyQueries(t *testing.T) {
	in := &InputState{
		Keys: []KeyEvent{
			{Name: "A", Pressed: true},
			{Name: "B", Pressed: false},
			{Name: "C", Pressed: true, Repeat: true},
		},
	}

	if !in.KeyPressed("A") {
		t.Error("KeyPressed(A) = false, want true")
	}
	if in.KeyPressed("B") {
		t.Error("KeyPressed(B) = true for a release edge")
	}
	if !in.KeyReleased("B") {
		t.Error("KeyReleased(B) = false, want true")
	}
	if !in.KeyPressed("C") {
		t.Error("KeyPressed(C) = false, repeats should count as presses")
	}
	if in.KeyPressed("Escape") {
		t.Error("KeyPressed(Escape) = true for absent key")
	}
}

func TestInputState_Clicked(t *testing.T) {
	ev := ClickEvent{
		Button: MouseLeft,
		Window: Pt(100, 50),
		Pixel:  image.Pt(10, 5),
		Inside: true,
	}
	in := &InputState{Clicks: []ClickEvent{ev}}

	got, ok := in.Clicked(MouseLeft)
	if !ok {
		t.Fatal("Clicked(MouseLeft) = false, want true")
	}
	if got != ev {
		t.Errorf("Clicked(MouseLeft) = %+v, want %+v", got, ev)
	}

	if _, ok := in.Clicked(MouseRight); ok {
		t.Error("Clicked(MouseRight) = true, want false")
	}
}

func TestMouseButton_String(t *testing.T) {
	tests := []struct {
		b    MouseButton
		want string
	}{
		{MouseLeft, "left"},
		{MouseRight, "right"},
		{MouseMiddle, "middle"},
		{MouseButton(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("MouseButton(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

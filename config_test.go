package gesture

import (
	"errors"
	"testing"
)

func TestDirectionAllows(t *testing.T) {
	tests := []struct {
		name string
		mask Direction
		d    Direction
		want bool
	}{
		{"all allows left", DirectionAll, DirectionLeft, true},
		{"all rejects none", DirectionAll, DirectionNone, false},
		{"horizontal allows right", DirectionHorizontal, DirectionRight, true},
		{"horizontal rejects up", DirectionHorizontal, DirectionUp, false},
		{"vertical allows down", DirectionVertical, DirectionDown, true},
		{"vertical rejects left", DirectionVertical, DirectionLeft, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.Allows(tt.d); got != tt.want {
				t.Errorf("%v.Allows(%v) = %v, want %v", tt.mask, tt.d, got, tt.want)
			}
		})
	}
}

func TestDirectionBits(t *testing.T) {
	if DirectionNone != 1 || DirectionLeft != 2 || DirectionRight != 4 || DirectionUp != 8 || DirectionDown != 16 {
		t.Error("direction bit values changed")
	}
	if DirectionAll != 30 {
		t.Errorf("DirectionAll = %d, want 30", DirectionAll)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"all", DirectionAll},
		{"", DirectionAll},
		{"horizontal", DirectionHorizontal},
		{"Vertical", DirectionVertical},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	_, err := ParseDirection("diagonal")
	if !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
}

func TestDirectionString(t *testing.T) {
	if DirectionUp.String() != "up" || DirectionAll.String() != "all" {
		t.Error("unexpected names")
	}
	if got := (DirectionLeft | DirectionUp).String(); got != "Direction(0xa)" {
		t.Errorf("mixed mask = %q", got)
	}
}

func TestScrollHint(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		want   ScrollHint
		action string
	}{
		{"default claims both axes", Config{}, ScrollHint{}, "none"},
		{"pinch claims both axes", Config{EnablePinch: true, Direction: DirectionVertical}, ScrollHint{}, "none"},
		{"rotate claims both axes", Config{EnableRotate: true, Direction: DirectionHorizontal}, ScrollHint{}, "none"},
		{"vertical leaves horizontal", Config{Direction: DirectionVertical}, ScrollHint{Horizontal: true}, "pan-x"},
		{"horizontal leaves vertical", Config{Direction: DirectionHorizontal}, ScrollHint{Vertical: true}, "pan-y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.ScrollHint()
			if got != tt.want {
				t.Errorf("ScrollHint() = %+v, want %+v", got, tt.want)
			}
			if a := got.TouchAction(); a != tt.action {
				t.Errorf("TouchAction() = %q, want %q", a, tt.action)
			}
		})
	}

	if got := (ScrollHint{Horizontal: true, Vertical: true}).TouchAction(); got != "auto" {
		t.Errorf("both axes free: %q, want auto", got)
	}
}

package math

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 2, 8); got != 5 {
		t.Errorf("Clamp(5,2,8) = %d", got)
	}
	if got := Clamp(1, 2, 8); got != 2 {
		t.Errorf("Clamp(1,2,8) = %d", got)
	}
	if got := Clamp(9, 2, 8); got != 8 {
		t.Errorf("Clamp(9,2,8) = %d", got)
	}
	if got := Clamp(float32(0.5), 0.0, 1.0); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %v", got)
	}
}

func TestMinMax3(t *testing.T) {
	a := NewVec3(1, -2, 3)
	b := NewVec3(-1, 2, 3)
	if got := Min3(a, b); got != NewVec3(-1, -2, 3) {
		t.Errorf("Min3 = %v", got)
	}
	if got := Max3(a, b); got != NewVec3(1, 2, 3) {
		t.Errorf("Max3 = %v", got)
	}
}

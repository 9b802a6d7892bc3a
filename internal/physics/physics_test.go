package physics

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func TestOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [4]float64
		expected bool
	}{
		{"separate_horizontal", [4]float64{0, 0, 10, 10}, [4]float64{20, 0, 10, 10}, false},
		{"separate_vertical", [4]float64{0, 0, 10, 10}, [4]float64{0, 11, 10, 10}, false},
		{"touching_edges", [4]float64{0, 0, 10, 10}, [4]float64{10, 0, 10, 10}, true},
		{"overlapping", [4]float64{0, 0, 10, 10}, [4]float64{5, 5, 10, 10}, true},
		{"contained", [4]float64{0, 0, 50, 50}, [4]float64{10, 10, 2, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlap(tt.a[0], tt.a[1], tt.a[2], tt.a[3], tt.b[0], tt.b[1], tt.b[2], tt.b[3])
			if got != tt.expected {
				t.Errorf("Overlap() = %v, expected %v", got, tt.expected)
			}
			// Overlap is symmetric
			rev := Overlap(tt.b[0], tt.b[1], tt.b[2], tt.b[3], tt.a[0], tt.a[1], tt.a[2], tt.a[3])
			if rev != got {
				t.Errorf("Overlap() not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestRotatePoint(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Vector
	}{
		{"zero", 0, Vector{X: 150, Y: 0}},
		{"quarter", 90, Vector{X: 0, Y: 150}},
		{"half", 180, Vector{X: -150, Y: 0}},
		{"negative_quarter", -90, Vector{X: 0, Y: -150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotatePoint(150, 0, 0, 0, tt.angle)
			if math.Abs(got.X-tt.want.X) > epsilon || math.Abs(got.Y-tt.want.Y) > epsilon {
				t.Errorf("RotatePoint() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRotatePointAroundPivot(t *testing.T) {
	got := RotatePoint(20, 10, 10, 10, 90)
	if math.Abs(got.X-10) > epsilon || math.Abs(got.Y-20) > epsilon {
		t.Errorf("RotatePoint() around pivot = %+v, want {10 20}", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"same_point", 5, 5, 5, 5, 0},
		{"horizontal", 0, 0, 7, 0, 7},
		{"pythagorean", 0, 0, 3, 4, 5},
		{"negative_coords", -1, -1, 2, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
			if got := Distance(tt.x2, tt.y2, tt.x1, tt.y1); math.Abs(got-tt.want) > epsilon {
				t.Errorf("Distance() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRandomRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		if v := Random(r, 4); v < 0 || v >= 4 {
			t.Fatalf("Random() = %v, outside [0,4)", v)
		}
		if v := RandomRange(r, -20, 20); v < -20 || v >= 20 {
			t.Fatalf("RandomRange() = %v, outside [-20,20)", v)
		}
	}
}

func TestVector(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	if got := v.Add(Vector{X: 1, Y: 1}); got != (Vector{X: 4, Y: 5}) {
		t.Errorf("Add() = %+v", got)
	}
	if got := v.Sub(Vector{X: 1, Y: 1}); got != (Vector{X: 2, Y: 3}) {
		t.Errorf("Sub() = %+v", got)
	}
	if got := v.Scale(2); got != (Vector{X: 6, Y: 8}) {
		t.Errorf("Scale() = %+v", got)
	}
}

// Package physics provides vector math, overlap tests and random helpers.
package physics

import "math"

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlap checks if two axis-aligned boxes intersect.
// Boxes are given by their top-left corner and size. Touching edges count as overlap.
func Overlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return !(ay+ah < by || ay > by+bh || ax+aw < bx || ax > bx+bw)
}

// RotatePoint rotates (x, y) around (pivotX, pivotY) by angle degrees.
// Positive angles turn clockwise on a y-down screen.
func RotatePoint(x, y, pivotX, pivotY, angle float64) Vector {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)

	tx := x - pivotX
	ty := y - pivotY

	return Vector{
		X: tx*cos - ty*sin + pivotX,
		Y: tx*sin + ty*cos + pivotY,
	}
}

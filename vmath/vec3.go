package vmath

import (
	"math"
)

// Vec3 is a 3D vector in Q32.32 fixed-point
type Vec3 struct {
	X, Y, Z int64
}

// V3 builds a Vec3 from float components
func V3(x, y, z float64) Vec3 {
	return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

func V3Dot(a, b Vec3) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

func V3MagSq(v Vec3) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y) + Mul(v.Z, v.Z)
}

func V3Mag(v Vec3) int64 {
	fx, fy, fz := ToFloat(v.X), ToFloat(v.Y), ToFloat(v.Z)
	return FromFloat(math.Sqrt(fx*fx + fy*fy + fz*fz))
}

// V3Normalize returns the unit vector along v, or zero for a zero vector
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1 / ToFloat(mag)
	return Vec3{
		X: int64(float64(v.X) * inv),
		Y: int64(float64(v.Y) * inv),
		Z: int64(float64(v.Z) * inv),
	}
}

// V3RotateY rotates v around the Y axis by angle (turns)
func V3RotateY(v Vec3, angle int64) Vec3 {
	s, c := Sin(angle), Cos(angle)
	return Vec3{
		X: Mul(v.X, c) + Mul(v.Z, s),
		Y: v.Y,
		Z: Mul(v.Z, c) - Mul(v.X, s),
	}
}

// V3RotateX rotates v around the X axis by angle (turns)
func V3RotateX(v Vec3, angle int64) Vec3 {
	s, c := Sin(angle), Cos(angle)
	return Vec3{
		X: v.X,
		Y: Mul(v.Y, c) - Mul(v.Z, s),
		Z: Mul(v.Y, s) + Mul(v.Z, c),
	}
}

// V3RotateZ rotates v around the Z axis by angle (turns)
func V3RotateZ(v Vec3, angle int64) Vec3 {
	s, c := Sin(angle), Cos(angle)
	return Vec3{
		X: Mul(v.X, c) - Mul(v.Y, s),
		Y: Mul(v.X, s) + Mul(v.Y, c),
		Z: v.Z,
	}
}

// V3Floats returns the float components for projection paths
func V3Floats(v Vec3) (x, y, z float64) {
	return ToFloat(v.X), ToFloat(v.Y), ToFloat(v.Z)
}

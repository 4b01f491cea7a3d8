// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{float32(pt.X) / 64, float32(pt.Y) / 64}
}

// Vector2Polar returns a new [Vector2] from the given polar
// coordinates: the angle in radians and the magnitude.
func Vector2Polar(angle, magnitude float32) Vector2 {
	sin, cos := Sincos(angle)
	return Vector2{magnitude * cos, magnitude * sin}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// SetFromVector2i sets from a [Vector2i] (int32) vector.
func (v *Vector2) SetFromVector2i(vi Vector2i) {
	v.X = float32(vi.X)
	v.Y = float32(vi.Y)
}

// SetZero sets all of the vector's components to zero.
func (v *Vector2) SetZero() {
	v.SetScalar(0)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// ToPoint returns this vector as an [image.Point], using direct casting.
func (v Vector2) ToPoint() image.Point {
	return image.Point{int(v.X), int(v.Y)}
}

// ToFixed returns this vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(v.X * 64), Y: fixed.Int26_6(v.Y * 64)}
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// AddScalar adds the given scalar to each component of this vector
// and returns the result as a new vector.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vector2{v.X + scalar, v.Y + scalar}
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// SubScalar subtracts the given scalar from each component of this vector
// and returns the result as a new vector.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vector2{v.X - scalar, v.Y - scalar}
}

// Mul multiplies each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vector2{v.X * scalar, v.Y * scalar}
}

// Div divides each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vector2{v.X / other.X, v.Y / other.Y}
}

// DivScalar divides each component of this vector by the given scalar
// and returns the result as a new vector.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar != 0 {
		return v.MulScalar(1 / scalar)
	}
	return Vector2{}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector2) Abs() Vector2 {
	return Vector2{Abs(v.X), Abs(v.Y)}
}

// Min returns a vector with the minimum of each of this vector's and
// the other given vector's components.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vector2{Min(v.X, other.X), Min(v.Y, other.Y)}
}

// Max returns a vector with the maximum of each of this vector's and
// the other given vector's components.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vector2{Max(v.X, other.X), Max(v.Y, other.Y)}
}

// Floor returns the vector with [Floor] applied to each component.
func (v Vector2) Floor() Vector2 {
	return Vector2{Floor(v.X), Floor(v.Y)}
}

// Ceil returns the vector with [Ceil] applied to each component.
func (v Vector2) Ceil() Vector2 {
	return Vector2{Ceil(v.X), Ceil(v.Y)}
}

// Round returns the vector with [Round] applied to each component.
func (v Vector2) Round() Vector2 {
	return Vector2{Round(v.X), Round(v.Y)}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the 2D cross product (the z component of the 3D cross
// product) of this vector with the other given vector.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Normal returns this vector divided by its length (its unit vector).
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance between these two vectors as points.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance between these two
// vectors as points.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Lerp returns the vector that is the linear interpolation between
// this vector and the other given vector, in the given proportion.
func (v Vector2) Lerp(other Vector2, alpha float32) Vector2 {
	return Vector2{v.X + (other.X-v.X)*alpha, v.Y + (other.Y-v.Y)*alpha}
}

// Angle returns the angle in radians of this vector relative to the
// positive X axis, via [Atan2].
func (v Vector2) Angle() float32 {
	return Atan2(v.Y, v.X)
}

// Rot returns the vector rotated by the given angle in radians.
func (v Vector2) Rot(angle float32) Vector2 {
	sin, cos := Sincos(angle)
	return Vector2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Rot90CW returns the vector rotated by 90 degrees clockwise.
func (v Vector2) Rot90CW() Vector2 {
	return Vector2{v.Y, -v.X}
}

// Rot90CCW returns the vector rotated by 90 degrees counter clockwise.
func (v Vector2) Rot90CCW() Vector2 {
	return Vector2{-v.Y, v.X}
}

// Vector2i is a 2D vector/point with int32 X and Y components.
type Vector2i struct {
	X int32
	Y int32
}

// Vec2i returns a new [Vector2i] with the given x and y components.
func Vec2i(x, y int32) Vector2i {
	return Vector2i{x, y}
}

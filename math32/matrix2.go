// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strings"

	"github.com/Roger5006/Agent-to-Generate-Inkscape-Graphics/base/errors"
)

// Matrix2 is a 3x2 affine transformation matrix for 2D points,
// with the implicit third row being 0, 0, 1. It transforms a
// point (x, y) to: XX*x + XY*y + X0, YX*x + YY*y + Y0.
// It is the Go equivalent of an SVG matrix(a b c d e f) transform,
// with a = XX, b = YX, c = XY, d = YY, e = X0, f = Y0.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{1, 0, 0, 1, 0, 0}
}

// IsIdentity returns whether the matrix is the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Translate2D returns a new [Matrix2] that translates by the given
// x and y offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a new [Matrix2] that scales by the given x and y factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a new [Matrix2] that rotates by the given angle
// in radians, counter clockwise in standard coordinates.
func Rotate2D(angle float32) Matrix2 {
	sin, cos := Sincos(angle)
	return Matrix2{cos, sin, -sin, cos, 0, 0}
}

// Shear2D returns a new [Matrix2] that shears by the given x and y factors.
func Shear2D(x, y float32) Matrix2 {
	return Matrix2{1, y, x, 1, 0, 0}
}

// Skew2D returns a new [Matrix2] that skews by the given x and y
// angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Shear2D(Tan(x), Tan(y))
}

// Mul returns this matrix composed with the other given matrix,
// such that the resulting matrix applies the other matrix first:
// m.Mul(n).MulVector2AsPoint(v) == m.MulVector2AsPoint(n.MulVector2AsPoint(v)).
func (m Matrix2) Mul(n Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*n.XX + m.XY*n.YX,
		YX: m.YX*n.XX + m.YY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		YY: m.YX*n.XY + m.YY*n.YY,
		X0: m.XX*n.X0 + m.XY*n.Y0 + m.X0,
		Y0: m.YX*n.X0 + m.YY*n.Y0 + m.Y0,
	}
}

// SetMul sets this matrix to itself composed with the other
// given matrix: a = a * b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// Translate returns this matrix with a translation by (x, y) applied first.
func (m Matrix2) Translate(x, y float32) Matrix2 {
	return m.Mul(Translate2D(x, y))
}

// Scale returns this matrix with a scaling by (x, y) applied first.
func (m Matrix2) Scale(x, y float32) Matrix2 {
	return m.Mul(Scale2D(x, y))
}

// Rotate returns this matrix with a rotation by the given angle
// in radians applied first.
func (m Matrix2) Rotate(angle float32) Matrix2 {
	return m.Mul(Rotate2D(angle))
}

// MulVector2AsPoint returns the given point vector transformed by
// this matrix, including the translation terms.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vector2{m.XX*v.X + m.XY*v.Y + m.X0, m.YX*v.X + m.YY*v.Y + m.Y0}
}

// MulVector2AsVector returns the given direction vector transformed by
// this matrix, excluding the translation terms.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vector2{m.XX*v.X + m.XY*v.Y, m.YX*v.X + m.YY*v.Y}
}

// Det returns the determinant of the matrix.
func (m Matrix2) Det() float32 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of the matrix, so that
// m.Mul(m.Inverse()) is the identity. A singular matrix
// returns the identity.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Det()
	if det == 0 {
		return Identity2()
	}
	idet := 1 / det
	return Matrix2{
		XX: m.YY * idet,
		YX: -m.YX * idet,
		XY: -m.XY * idet,
		YY: m.XX * idet,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * idet,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * idet,
	}
}

// Transpose returns the transpose of the matrix: the linear part
// has its rows and columns interchanged, and the translation terms
// are kept in place.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{m.XX, m.XY, m.YX, m.YY, m.X0, m.Y0}
}

// Eigen returns the eigenvalues and eigenvectors of the matrix's
// linear part. The first eigenvalue corresponds to the first
// eigenvector, and likewise for the second pair. The eigenvectors
// are normalized. It returns NaN eigenvalues when the matrix has
// no real eigenvalues.
func (m Matrix2) Eigen() (lambda1, lambda2 float32, v1, v2 Vector2) {
	if m.YX == 0.0 && m.XY == 0.0 {
		return m.XX, m.YY, Vec2(1, 0), Vec2(0, 1)
	}

	tr := m.XX + m.YY
	disc := tr*tr - 4.0*m.Det()
	if disc < 0.0 {
		return NaN(), NaN(), Vector2{}, Vector2{}
	}
	sq := Sqrt(disc)
	lambda1 = 0.5 * (tr + sq)
	lambda2 = 0.5 * (tr - sq)

	// see http://www.math.harvard.edu/archive/21b_fall_04/exhibits/2dmatrices
	if m.YX != 0.0 {
		v1 = Vec2(lambda1-m.YY, m.YX).Normal()
		v2 = Vec2(lambda2-m.YY, m.YX).Normal()
	} else {
		v1 = Vec2(m.XY, lambda1-m.XX).Normal()
		v2 = Vec2(m.XY, lambda2-m.XX).Normal()
	}
	return lambda1, lambda2, v1, v2
}

// ExtractRot extracts the rotation component of the matrix,
// in radians.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(m.YX, m.XX)
}

// ExtractScale extracts the x and y scale factors of the matrix.
func (m Matrix2) ExtractScale() (scx, scy float32) {
	scx = Vec2(m.XX, m.YX).Length()
	scy = m.Det() / scx
	return
}

// SetString sets the matrix from the given SVG transform attribute
// string, e.g., "translate(10, 4) scale(2, 2)". Transforms compose
// left to right, per SVG semantics. The string "none" and an empty
// string produce the identity. An unrecognized transform function
// sets the identity and returns an error.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.ToLower(strings.TrimSpace(str))
	if str == "none" || str == "" {
		return nil
	}
	// could have multiple transforms
	for {
		pidx := strings.IndexByte(str, '(')
		if pidx < 0 {
			err := errors.Errorf("math32.Matrix2.SetString: no params for transform: %q", str)
			errors.Log(err)
			return err
		}
		cmd := strings.TrimSpace(str[:pidx])
		vals := str[pidx+1:]
		nidx := strings.IndexByte(vals, ')')
		if nidx < 0 {
			err := errors.Errorf("math32.Matrix2.SetString: no end paren for transform: %q", str)
			errors.Log(err)
			return err
		}
		pts := ReadPoints(vals[:nidx])
		switch cmd {
		case "matrix":
			if len(pts) == 6 {
				*a = a.Mul(Matrix2{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]})
			} else {
				return a.setStringError(cmd, pts)
			}
		case "translate":
			switch len(pts) {
			case 1:
				*a = a.Mul(Translate2D(pts[0], 0))
			case 2:
				*a = a.Mul(Translate2D(pts[0], pts[1]))
			default:
				return a.setStringError(cmd, pts)
			}
		case "scale":
			switch len(pts) {
			case 1:
				*a = a.Mul(Scale2D(pts[0], pts[0]))
			case 2:
				*a = a.Mul(Scale2D(pts[0], pts[1]))
			default:
				return a.setStringError(cmd, pts)
			}
		case "rotate":
			switch len(pts) {
			case 1:
				*a = a.Mul(Rotate2D(DegToRad(pts[0])))
			case 3:
				*a = a.Mul(Translate2D(pts[1], pts[2])).
					Mul(Rotate2D(DegToRad(pts[0]))).
					Mul(Translate2D(-pts[1], -pts[2]))
			default:
				return a.setStringError(cmd, pts)
			}
		case "skewx":
			if len(pts) == 1 {
				*a = a.Mul(Skew2D(DegToRad(pts[0]), 0))
			} else {
				return a.setStringError(cmd, pts)
			}
		case "skewy":
			if len(pts) == 1 {
				*a = a.Mul(Skew2D(0, DegToRad(pts[0])))
			} else {
				return a.setStringError(cmd, pts)
			}
		default:
			*a = Identity2()
			err := errors.Errorf("math32.Matrix2.SetString: unknown transform: %q", cmd)
			errors.Log(err)
			return err
		}
		str = strings.TrimSpace(vals[nidx+1:])
		if str == "" {
			break
		}
		str = strings.TrimPrefix(str, ",")
	}
	return nil
}

func (a *Matrix2) setStringError(cmd string, pts []float32) error {
	*a = Identity2()
	err := errors.Errorf("math32.Matrix2.SetString: wrong number of values (%d) for transform %q", len(pts), cmd)
	errors.Log(err)
	return err
}

// String returns the SVG transform attribute representation of the
// matrix, using the shortest of the none, translate, scale,
// translate scale, and matrix forms that expresses it.
func (m Matrix2) String() string {
	if m.IsIdentity() {
		return "none"
	}
	if m.YX == 0 && m.XY == 0 { // no rotation, so can use simpler form
		tr := ""
		if m.X0 != 0 || m.Y0 != 0 {
			tr = fmt.Sprintf("translate(%v,%v)", m.X0, m.Y0)
		}
		sc := ""
		if m.XX != 1 || m.YY != 1 {
			sc = fmt.Sprintf("scale(%v,%v)", m.XX, m.YY)
		}
		if tr != "" && sc != "" {
			return tr + " " + sc
		}
		if tr != "" {
			return tr
		}
		return sc
	}
	return fmt.Sprintf("matrix(%v,%v,%v,%v,%v,%v)", m.XX, m.YX, m.XY, m.YY, m.X0, m.Y0)
}

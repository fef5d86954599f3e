/*
 * geometric.go, part of Molecule-SVG-Parser.
 *
 * Copyright 2023 The Molecule-SVG-Parser authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package mol

import (
	"math"

	v3 "github.com/oliviabiancucci/Molecule-SVG-Parser/v3"
	"gonum.org/v1/gonum/mat"
)

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

//operator returns the 3x3 matrix with the given rows.
func operator(data ...float64) *v3.Matrix {
	return v3.Dense2Matrix(mat.NewDense(3, 3, data))
}

//XRotation returns an operator that, applied with Transform, rotates
//a molecule by deg degrees around the x axis.
func XRotation(deg float64) *v3.Matrix {
	sin, cos := math.Sincos(deg2rad(deg))
	return operator(1, 0, 0,
		0, cos, -sin,
		0, sin, cos)
}

//YRotation returns an operator that, applied with Transform, rotates
//a molecule by deg degrees around the y axis.
func YRotation(deg float64) *v3.Matrix {
	sin, cos := math.Sincos(deg2rad(deg))
	return operator(cos, 0, sin,
		0, 1, 0,
		-sin, 0, cos)
}

//ZRotation returns an operator that, applied with Transform, rotates
//a molecule by deg degrees around the z axis.
func ZRotation(deg float64) *v3.Matrix {
	sin, cos := math.Sincos(deg2rad(deg))
	return operator(cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1)
}

//Compose returns the operator that has the same effect as applying
//each of the given operators, in order. With no operators, it returns
//the identity.
func Compose(ops ...*v3.Matrix) *v3.Matrix {
	ret := operator(1, 0, 0, 0, 1, 0, 0, 0, 1)
	for _, op := range ops {
		checkOperator(op)
		ret.Mul(op, ret)
	}
	return ret
}

func checkOperator(R *v3.Matrix) {
	r, c := R.Dims()
	if r != 3 || c != 3 {
		panic(ErrNotRotation)
	}
}

//Transform replaces the coordinates v of each atom in M by R*v, and then
//recomputes the coordinates of every bond. Panics if R is not 3x3.
func (M *Molecule) Transform(R *v3.Matrix) {
	checkOperator(R)
	if n := M.Len(); n > 0 {
		coords := v3.Zeros(n)
		for i, at := range M.atoms {
			coords.SetVec(i, at.X, at.Y, at.Z)
		}
		//Each row of coords is one atom, so R*v for all of them is coords*R^T.
		res := v3.Zeros(n)
		res.Mul(coords, R.T())
		for i := 0; i < res.NVecs(); i++ {
			M.atoms[i].X, M.atoms[i].Y, M.atoms[i].Z = res.Vec(i)
		}
	}
	for i := range M.bonds {
		M.bonds[i].ComputeCoords()
	}
}

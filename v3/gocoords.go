/*
 * gocoords.go, part of Molecule-SVG-Parser.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//NVecs returns the number of vecs in F. Panics if F doesn't have 3 columns.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Vec returns the 3 components of the ith vector of F.
func (F *Matrix) Vec(i int) (float64, float64, float64) {
	return F.At(i, 0), F.At(i, 1), F.At(i, 2)
}

//SetVec sets the ith vector of F to x, y, z.
func (F *Matrix) SetVec(i int, x, y, z float64) {
	F.Set(i, 0, x)
	F.Set(i, 1, y)
	F.Set(i, 2, z)
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, r+2, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, c, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense) //now row has a slice with the row i
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

/*
 * gonum.go, part of Molecule-SVG-Parser.
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

//gonum.go contains what is needed for handling the gonum/mat types.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some functions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The slice is used as backing data, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, &Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, &Error{"Empty input slice", []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Mul wraps mat.Dense.Mul to take care of the case when one of the
//arguments is also the receiver. Since the receiver is a Matrix,
//the mat function could check A (mat.Dense) vs F (Matrix) and
//it would not know that internally F.Dense==A, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

//Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func Det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//Errors

//Error is the same as mol.Error, kept separate to avoid a circular import.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("mol/v3: A Matrix should have 3 columns")
	ErrDeterminant  = PanicMsg("mol/v3: Determinants are only available for 3x3 matrices")
)

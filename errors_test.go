/*
 * errors_test.go, part of Molecule-SVG-Parser.
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
	"testing"

	v3 "github.com/oliviabiancucci/Molecule-SVG-Parser/v3"
)

func TestErrDecorate(Te *testing.T) {
	_, err := v3.NewMatrix([]float64{1, 2})
	err = errDecorate(err, "TestErrDecorate")
	e, ok := err.(Errorer)
	if !ok {
		Te.Fatalf("v3 errors should be Errorers, got %T", err)
	}
	if deco := e.Decorate(""); len(deco) != 2 || deco[0] != "NewMatrix" || deco[1] != "TestErrDecorate" {
		Te.Errorf("Unexpected decoration %v", deco)
	}
	err = errDecorate(newError(false, "here", "not critical"), "there")
	if e := err.(*Error); e.Critical() || len(e.Decorate("")) != 2 {
		Te.Errorf("Unexpected error %v %v", e.Critical(), e.Decorate(""))
	}
	plain := plainError{}
	if errDecorate(plain, "x") != error(plain) {
		Te.Error("Non-Errorer errors should be returned as they are")
	}
}

type plainError struct{}

func (plainError) Error() string { return "plain" }

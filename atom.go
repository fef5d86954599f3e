/*
 * atom.go, part of Molecule-SVG-Parser.
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
	"fmt"
	"unicode/utf8"
)

//SymbolLen is the number of meaningful characters in an element symbol.
const SymbolLen = 2

//Atom is an element symbol and its position in 3D space, in Angstroms
//relative to an origin common to the whole molecule.
type Atom struct {
	Symbol  string
	X, Y, Z float64
}

//Set copies the symbol and coordinates into the atom. Only the first
//SymbolLen characters (runes) of symbol are kept.
func (A *Atom) Set(symbol string, x, y, z float64) {
	if utf8.RuneCountInString(symbol) > SymbolLen {
		symbol = string([]rune(symbol)[:SymbolLen])
	}
	A.Symbol = symbol
	A.X = x
	A.Y = y
	A.Z = z
}

//Get returns the symbol and coordinates of the atom.
func (A *Atom) Get() (string, float64, float64, float64) {
	return A.Symbol, A.X, A.Y, A.Z
}

//Copy copies B into the receiver.
func (A *Atom) Copy(B *Atom) {
	if A == nil || B == nil {
		panic("Attempted to copy from or to a nil atom")
	}
	*A = *B
}

//Depth returns the z coordinate of the atom.
func (A *Atom) Depth() float64 {
	return A.Z
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom: element=%s, x=%g, y=%g, z=%g", A.Symbol, A.X, A.Y, A.Z)
}

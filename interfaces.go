/*
 * interfaces.go, part of Molecule-SVG-Parser.
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

// Atomer is the source a Bond resolves its atom indexes against.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the atom storage. Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

// Depther is anything with a position along the viewing (z) axis.
// Both *Atom and *Bond are Depthers.
type Depther interface {
	Depth() float64
}

//Errors

// Errorer is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Errorer interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	Critical() bool
}

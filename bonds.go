/*
 * bonds.go, part of Molecule-SVG-Parser.
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
	"math"
)

//Bond is a covalent bond between 2 atoms. The atoms are given as
//indexes in the atom storage of an Atomer (normally the Molecule the
//bond belongs to). The remaining fields are derived from the atom coordinates
//by ComputeCoords, and go stale if the atoms are moved without calling it.
type Bond struct {
	A1, A2 int
	EPairs uint8 //electron pairs in the bond, i.e. the bond order. 2 is a double bond.

	atoms Atomer

	Z      float64 //average z of both atoms
	X1, Y1 float64 //projection of the first atom on the xy plane
	X2, Y2 float64
	Len    float64 //length of the xy projection of the bond
	DX, DY float64 //unit vector from the first to the second atom, on the xy plane
}

//Set stores the atom indexes, the Atomer they refer to and the electron pairs
//in the bond, and computes the derived coordinates. atoms is not copied.
//Indexes out of the range of atoms cause a panic.
func (B *Bond) Set(a1, a2 int, atoms Atomer, epairs uint8) {
	B.A1 = a1
	B.A2 = a2
	B.atoms = atoms
	B.EPairs = epairs
	B.ComputeCoords()
}

//Get returns the atom indexes, the Atomer they refer to, and the
//electron pairs of the bond.
func (B *Bond) Get() (int, int, Atomer, uint8) {
	return B.A1, B.A2, B.atoms, B.EPairs
}

//Atoms returns the Atomer the bond indexes refer to.
func (B *Bond) Atoms() Atomer {
	return B.atoms
}

//ComputeCoords recomputes the depth, the xy projections, the length
//and the unit direction of the bond from the current atom coordinates.
//If both atoms have the same xy projection, Len, DX and DY are all 0.
func (B *Bond) ComputeCoords() {
	at1 := B.atoms.Atom(B.A1)
	at2 := B.atoms.Atom(B.A2)
	B.Z = (at1.Z + at2.Z) / 2
	B.X1, B.Y1 = at1.X, at1.Y
	B.X2, B.Y2 = at2.X, at2.Y
	dx := B.X2 - B.X1
	dy := B.Y2 - B.Y1
	B.Len = math.Hypot(dx, dy)
	if B.Len == 0 {
		B.DX, B.DY = 0, 0
		return
	}
	B.DX = dx / B.Len
	B.DY = dy / B.Len
}

//Depth returns the average z of the bonded atoms, as of the last
//call to ComputeCoords.
func (B *Bond) Depth() float64 {
	return B.Z
}

func (B *Bond) String() string {
	return fmt.Sprintf("Bond: atom1=%d, atom2=%d, z=%g, x1=%g, y1=%g, x2=%g, y2=%g", B.A1, B.A2, B.Z, B.X1, B.Y1, B.X2, B.Y2)
}

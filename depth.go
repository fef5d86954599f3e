/*
 * depth.go, part of Molecule-SVG-Parser.
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

import "sort"

//Sort orders the atom mirror by increasing atom z, and the bond mirror
//by increasing bond z (the average z of its atoms, as of the last
//ComputeCoords). The storage is not touched. Ties are left in no
//particular order.
func (M *Molecule) Sort() {
	sortMirror(M.atomPtrs, func(i int) float64 { return M.atoms[i].Z })
	sortMirror(M.bondPtrs, func(i int) float64 { return M.bonds[i].Z })
}

//sortMirror sorts the storage indexes in mirror by increasing depth(index).
func sortMirror(mirror []int, depth func(int) float64) {
	sort.Slice(mirror, func(i, j int) bool { return depth(mirror[i]) < depth(mirror[j]) })
}

//PaintOrder merges the atom and bond mirrors into one sequence, from the
//back to the front. While both mirrors have elements left, the next atom
//goes first if it is strictly deeper (lower z) than the next bond, otherwise
//the bond does. The remaining atoms, and then the remaining bonds, go last.
//The mirrors are expected to be sorted, so Sort should normally be called
//first. The elements are *Atom and *Bond values.
func (M *Molecule) PaintOrder() []Depther {
	ret := make([]Depther, 0, M.Len()+M.NBonds())
	var i, j int
	for i < len(M.atomPtrs) && j < len(M.bondPtrs) {
		at := M.OrderedAtom(i)
		b := M.OrderedBond(j)
		if at.Z < b.Z {
			ret = append(ret, at)
			i++
		} else {
			ret = append(ret, b)
			j++
		}
	}
	for ; i < len(M.atomPtrs); i++ {
		ret = append(ret, M.OrderedAtom(i))
	}
	for ; j < len(M.bondPtrs); j++ {
		ret = append(ret, M.OrderedBond(j))
	}
	return ret
}

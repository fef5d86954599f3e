/*
 * depth_test.go, part of Molecule-SVG-Parser.
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
	"testing"
)

//checkSorted fails if the mirrors of M are not in non-decreasing depth order.
func checkSorted(Te *testing.T, M *Molecule) {
	Te.Helper()
	for i := 1; i < M.Len(); i++ {
		if M.OrderedAtom(i-1).Z > M.OrderedAtom(i).Z {
			Te.Errorf("Atoms %d and %d out of order", i-1, i)
		}
	}
	for i := 1; i < M.NBonds(); i++ {
		if M.OrderedBond(i-1).Z > M.OrderedBond(i).Z {
			Te.Errorf("Bonds %d and %d out of order", i-1, i)
		}
	}
}

func TestSortAtoms(Te *testing.T) {
	M := newTestMol(Te, 3, 0, [3]float64{0, 0, 5}, [3]float64{1, 0, 1}, [3]float64{2, 0, 3})
	M.Sort()
	for i, z := range []float64{1, 3, 5} {
		if M.OrderedAtom(i).Z != z {
			Te.Errorf("Slot %d should have z=%v, got %v", i, z, M.OrderedAtom(i).Z)
		}
	}
	order := M.AtomOrder()
	if order[0] != 1 || order[1] != 2 || order[2] != 0 {
		Te.Errorf("Wrong atom order %v", order)
	}
	if M.Atom(0).Z != 5 || M.Atom(1).Z != 1 || M.Atom(2).Z != 3 {
		Te.Errorf("Sort should not move the stored atoms")
	}
}

func TestSortBonds(Te *testing.T) {
	M := newTestMol(Te, 4, 3, [3]float64{0, 0, 0}, [3]float64{1, 0, 10}, [3]float64{0, 1, 2}, [3]float64{1, 1, 4})
	M.AppendBond(&Bond{A1: 0, A2: 1, EPairs: 1}) //z 5
	M.AppendBond(&Bond{A1: 2, A2: 3, EPairs: 1}) //z 3
	M.AppendBond(&Bond{A1: 0, A2: 2, EPairs: 2}) //z 1
	M.Sort()
	order := M.BondOrder()
	if order[0] != 2 || order[1] != 1 || order[2] != 0 {
		Te.Errorf("Wrong bond order %v", order)
	}
	if b := M.Bond(0); b.A1 != 0 || b.A2 != 1 {
		Te.Errorf("Sort should not touch the bond indexes: %v", b)
	}
	checkSorted(Te, M)
	M.Sort()
	again := M.BondOrder()
	for i := range order {
		if order[i] != again[i] {
			Te.Errorf("Sorting twice changed the order: %v vs %v", order, again)
		}
	}
	atoms := M.AtomOrder()
	M.Sort()
	for i, v := range M.AtomOrder() {
		if atoms[i] != v {
			Te.Errorf("Sorting twice changed the atom order: %v vs %v", atoms, M.AtomOrder())
		}
	}
}

func TestSortAfterAppend(Te *testing.T) {
	M := newTestMol(Te, 8, 0, [3]float64{0, 0, 2}, [3]float64{0, 0, 2}, [3]float64{0, 0, -1})
	M.Sort()
	checkSorted(Te, M)
	M.AppendAtom(&Atom{Symbol: "H", Z: -7})
	M.AppendAtom(&Atom{Symbol: "H", Z: 2})
	M.Sort()
	checkSorted(Te, M)
	if M.OrderedAtom(0).Symbol != "H" || M.OrderedAtom(0).Z != -7 {
		Te.Errorf("The deepest atom should come first, got %v", M.OrderedAtom(0))
	}
}

func TestPaintOrder(Te *testing.T) {
	M := newTestMol(Te, 3, 2, [3]float64{0, 0, 2}, [3]float64{1, 0, 0}, [3]float64{2, 0, 1})
	M.AppendBond(&Bond{A1: 0, A2: 1}) //z 1, same as the third atom
	M.AppendBond(&Bond{A1: 0, A2: 2}) //z 1.5
	M.Sort()
	p := M.PaintOrder()
	if len(p) != 5 {
		Te.Fatalf("Expected 5 elements, got %d", len(p))
	}
	//z 0 atom, z 1 bond (ties go to the bond), z 1 atom, z 1.5 bond, z 2 atom
	expected := []struct {
		atom bool
		z    float64
	}{{true, 0}, {false, 1}, {true, 1}, {false, 1.5}, {true, 2}}
	for i, v := range p {
		_, isAtom := v.(*Atom)
		if isAtom != expected[i].atom || v.Depth() != expected[i].z {
			Te.Errorf("Element %d: %v", i, v)
		}
	}
	fmt.Println(p)
}

func TestPaintOrderRemainders(Te *testing.T) {
	M := newTestMol(Te, 2, 1, [3]float64{0, 0, 0}, [3]float64{1, 0, 0})
	p := M.PaintOrder()
	if len(p) != 2 {
		Te.Fatalf("Only atoms expected, got %v", p)
	}
	M.AppendBond(&Bond{A1: 0, A2: 1})
	M.Atom(0).Z = -4
	M.Atom(1).Z = -2
	M.Sort()
	p = M.PaintOrder()
	if _, ok := p[2].(*Bond); !ok || len(p) != 3 {
		Te.Errorf("The stale bond (z 0) should go last, got %v", p)
	}
}

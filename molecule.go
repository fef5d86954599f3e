/*
 * molecule.go, part of Molecule-SVG-Parser.
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
	"log"
	"strings"
)

/**Note: The append functions panic instead of returning errors when the storage
 * can't grow any more. A molecule that failed half-way through being built
 * is not something the caller can do anything useful with.**/

//Molecule contains zero or more atoms and zero or more bonds.
//Atoms and bonds are kept in the order they were appended (the storage).
//Each storage has a mirror, a slice of storage indexes that can be
//reordered (see Sort) without moving the atoms or bonds themselves.
//Bond indexes always refer to the atom storage, never to the mirror.
type Molecule struct {
	atoms    []Atom //len(atoms) is the number of atoms
	atomPtrs []int
	atomMax  int

	bonds    []Bond
	bondPtrs []int
	bondMax  int

	opts *Options
}

//NewMolecule returns an empty molecule with room for atomMax atoms and bondMax
//bonds. Either can be 0. An optional *Options can be given, otherwise DefaultOptions()
//are used. It returns an error if a capacity is negative or over the options' limit.
func NewMolecule(atomMax, bondMax int, opts ...*Options) (*Molecule, error) {
	o := pickOptions(opts...)
	if err := checkCapacity(atomMax, o.limit, "atom"); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	if err := checkCapacity(bondMax, o.limit, "bond"); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	M := new(Molecule)
	M.opts = o
	M.atomMax = atomMax
	M.bondMax = bondMax
	//there is always room for at least one element.
	M.atoms = make([]Atom, 0, max(atomMax, 1))
	M.atomPtrs = make([]int, 0, max(atomMax, 1))
	M.bonds = make([]Bond, 0, max(bondMax, 1))
	M.bondPtrs = make([]int, 0, max(bondMax, 1))
	return M, nil
}

func checkCapacity(n, limit int, what string) error {
	if n < 0 {
		return newError(true, "checkCapacity", "Negative %s capacity %d", what, n)
	}
	if n > limit {
		return newError(true, "checkCapacity", "The %s capacity %d is over the limit %d", what, n, limit)
	}
	return nil
}

//Copy returns a new molecule with the capacities and options of M, to which
//all atoms and then all bonds of M are appended. The bonds of the copy refer
//to the atoms of the copy. The mirrors of the copy are in storage order.
func (M *Molecule) Copy() *Molecule {
	R, err := NewMolecule(M.atomMax, M.bondMax, M.opts)
	if err != nil {
		panic(ErrCantHappen) //M itself passed the same checks.
	}
	for i := range M.atoms {
		R.AppendAtom(&M.atoms[i])
	}
	for i := range M.bonds {
		R.AppendBond(&M.bonds[i])
	}
	return R
}

//Free releases the atoms, bonds and both mirrors. M must not
//be used afterwards.
func (M *Molecule) Free() {
	M.atoms = nil
	M.atomPtrs = nil
	M.bonds = nil
	M.bondPtrs = nil
}

//AppendAtom copies at to the end of the atom storage, and points the
//next atom mirror slot to it. If the storage is full, its capacity goes
//from 0 to 1, or is doubled, and the whole mirror is reset to storage order.
//Panics with ErrCapacityExceeded if the capacity is already at the limit.
func (M *Molecule) AppendAtom(at *Atom) {
	n := len(M.atoms)
	if n == M.atomMax {
		M.atomMax = M.nextCapacity(M.atomMax, "atom")
		M.atoms, M.atomPtrs = grow(M.atoms, M.atomMax)
	}
	M.atoms = append(M.atoms, *at)
	M.atomPtrs = append(M.atomPtrs, n)
}

//AppendBond is the same as AppendAtom, for bonds. The stored copy of b
//refers to the atoms of M, and its coordinates are recomputed.
func (M *Molecule) AppendBond(b *Bond) {
	nb := *b
	nb.atoms = M
	nb.ComputeCoords() //panics on bad indexes before anything is stored.
	n := len(M.bonds)
	if n == M.bondMax {
		M.bondMax = M.nextCapacity(M.bondMax, "bond")
		M.bonds, M.bondPtrs = grow(M.bonds, M.bondMax)
	}
	M.bonds = append(M.bonds, nb)
	M.bondPtrs = append(M.bondPtrs, n)
}

//nextCapacity returns the capacity that follows current. It logs and panics
//if current is already at the limit.
func (M *Molecule) nextCapacity(current int, what string) int {
	limit := M.opts.limit
	if current >= limit {
		log.Printf("mol: Can't grow the %s storage past %d elements", what, limit)
		panic(ErrCapacityExceeded)
	}
	next := 2 * current
	if current == 0 {
		next = 1
	}
	if next > limit {
		next = limit
	}
	if M.opts.verbose {
		log.Printf("mol: Growing the %s storage from %d to %d", what, current, next)
	}
	return next
}

//grow returns a copy of storage with room for capacity elements, and a
//mirror of the same length in storage order.
func grow[T any](storage []T, capacity int) ([]T, []int) {
	s := make([]T, len(storage), capacity)
	copy(s, storage)
	mirror := make([]int, len(storage), capacity)
	for i := range mirror {
		mirror[i] = i
	}
	return s, mirror
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

//NBonds returns the number of bonds in the molecule.
func (M *Molecule) NBonds() int {
	return len(M.bonds)
}

//AtomMax returns the current capacity of the atom storage.
func (M *Molecule) AtomMax() int {
	return M.atomMax
}

//BondMax returns the current capacity of the bond storage.
func (M *Molecule) BondMax() int {
	return M.bondMax
}

//Options returns a copy of the options of the molecule.
func (M *Molecule) Options() *Options {
	return M.opts.copy()
}

//Atom returns the ith atom in storage (append) order.
//The pointer is only good until the next atom is appended.
//Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i < 0 || i >= len(M.atoms) {
		panic("Molecule: Requested Atom out of bounds")
	}
	return &M.atoms[i]
}

//Bond returns the ith bond in storage order.
//The pointer is only good until the next bond is appended.
//Panics if out of range.
func (M *Molecule) Bond(i int) *Bond {
	if i < 0 || i >= len(M.bonds) {
		panic("Molecule: Requested Bond out of bounds")
	}
	return &M.bonds[i]
}

//OrderedAtom returns the atom the ith slot of the atom mirror points to.
func (M *Molecule) OrderedAtom(i int) *Atom {
	return M.Atom(M.atomPtrs[i])
}

//OrderedBond returns the bond the ith slot of the bond mirror points to.
func (M *Molecule) OrderedBond(i int) *Bond {
	return M.Bond(M.bondPtrs[i])
}

//AtomOrder returns a copy of the atom mirror.
func (M *Molecule) AtomOrder() []int {
	return append([]int(nil), M.atomPtrs...)
}

//BondOrder returns a copy of the bond mirror.
func (M *Molecule) BondOrder() []int {
	return append([]int(nil), M.bondPtrs...)
}

//String returns all the atoms and then all the bonds, in mirror order, one per line.
func (M *Molecule) String() string {
	ret := make([]string, 0, M.Len()+M.NBonds())
	for i := range M.atomPtrs {
		ret = append(ret, M.OrderedAtom(i).String())
	}
	for i := range M.bondPtrs {
		ret = append(ret, M.OrderedBond(i).String())
	}
	return strings.Join(ret, "\n")
}

//GoString gives the sizes of the molecule, for debugging.
func (M *Molecule) GoString() string {
	return fmt.Sprintf("mol.Molecule{atoms: %d/%d, bonds: %d/%d}", M.Len(), M.atomMax, M.NBonds(), M.bondMax)
}

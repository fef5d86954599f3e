/*
 * options.go, part of Molecule-SVG-Parser.
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

//MaxCapacity is the default ceiling for the number of atoms or bonds
//a Molecule can hold (the historical 16-bit limit).
const MaxCapacity = 1<<16 - 1

//Options contains the settings for a Molecule.
type Options struct {
	limit   int  //largest capacity the atom or bond storage may reach.
	verbose bool //log every growth of the storage.
}

//DefaultOptions returns the 16-bit capacity limit and quiet growth.
func DefaultOptions() *Options {
	r := new(Options)
	r.limit = MaxCapacity
	return r
}

//Limit returns the capacity limit for atoms and bonds,
//and sets it to a new value, if a positive one is given.
//A limit above MaxCapacity widens the historical 16-bit ceiling.
func (O *Options) Limit(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.limit = n[0]
	}
	return O.limit
}

//Verbose returns whether storage growth is logged,
//and sets it to a new value, if given.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}

//copy returns a new Options with the same values as O.
func (O *Options) copy() *Options {
	r := new(Options)
	*r = *O
	return r
}

//pickOptions returns a copy of the first non-nil options given, or the default ones.
func pickOptions(opts ...*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0].copy()
	}
	return DefaultOptions()
}

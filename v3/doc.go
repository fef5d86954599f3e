/*
 * doc.go, part of Molecule-SVG-Parser.
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

/*Package v3 implements a Matrix type representing a row-major 3D matrix (i.e. a Nx3 matrix).
The v3.Matrix is used to represent the cartesian coordinates of sets of atoms, and the 3x3
linear operators (rotations) applied to them.
It is based on gonum's (gonum.org/v1/gonum/mat) Dense type, with the additional restriction
of a fixed number of columns.

*/
package v3

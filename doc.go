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

/*Package mol provides atom, bond and molecule structures, the geometry
a drawing program needs to draw a bond, and the rotations and depth
ordering needed to show a molecule from any angle.


	**Capabilities**


    Molecules grow as atoms and bonds are appended, starting from any
	capacity (even 0). Capacities double when full, up to a limit
	(by default the 16-bit MaxCapacity) set in the Options.

    Bonds refer to their atoms by index, so they remain valid as the
	molecule grows, and are copied along with the molecule.

    Each bond keeps its depth, the projection of its atoms on the xy
	plane, its projected length and direction. These are recomputed when
	the bond is set, appended, or the molecule is transformed.

    Atoms and bonds can be ordered by depth (Sort) without moving them,
	and merged into a single back-to-front sequence (PaintOrder).

    Rotation operators around the x, y and z axes (in degrees) can be
	composed and applied to a whole molecule (Transform).

The operators are v3.Matrix values, which wrap gonum's mat.Dense
(gonum.org/v1/gonum/mat).

A Molecule is not safe for concurrent use.*/
package mol

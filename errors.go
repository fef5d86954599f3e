/*
 * errors.go, part of Molecule-SVG-Parser.
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

import "fmt"

//Error is the general structure for errors returned by this package.
//It fulfills Errorer.
type Error struct {
	msg      string
	deco     []string
	critical bool
}

func (err Error) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of the error,
//and returns the resulting slice. An empty string just returns the
//current decoration.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

func newError(critical bool, caller string, format string, a ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf(format, a...), deco: []string{caller}, critical: critical}
}

//errDecorate is a helper function that asserts that the error
//implements Errorer and decorates the error with the caller's name before returning it.
//if used with a non-Errorer error, it will just return the error.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Errorer)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrCapacityExceeded = PanicMsg("mol: Storage can't grow past the capacity limit")
	ErrCantHappen       = PanicMsg("mol: This should not have happened")
	ErrNotRotation      = PanicMsg("mol: Transformation matrix must be 3x3")
)

// This file is part of ZX-Spectrum-Emu.
//
// ZX-Spectrum-Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ZX-Spectrum-Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ZX-Spectrum-Emu.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// store is the common implementation of the preference types. the value is
// atomic so that preferences can be read from the emulation goroutine while
// being changed by a front end
type store[T any] struct {
	value    atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (s *store[T]) load(def T) T {
	if v := s.value.Load(); v != nil {
		return v.(T)
	}
	return def
}

func (s *store[T]) set(v T) error {
	if s.hookPre != nil {
		if err := s.hookPre(v); err != nil {
			return err
		}
	}

	s.value.Store(v)

	if s.hookPost != nil {
		if err := s.hookPost(v); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (s *store[T]) SetHookPre(f func(value Value) error) {
	s.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
func (s *store[T]) SetHookPost(f func(value Value) error) {
	s.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	store[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load(false))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.set(v)
	case string:
		return p.set(strings.ToLower(strings.TrimSpace(v)) == "true")
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load(false)
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	store[string]
}

func (p *String) String() string {
	return p.load("")
}

// Set new value to String type. Values of any type are converted to a string.
func (p *String) Set(v Value) error {
	return p.set(fmt.Sprintf("%v", v))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load("")
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	store[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load(0))
}

// Set new value to Int type. New value can be an int or a string. Strings are
// parsed with the base implied by the prefix, so "0xff" is accepted.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.set(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 0)
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %q to prefs.Int", v)
		}
		return p.set(int(n))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load(0)
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

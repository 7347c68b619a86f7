/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or it does not (Nothing). Icon requests
use it for the optional fill color: an icon referenced without a color keeps
the colors embedded in its markup, which is different from any color given
explicitly.

Clients may either query a Maybe directly

	if color, ok := c.Get(); ok { … }

or pattern-match it:

	var color string
	switch m := c.Match(); m {
	case m.Just(&color):
		…
	case m.Nothing():
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

import "fmt"

// Maybe is an optional value of type T.
type Maybe[T comparable] interface {
	Match() Matcher[T]
	Get() (T, bool)
	IsJust() bool
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T comparable] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T comparable](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T comparable]() Maybe[T] {
	return maybe[T]{tag: false}
}

// NonZero returns Nothing for the zero value of T and Just(x) otherwise.
// For strings this means: an empty string is not a value.
func NonZero[T comparable](x T) Maybe[T] {
	var zero T
	if x == zero {
		return Nothing[T]()
	}
	return Just(x)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Equal is true if both a and b are Nothing or both hold equal values.
// A nil Maybe is treated as Nothing.
func Equal[T comparable](a, b Maybe[T]) bool {
	var av, bv T
	var aok, bok bool
	if a != nil {
		av, aok = a.Get()
	}
	if b != nil {
		bv, bok = b.Get()
	}
	return aok == bok && (!aok || av == bv)
}

// AndThen chains a computation which may itself fail to produce a value.
func AndThen[T, S comparable](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports pattern matching on a Maybe within a switch statement.
type Matcher[T comparable] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T comparable] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

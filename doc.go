// Package rotateenum documents rotategen, a code generator that derives
// navigation methods and iterators for Go enums.
//
// An enum here is what Go convention makes of one: a named type with a basic
// underlying type and a block of constants of that type. The declaration
// order of the constants defines the order of the variants:
//
//	//rotategen:rotate
//	type Direction int
//
//	const (
//		Up Direction = iota
//		Left
//		Down
//		Right
//	)
//
// Running rotategen over the package writes a rotate_gen.go file next to the
// declaration. The directive selects one of three policies.
//
// # Rotate
//
// "//rotategen:rotate" generates Next and Prev methods that wrap around at
// the ends of the variant sequence:
//
//	Up.Next()    == Left
//	Right.Next() == Up
//	Up.Prev()    == Right
//
// Both methods are total. An enum with a single variant maps it to itself in
// both directions.
//
// # Shift
//
// "//rotategen:shift" generates Next and Prev methods that exhaust instead
// of wrapping. The second result reports whether a neighbor exists:
//
//	Up.Next()    == (Left, true)
//	Right.Next() == (Right, false)
//	Up.Prev()    == (Up, false)
//
// # Iter
//
// "//rotategen:iter" generates a cursor type named after the enum, here
// DirectionIterator, which yields the variants in declaration order and then
// stays exhausted:
//
//	it := NewDirectionIterator() // starts at Up
//	it = Down.Iter()             // starts at the receiver
//	v, ok := it.Next()           // current variant, then advance
//	for v := range it.All() { }  // range over the rest
//
// A fresh cursor must be constructed to traverse again.
//
// Instead of directives, explicit flags select types across a package:
//
//	//go:generate go run github.com/msakuta/rotate-enum/cmd/rotategen -type Direction -policy rotate
//
// Misuse is rejected before any code is written: annotating a non-enum type,
// an enum without constants, or an enum whose constants share a value is a
// generation-time error pointing at the offending declaration.
package rotateenum

// Package example shows rotategen output for the three policies. The file
// rotate_gen.go next to this one is generated; regenerate it with go
// generate after changing the enums below.
package example

//go:generate go run github.com/msakuta/rotate-enum/cmd/rotategen .

//rotategen:rotate
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

//rotategen:shift
type Gear int

const (
	Reverse Gear = iota
	Neutral
	First
)

//rotategen:iter
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

package notenum

//rotategen:rotate
type Point struct { // want `must be an enum`
	X, Y int
}

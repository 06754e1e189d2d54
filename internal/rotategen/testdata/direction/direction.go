package direction

//rotategen:rotate
type Direction int

const (
	Up Direction = iota
	Left
	Down
	Right
)

package duplicate

//rotategen:shift
type Mode int

const (
	ModeOff  Mode = 0
	ModeOn   Mode = 1
	ModeIdle Mode = 0 // want `ModeIdle has the same value as ModeOff`
)

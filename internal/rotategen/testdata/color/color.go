package color

// Color carries no directive; it is selected with -type and -policy.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

package season

//rotategen:iter
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

package gear

// Gear is a string-backed enum; any basic underlying type works.
//
//rotategen:shift
type Gear string

const (
	Reverse Gear = "R"
	Neutral Gear = "N"
	First   Gear = "1"
	Second  Gear = "2"
)

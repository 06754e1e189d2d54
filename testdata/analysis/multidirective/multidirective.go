package multidirective

//rotategen:rotate
//rotategen:shift
type Coin int // want `type Coin has multiple rotategen directives`

const (
	Heads Coin = iota
	Tails
)

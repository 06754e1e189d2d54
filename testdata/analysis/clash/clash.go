package clash

//rotategen:iter
type Card int // want `cannot declare iterator CardIterator`

const (
	Ace Card = iota
	King
)

// CardIterator already exists, so the generated cursor type cannot be
// declared.
type CardIterator struct{}

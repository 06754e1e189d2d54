package empty

//rotategen:iter
type Signal int // want `enum Signal has no constants`

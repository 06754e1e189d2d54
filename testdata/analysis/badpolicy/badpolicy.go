package badpolicy

//rotategen:elevate
type Floor int // want `unknown rotategen policy "elevate"`

const (
	Ground Floor = iota
	Mezzanine
)

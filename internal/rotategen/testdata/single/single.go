package single

//rotategen:rotate
type Solo int

const Only Solo = 0

//rotategen:shift
type Lone int

const Sole Lone = 0

package sibling

//daft:diffable
type Point struct {
	X int `daft:"leef"`
}

//daft:diffable
type Shape struct {
	Name   string
	Origin Point
}

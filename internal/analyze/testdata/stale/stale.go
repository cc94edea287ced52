package stale

//daft:diffable
type Point struct {
	X int
}

package messages

// InputKind identifies an input event from the platform collaborator.
type InputKind int

const (
	InputDragBegin InputKind = iota
	InputDragMove
	InputDragEnd
	InputPauseToggle
	InputDebugToggle
	InputMuteToggle
	InputRestart
)

// Input is one platform event for a frame. X and Y are world coordinates
// and only matter for drag events.
type Input struct {
	Kind InputKind
	X, Y float64
}

func DragBegin(x, y float64) Input { return Input{Kind: InputDragBegin, X: x, Y: y} }
func DragMove(x, y float64) Input  { return Input{Kind: InputDragMove, X: x, Y: y} }
func DragEnd(x, y float64) Input   { return Input{Kind: InputDragEnd, X: x, Y: y} }

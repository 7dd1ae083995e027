package components

import (
	"github.com/automoto/cosmoball/messages"
	"github.com/yohamta/donburi"
)

// InputData holds the platform events queued for the current frame.
type InputData struct {
	Events []messages.Input
}

var Input = donburi.NewComponentType[InputData]()

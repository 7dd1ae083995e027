package components

import (
	"github.com/automoto/cosmoball/messages"
	"github.com/yohamta/donburi"
)

// EventQueueData collects feedback events until the frame snapshot drains them.
type EventQueueData struct {
	Events []messages.Event
}

var EventQueue = donburi.NewComponentType[EventQueueData]()

package components

import (
	"github.com/automoto/cosmoball/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ChestData struct {
	Opened  bool
	Upgrade *config.UpgradeConfig
	Value   float64 // rolled stat modifier

	// Reveal runs from 0 to 1 over the display delay once opened.
	Reveal   *gween.Tween
	Progress float64
}

var Chest = donburi.NewComponentType[ChestData]()

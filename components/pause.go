package components

import "github.com/yohamta/donburi"

// PauseData stores the user pause toggle and the upgrade display hold.
type PauseData struct {
	IsPaused     bool
	UpgradeTicks int // gameplay is held while > 0
	UpgradeText  string
}

var Pause = donburi.NewComponentType[PauseData]()

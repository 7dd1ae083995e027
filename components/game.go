package components

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// GameData is the run-wide state owned by the world.
type GameData struct {
	RunID uuid.UUID
	Rand  *rand.Rand
	Tick  uint64

	Score     int
	BestScore int

	GameOver bool
	Victory  bool
	Recorded bool // best score already persisted for this run

	Debug bool
	Muted bool
}

var Game = donburi.NewComponentType[GameData]()

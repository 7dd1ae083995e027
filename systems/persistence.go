package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/cosmoball/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const bestScoreKey = "best_score"

// ScoreStore persists the best score between runs.
type ScoreStore interface {
	LoadBestScore() (int, error)
	SaveBestScore(score int) error
}

// savedScore represents the score record stored on disk
type savedScore struct {
	BestScore int `json:"bestScore"`
}

// GDataStore keeps the best score in the platform's app data directory.
type GDataStore struct {
	manager *gdata.Manager
}

// OpenGDataStore initializes the gdata manager for score storage
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %s: %w", appName, err)
	}
	return &GDataStore{manager: m}, nil
}

// LoadBestScore loads the best score from disk. A missing record is zero.
func (s *GDataStore) LoadBestScore() (int, error) {
	data, err := s.manager.LoadItem(bestScoreKey)
	if err != nil {
		return 0, fmt.Errorf("load best score: %w", err)
	}
	if data == nil {
		return 0, nil
	}
	var saved savedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("parse best score: %w", err)
	}
	return saved.BestScore, nil
}

// SaveBestScore saves the best score to disk
func (s *GDataStore) SaveBestScore(score int) error {
	data, err := json.Marshal(savedScore{BestScore: score})
	if err != nil {
		return fmt.Errorf("serialize best score: %w", err)
	}
	if err := s.manager.SaveItem(bestScoreKey, data); err != nil {
		return fmt.Errorf("save best score: %w", err)
	}
	return nil
}

// MemoryStore keeps the best score in memory. It stands in when no app data
// directory is available.
type MemoryStore struct {
	Best  int
	Saves int
}

func (s *MemoryStore) LoadBestScore() (int, error) { return s.Best, nil }

func (s *MemoryStore) SaveBestScore(score int) error {
	s.Best = score
	s.Saves++
	return nil
}

// RecordScore persists the run's score once the game is over, if it beats
// the best score. Returns true when a new best was recorded.
func RecordScore(ecs *ecs.ECS, store ScoreStore) bool {
	game := components.GetGame(ecs.World)
	if game == nil || !game.GameOver || game.Recorded {
		return false
	}
	game.Recorded = true
	if game.Score <= game.BestScore {
		return false
	}
	game.BestScore = game.Score
	if store != nil {
		if err := store.SaveBestScore(game.Score); err != nil {
			log.Printf("Warning: Could not save best score: %v", err)
		}
	}
	log.Printf("run %s ended with new best score %d", game.RunID, game.Score)
	return true
}

package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for a game run.
func GenerateGameID() string {
	return uuid.NewString()
}

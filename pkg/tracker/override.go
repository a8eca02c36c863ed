package tracker

import (
	"sync"
	"time"

	"roomtrack.xyz/room-power-service/pkg/models"
)

// ManualCommandStore holds the pending operator override per room:
// room_id -> manual command. A command carries its own issue time; expiry
// is checked on read, the sweep only reclaims memory.
type ManualCommandStore struct {
	commands map[uint]models.ManualCommand
	mu       sync.Mutex
	window   time.Duration
}

func NewManualCommandStore(window time.Duration) *ManualCommandStore {
	return &ManualCommandStore{
		commands: make(map[uint]models.ManualCommand),
		window:   window,
	}
}

func (s *ManualCommandStore) Set(roomID uint, command models.ManualCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commands[roomID] = command
}

// Pending returns the room's override if it has not expired, nil otherwise.
func (s *ManualCommandStore) Pending(roomID uint, now time.Time) *models.ManualCommand {
	s.mu.Lock()
	defer s.mu.Unlock()

	command, exists := s.commands[roomID]
	if !exists {
		return nil
	}
	if now.Sub(command.IssuedAt) >= s.window {
		return nil
	}
	return &command
}

// PurgeExpired drops expired commands and reports how many were removed.
func (s *ManualCommandStore) PurgeExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for roomID, command := range s.commands {
		if now.Sub(command.IssuedAt) >= s.window {
			delete(s.commands, roomID)
			purged++
		}
	}
	return purged
}

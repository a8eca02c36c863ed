package tracker

import "sync"

// RoomLockStore serializes state changes per room: room_id -> lock. Calls
// touching different rooms never block each other; there is no global lock.
type RoomLockStore struct {
	locks map[uint]*sync.Mutex
	mu    sync.Mutex
}

func NewRoomLockStore() *RoomLockStore {
	return &RoomLockStore{
		locks: make(map[uint]*sync.Mutex),
	}
}

func (s *RoomLockStore) GetLock(roomID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[roomID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[roomID] = lock
	}
	return lock
}

package repository

import (
	"context"
	"fmt"
	"sync"

	"cinema-inventory/internal/data/entity"

	"go.uber.org/zap"
)

type memoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
	order []string
	log   *zap.Logger
}

func NewMemoryRoomRepository(log *zap.Logger) RoomRepository {
	return &memoryRoomRepository{
		rooms: make(map[string]*entity.Room),
		log:   log.With(zap.String("repository", "room")),
	}
}

func (r *memoryRoomRepository) Insert(ctx context.Context, room *entity.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rooms[room.ID]; ok {
		return fmt.Errorf("insert room %s: duplicate id", room.ID)
	}

	r.rooms[room.ID] = room
	r.order = append(r.order, room.ID)
	return nil
}

func (r *memoryRoomRepository) FindByID(ctx context.Context, id string) (*entity.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[id]
	if !ok {
		return nil, nil
	}
	return room, nil
}

func (r *memoryRoomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rooms := make([]*entity.Room, 0, len(r.order))
	for _, id := range r.order {
		rooms = append(rooms, r.rooms[id])
	}
	return rooms, nil
}

func (r *memoryRoomRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.rooms)), nil
}

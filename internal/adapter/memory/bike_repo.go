package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

type BikeRepository struct {
	bikes map[uuid.UUID]*domain.Bike
	order []uuid.UUID
	mu    sync.RWMutex
}

func NewBikeRepository() *BikeRepository {
	return &BikeRepository{
		bikes: make(map[uuid.UUID]*domain.Bike),
		order: make([]uuid.UUID, 0),
	}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bikes[bike.ID]; exists {
		return nil, domain.ErrBikeRegistered
	}
	r.bikes[bike.ID] = bike
	r.order = append(r.order, bike.ID)
	return bike, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bike, ok := r.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}
	return bike, nil
}

// GetBikes returns bikes in registration order.
func (r *BikeRepository) GetBikes(ctx context.Context) ([]*domain.Bike, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bikes := make([]*domain.Bike, 0, len(r.order))
	for _, id := range r.order {
		bikes = append(bikes, r.bikes[id])
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bikes[bike.ID]; !ok {
		return nil, domain.ErrBikeNotFound
	}
	r.bikes[bike.ID] = bike
	return bike, nil
}

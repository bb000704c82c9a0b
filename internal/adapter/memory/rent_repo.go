package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

// RentRepository keeps open rents in start order and closed rents in
// return order.
type RentRepository struct {
	active    []*domain.Rent
	completed []*domain.Rent
	mu        sync.RWMutex
}

func NewRentRepository() *RentRepository {
	return &RentRepository{
		active:    make([]*domain.Rent, 0),
		completed: make([]*domain.Rent, 0),
	}
}

func (r *RentRepository) CreateRent(ctx context.Context, rent *domain.Rent) (*domain.Rent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.active {
		if existing.Bike.ID == rent.Bike.ID {
			return nil, domain.ErrUnavailableBike
		}
	}
	r.active = append(r.active, rent)
	return rent, nil
}

func (r *RentRepository) GetActiveRent(ctx context.Context, bikeID uuid.UUID, userEmail string) (*domain.Rent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rent := range r.active {
		if rent.Bike.ID == bikeID && rent.User.Email == userEmail {
			return rent, nil
		}
	}
	return nil, domain.ErrYouCantReturnThisBike
}

func (r *RentRepository) GetActiveRents(ctx context.Context) ([]*domain.Rent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rents := make([]*domain.Rent, len(r.active))
	copy(rents, r.active)
	return rents, nil
}

func (r *RentRepository) GetCompletedRents(ctx context.Context) ([]*domain.Rent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rents := make([]*domain.Rent, len(r.completed))
	copy(rents, r.completed)
	return rents, nil
}

func (r *RentRepository) CountActiveRentsByUser(ctx context.Context, userEmail string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, rent := range r.active {
		if rent.User.Email == userEmail {
			count++
		}
	}
	return count, nil
}

func (r *RentRepository) CloseRent(ctx context.Context, rentID uuid.UUID, end time.Time, amount float64) (*domain.Rent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rent := range r.active {
		if rent.ID != rentID {
			continue
		}
		rent.End = end
		rent.Amount = amount
		rent.Status = domain.RentCompleted

		r.active = append(r.active[:i], r.active[i+1:]...)
		r.completed = append(r.completed, rent)
		return rent, nil
	}
	return nil, domain.ErrYouCantReturnThisBike
}

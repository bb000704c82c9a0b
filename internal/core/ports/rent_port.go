package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

type RentRepository interface {
	CreateRent(ctx context.Context, rent *domain.Rent) (*domain.Rent, error)
	// GetActiveRent matches on both the bike and the renting user.
	GetActiveRent(ctx context.Context, bikeID uuid.UUID, userEmail string) (*domain.Rent, error)
	GetActiveRents(ctx context.Context) ([]*domain.Rent, error)
	GetCompletedRents(ctx context.Context) ([]*domain.Rent, error)
	CountActiveRentsByUser(ctx context.Context, userEmail string) (int, error)
	CloseRent(ctx context.Context, rentID uuid.UUID, end time.Time, amount float64) (*domain.Rent, error)
}

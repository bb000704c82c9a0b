package ports

import (
	"context"

	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

type RentalService interface {
	FindUser(ctx context.Context, email string) (*domain.User, error)
	RegisterUser(ctx context.Context, user *domain.User) error
	RemoveUser(ctx context.Context, email string) error
	Authenticate(ctx context.Context, email, password string) bool

	RegisterBike(ctx context.Context, bike *domain.Bike) error
	FindBike(ctx context.Context, bikeID string) (*domain.Bike, error)
	Bikes(ctx context.Context) ([]*domain.Bike, error)
	MoveBikeTo(ctx context.Context, bikeID string, location domain.Location) error

	RentBike(ctx context.Context, bikeID, userEmail string) error
	ReturnBike(ctx context.Context, bikeID, userEmail string) (float64, error)
	ActiveRents(ctx context.Context) ([]*domain.Rent, error)
	CompletedRents(ctx context.Context) ([]*domain.Rent, error)
}

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sm8ta/webike_rental_service/internal/core/domain"
	"github.com/sm8ta/webike_rental_service/internal/core/ports"
)

var _ ports.RentalService = (*RentalService)(nil)

// RentalService owns users, bikes and rents. Every operation that mutates
// state runs under mu, so the availability check in RentBike and the rent
// lookup in ReturnBike cannot interleave with another caller.
type RentalService struct {
	userRepo ports.UserRepository
	bikeRepo ports.BikeRepository
	rentRepo ports.RentRepository
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
	validate *validator.Validate
	clock    clockwork.Clock

	mu sync.Mutex
}

func NewRentalService(
	userRepo ports.UserRepository,
	bikeRepo ports.BikeRepository,
	rentRepo ports.RentRepository,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	validate *validator.Validate,
	clock clockwork.Clock,
) *RentalService {
	return &RentalService{
		userRepo: userRepo,
		bikeRepo: bikeRepo,
		rentRepo: rentRepo,
		logger:   logger,
		metrics:  metrics,
		validate: validate,
		clock:    clock,
	}
}

func (s *RentalService) FindUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		s.fail("find_user", "User lookup failed", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}
	return user, nil
}

func (s *RentalService) RegisterUser(ctx context.Context, user *domain.User) error {
	if err := s.validate.Struct(user); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrValidation, err)
		s.fail("register_user", "User validation failed", err, nil)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepo.GetUserByEmail(ctx, user.Email); err == nil {
		s.fail("register_user", "Email already registered", domain.ErrEmailRegistered, map[string]interface{}{
			"email": user.Email,
		})
		return domain.ErrEmailRegistered
	}

	previousID, previousCreated := user.ID, user.CreatedAt
	user.ID = uuid.New()
	user.CreatedAt = s.clock.Now()

	if _, err := s.userRepo.CreateUser(ctx, user); err != nil {
		user.ID, user.CreatedAt = previousID, previousCreated
		s.fail("register_user", "Failed to register user", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	s.logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (s *RentalService) RemoveUser(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.userRepo.GetUserByEmail(ctx, email); err != nil {
		s.fail("remove_user", "Failed to remove user", err, map[string]interface{}{
			"email": email,
		})
		return err
	}

	active, err := s.rentRepo.CountActiveRentsByUser(ctx, email)
	if err != nil {
		s.fail("remove_user", "Failed to count user rents", err, map[string]interface{}{
			"email": email,
		})
		return err
	}
	if active > 0 {
		s.fail("remove_user", "User still renting", domain.ErrUserHasActiveRent, map[string]interface{}{
			"email":        email,
			"active_rents": active,
		})
		return domain.ErrUserHasActiveRent
	}

	if err := s.userRepo.DeleteUser(ctx, email); err != nil {
		s.fail("remove_user", "Failed to remove user", err, map[string]interface{}{
			"email": email,
		})
		return err
	}

	s.logger.Info("User removed successfully", map[string]interface{}{
		"email": email,
	})
	return nil
}

// Authenticate reports a plain password match. A missing user and a wrong
// password are both just false.
func (s *RentalService) Authenticate(ctx context.Context, email, password string) bool {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("Authentication failed", map[string]interface{}{
			"email":  email,
			"reason": err.Error(),
		})
		return false
	}
	if user.Password != password {
		s.logger.Warn("Authentication failed", map[string]interface{}{
			"email":  email,
			"reason": "password mismatch",
		})
		return false
	}

	s.logger.Debug("User authenticated", map[string]interface{}{
		"user_id": user.ID,
	})
	return true
}

func (s *RentalService) RegisterBike(ctx context.Context, bike *domain.Bike) error {
	if err := s.validate.Struct(bike); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrValidation, err)
		s.fail("register_bike", "Bike validation failed", err, nil)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if bike.ID != uuid.Nil {
		if _, err := s.bikeRepo.GetBikeByID(ctx, bike.ID); err == nil {
			s.fail("register_bike", "Bike already registered", domain.ErrBikeRegistered, map[string]interface{}{
				"bike_id": bike.ID,
			})
			return domain.ErrBikeRegistered
		}
	}

	previous := *bike
	now := s.clock.Now()
	bike.ID = uuid.New()
	bike.Available = true
	bike.CreatedAt = now
	bike.UpdatedAt = now

	if _, err := s.bikeRepo.CreateBike(ctx, bike); err != nil {
		*bike = previous
		s.fail("register_bike", "Failed to register bike", err, map[string]interface{}{
			"name": bike.Name,
		})
		return err
	}

	s.logger.Info("Bike registered successfully", map[string]interface{}{
		"bike_id": bike.ID,
		"name":    bike.Name,
		"rate":    bike.Rate,
	})
	return nil
}

func (s *RentalService) FindBike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bike, err := s.findBike(ctx, bikeID)
	if err != nil {
		s.fail("find_bike", "Bike lookup failed", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return nil, err
	}
	return bike, nil
}

func (s *RentalService) Bikes(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.GetBikes(ctx)
	if err != nil {
		s.fail("list_bikes", "Failed to list bikes", err, nil)
		return nil, err
	}
	return bikes, nil
}

func (s *RentalService) MoveBikeTo(ctx context.Context, bikeID string, location domain.Location) error {
	if err := s.validate.Struct(location); err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrValidation, err)
		s.fail("move_bike", "Location validation failed", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	bike, err := s.findBike(ctx, bikeID)
	if err != nil {
		s.fail("move_bike", "Failed to move bike", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return err
	}

	previousLocation, previousUpdated := bike.Location, bike.UpdatedAt
	bike.Location = &location
	bike.UpdatedAt = s.clock.Now()

	if _, err := s.bikeRepo.UpdateBike(ctx, bike); err != nil {
		bike.Location, bike.UpdatedAt = previousLocation, previousUpdated
		s.fail("move_bike", "Failed to move bike", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return err
	}

	s.logger.Info("Bike moved", map[string]interface{}{
		"bike_id":   bike.ID,
		"latitude":  location.Latitude,
		"longitude": location.Longitude,
	})
	return nil
}

func (s *RentalService) RentBike(ctx context.Context, bikeID, userEmail string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := map[string]interface{}{
		"bike_id": bikeID,
		"email":   userEmail,
	}

	bike, err := s.findBike(ctx, bikeID)
	if err != nil {
		s.fail("rent_bike", "Failed to rent bike", err, fields)
		return err
	}
	user, err := s.userRepo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		s.fail("rent_bike", "Failed to rent bike", err, fields)
		return err
	}
	if !bike.Available {
		s.fail("rent_bike", "Bike is not available", domain.ErrUnavailableBike, fields)
		return domain.ErrUnavailableBike
	}

	now := s.clock.Now()
	rent := domain.NewRent(bike, user, now)

	bike.Available = false
	bike.UpdatedAt = now
	if _, err := s.bikeRepo.UpdateBike(ctx, bike); err != nil {
		bike.Available = true
		s.fail("rent_bike", "Failed to mark bike rented", err, fields)
		return err
	}

	if _, err := s.rentRepo.CreateRent(ctx, rent); err != nil {
		bike.Available = true
		if _, rbErr := s.bikeRepo.UpdateBike(ctx, bike); rbErr != nil {
			s.logger.Error("Failed to restore bike availability", map[string]interface{}{
				"error":   rbErr.Error(),
				"bike_id": bikeID,
			})
		}
		s.fail("rent_bike", "Failed to create rent", err, fields)
		return err
	}

	s.metrics.RecordRentStarted()
	s.logger.Info("Bike rented", map[string]interface{}{
		"rent_id": rent.ID,
		"bike_id": bike.ID,
		"user_id": user.ID,
		"start":   rent.Start,
	})
	return nil
}

// ReturnBike closes the rent opened by exactly this (bike, user) pair and
// returns elapsed hours times the bike's hourly rate.
func (s *RentalService) ReturnBike(ctx context.Context, bikeID, userEmail string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fields := map[string]interface{}{
		"bike_id": bikeID,
		"email":   userEmail,
	}

	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.fail("return_bike", "No rent for this bike", domain.ErrYouCantReturnThisBike, fields)
		return 0, domain.ErrYouCantReturnThisBike
	}

	rent, err := s.rentRepo.GetActiveRent(ctx, bikeUUID, userEmail)
	if err != nil {
		s.fail("return_bike", "No rent for this bike", err, fields)
		return 0, err
	}

	end := s.clock.Now()
	amount := rent.Cost(end)

	if _, err := s.rentRepo.CloseRent(ctx, rent.ID, end, amount); err != nil {
		s.fail("return_bike", "Failed to close rent", err, fields)
		return 0, err
	}

	bike := rent.Bike
	bike.Available = true
	bike.UpdatedAt = end
	if _, err := s.bikeRepo.UpdateBike(ctx, bike); err != nil {
		s.logger.Error("Failed to mark bike available", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}

	s.metrics.RecordRentReturned(amount, end.Sub(rent.Start))
	s.logger.Info("Bike returned", map[string]interface{}{
		"rent_id": rent.ID,
		"bike_id": bike.ID,
		"hours":   rent.ElapsedHours(end),
		"amount":  amount,
	})
	return amount, nil
}

func (s *RentalService) ActiveRents(ctx context.Context) ([]*domain.Rent, error) {
	rents, err := s.rentRepo.GetActiveRents(ctx)
	if err != nil {
		s.fail("list_rents", "Failed to list active rents", err, nil)
		return nil, err
	}
	return rents, nil
}

func (s *RentalService) CompletedRents(ctx context.Context) ([]*domain.Rent, error) {
	rents, err := s.rentRepo.GetCompletedRents(ctx)
	if err != nil {
		s.fail("list_rents", "Failed to list completed rents", err, nil)
		return nil, err
	}
	return rents, nil
}

// findBike treats an id that is not a UUID as unknown.
func (s *RentalService) findBike(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		return nil, domain.ErrBikeNotFound
	}
	return s.bikeRepo.GetBikeByID(ctx, bikeUUID)
}

func (s *RentalService) fail(operation, msg string, err error, fields map[string]interface{}) {
	logFields := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		logFields[k] = v
	}
	logFields["error"] = err.Error()
	logFields["operation"] = operation

	s.logger.Error(msg, logFields)
	s.metrics.RecordFailure(operation, err)
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm8ta/webike_rental_service/internal/core/domain"
)

func newBike() *domain.Bike {
	b := domain.NewBike("caloi", domain.Mountain, 1, 1, 10, "", 5, nil)
	b.ID = uuid.New()
	return b
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	user := domain.NewUser("Jose", "jose@mail.com", "1234")

	created, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.Same(t, user, created)

	_, err = repo.CreateUser(ctx, domain.NewUser("Other", "jose@mail.com", "x"))
	assert.ErrorIs(t, err, domain.ErrEmailRegistered)

	found, err := repo.GetUserByEmail(ctx, "jose@mail.com")
	require.NoError(t, err)
	assert.Same(t, user, found)

	require.NoError(t, repo.DeleteUser(ctx, "jose@mail.com"))
	_, err = repo.GetUserByEmail(ctx, "jose@mail.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.ErrorIs(t, repo.DeleteUser(ctx, "jose@mail.com"), domain.ErrUserNotFound)
}

func TestBikeRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBikeRepository()
	first, second := newBike(), newBike()

	_, err := repo.CreateBike(ctx, first)
	require.NoError(t, err)
	_, err = repo.CreateBike(ctx, second)
	require.NoError(t, err)
	_, err = repo.CreateBike(ctx, first)
	assert.ErrorIs(t, err, domain.ErrBikeRegistered)

	found, err := repo.GetBikeByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Same(t, second, found)

	_, err = repo.GetBikeByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)

	bikes, err := repo.GetBikes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Bike{first, second}, bikes)

	_, err = repo.UpdateBike(ctx, newBike())
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestRentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRentRepository()
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	jose := domain.NewUser("Jose", "jose@mail.com", "1234")
	maria := domain.NewUser("Maria", "maria@mail.com", "abcd")
	bikeA, bikeB := newBike(), newBike()

	rentA := domain.NewRent(bikeA, jose, start)
	rentB := domain.NewRent(bikeB, jose, start.Add(time.Minute))
	_, err := repo.CreateRent(ctx, rentA)
	require.NoError(t, err)
	_, err = repo.CreateRent(ctx, rentB)
	require.NoError(t, err)

	_, err = repo.CreateRent(ctx, domain.NewRent(bikeA, maria, start))
	assert.ErrorIs(t, err, domain.ErrUnavailableBike)

	found, err := repo.GetActiveRent(ctx, bikeA.ID, jose.Email)
	require.NoError(t, err)
	assert.Same(t, rentA, found)

	_, err = repo.GetActiveRent(ctx, bikeA.ID, maria.Email)
	assert.ErrorIs(t, err, domain.ErrYouCantReturnThisBike)

	count, err := repo.CountActiveRentsByUser(ctx, jose.Email)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	end := start.Add(2 * time.Hour)
	closed, err := repo.CloseRent(ctx, rentA.ID, end, 20)
	require.NoError(t, err)
	assert.Equal(t, end, closed.End)
	assert.Equal(t, 20.0, closed.Amount)
	assert.Equal(t, domain.RentCompleted, closed.Status)

	_, err = repo.CloseRent(ctx, rentA.ID, end, 20)
	assert.ErrorIs(t, err, domain.ErrYouCantReturnThisBike)

	active, err := repo.GetActiveRents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Rent{rentB}, active)

	completed, err := repo.GetCompletedRents(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*domain.Rent{rentA}, completed)
}

func TestRentRepositorySnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRentRepository()
	rent := domain.NewRent(newBike(), domain.NewUser("Jose", "jose@mail.com", "1234"), time.Now())
	_, err := repo.CreateRent(ctx, rent)
	require.NoError(t, err)

	snapshot, err := repo.GetActiveRents(ctx)
	require.NoError(t, err)
	snapshot[0] = nil

	active, err := repo.GetActiveRents(ctx)
	require.NoError(t, err)
	assert.Same(t, rent, active[0])
}

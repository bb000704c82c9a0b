package domain

import (
	"time"

	"github.com/google/uuid"
)

type RentStatus string

const (
	RentActive    RentStatus = "active"
	RentCompleted RentStatus = "completed"
)

const millisPerHour = float64(time.Hour / time.Millisecond)

type Rent struct {
	ID     uuid.UUID  `json:"id"`
	Bike   *Bike      `json:"bike"`
	User   *User      `json:"user"`
	Start  time.Time  `json:"start"`
	End    time.Time  `json:"end,omitempty"`
	Amount float64    `json:"amount"`
	Status RentStatus `json:"status"`
}

func NewRent(bike *Bike, user *User, start time.Time) *Rent {
	return &Rent{
		ID:     uuid.New(),
		Bike:   bike,
		User:   user,
		Start:  start,
		Status: RentActive,
	}
}

// ElapsedHours is measured in whole milliseconds, so fractional hours are
// billed proportionally. A clock that went backwards yields zero.
func (r *Rent) ElapsedHours(at time.Time) float64 {
	millis := at.Sub(r.Start).Milliseconds()
	if millis < 0 {
		return 0
	}
	return float64(millis) / millisPerHour
}

func (r *Rent) Cost(at time.Time) float64 {
	return r.ElapsedHours(at) * r.Bike.Rate
}

func (r *Rent) IsActive() bool {
	return r.Status == RentActive
}

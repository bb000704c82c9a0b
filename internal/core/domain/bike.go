package domain

import (
	"time"

	"github.com/google/uuid"
)

type Bike struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=100"`
	Type        BikeType  `json:"type" validate:"required,max=50"`
	BodySize    float64   `json:"body_size" validate:"gte=0"`
	MaxLoad     float64   `json:"max_load" validate:"gte=0"`
	Rate        float64   `json:"rate" validate:"gte=0"` // per hour
	Description string    `json:"description" validate:"max=1000"`
	Ratings     float64   `json:"ratings" validate:"gte=0,lte=5"`
	ImageURLs   []string  `json:"image_urls" validate:"dive,url"`
	Available   bool      `json:"available"`
	Location    *Location `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BikeType string

const (
	BMX      BikeType = "bmx"
	Mountain BikeType = "mountain bike"
	Road     BikeType = "road"
	City     BikeType = "city"
)

func NewBike(
	name string,
	bikeType BikeType,
	bodySize float64,
	maxLoad float64,
	rate float64,
	description string,
	ratings float64,
	imageURLs []string,
) *Bike {
	return &Bike{
		Name:        name,
		Type:        bikeType,
		BodySize:    bodySize,
		MaxLoad:     maxLoad,
		Rate:        rate,
		Description: description,
		Ratings:     ratings,
		ImageURLs:   imageURLs,
		Available:   true,
	}
}

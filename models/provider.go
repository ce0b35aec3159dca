package models

import "time"

// Location is a provider's place of business.
type Location struct {
	City string  `bson:"city" json:"city"`
	Lat  float64 `bson:"lat" json:"lat"`
	Lng  float64 `bson:"lng" json:"lng"`
}

// Service is one bookable entry in a provider's catalogue.
type Service struct {
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
	Category     string  `bson:"category" json:"category"`
	DurationMins int     `bson:"durationMins" json:"durationMins"`
}

// TimeSlot is an opening window for one weekday, "HH:MM" local time.
type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Review is a customer review embedded in the provider document.
type Review struct {
	UserID  string    `bson:"userId" json:"userId"`
	Rating  float64   `bson:"rating" json:"rating"`
	Comment string    `bson:"comment" json:"comment"`
	Date    time.Time `bson:"date" json:"date"`
}

// Provider is a service professional's public profile. Providers are
// read-only external data for this service; their account id doubles as the
// provider document id.
type Provider struct {
	ID           string               `bson:"id" json:"id"`
	Name         string               `bson:"name" json:"name"`
	PhotoURL     string               `bson:"photoUrl" json:"photoUrl"`
	Location     *Location            `bson:"location,omitempty" json:"location,omitempty"`
	Bio          string               `bson:"bio" json:"bio"`
	Categories   []string             `bson:"categories" json:"categories"`
	Services     []Service            `bson:"services" json:"services"`
	Availability map[string]*TimeSlot `bson:"availability" json:"availability"`
	Ratings      float64              `bson:"ratings" json:"ratings"`
	Reviews      []Review             `bson:"reviews" json:"reviews"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt"`
}

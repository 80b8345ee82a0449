package seeder

import "time"

const (
	DefaultSeed             = 42
	DefaultMaxEmailAttempts = 100
)

type SeedConfig struct {
	Variant          string
	Seed             uint64
	Now              time.Time // upper bound for every generated timestamp
	Counts           Counts
	MaxEmailAttempts int
	Quiet            bool
}

type Counts struct {
	Users            int
	AddressesPerUser int
	Items            int
	Transactions     int // rentals in the rental variant
	Reviews          int
	MaxRentalDays    int
}

func DefaultCounts() Counts {
	return Counts{
		Users:            500,
		AddressesPerUser: 2,
		Items:            1000,
		Transactions:     2000,
		Reviews:          1500,
		MaxRentalDays:    14,
	}
}

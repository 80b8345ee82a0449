package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/shopspring/decimal"
)

const (
	maxRentalQuantity = 5
	reviewWindow      = 30 * 24 * time.Hour
	day               = 24 * time.Hour
)

func GenerateRentalUsers(src *Source, count, maxEmailAttempts int, now time.Time) ([]model.RentalUser, error) {
	if err := checkCount("users", count); err != nil {
		return nil, err
	}

	joinedFrom := now.AddDate(-2, 0, 0)
	joinedTo := now.AddDate(-1, 0, 0)
	users := make([]model.RentalUser, 0, count)
	used := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id := int64(i + 1)
		email, err := uniqueEmail(src.Email, used, id, maxEmailAttempts)
		if err != nil {
			return nil, err
		}

		user := model.RentalUser{
			ID:          id,
			Email:       email,
			PhoneNumber: src.Phone(),
			FirstName:   src.FirstName(),
			LastName:    src.LastName(),
		}
		if src.Bool() {
			nick := src.Username()
			user.NickName = &nick
		}
		user.PasswordHash = hashPassword(src.Password(passwordLength))
		user.CreatedAt = src.TimeBetween(joinedFrom, joinedTo)
		users = append(users, user)
	}
	return users, nil
}

// hashPassword stands in for a credential hash. Salted schemes would break
// reproducibility of the output.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func GenerateRentalAddresses(src *Source, users []model.RentalUser, maxPerUser int) ([]model.Address, error) {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return generateAddresses(src, ids, maxPerUser)
}

func GenerateRentalItems(src *Source, users []model.RentalUser, categories []model.Category, count int, now time.Time) ([]model.RentalItem, error) {
	if err := checkCount("items", count); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &DependencyError{Entity: "items", Dependency: "users"}
	}
	if len(categories) == 0 {
		return nil, &DependencyError{Entity: "items", Dependency: "categories"}
	}

	yearAgo := now.AddDate(-1, 0, 0)
	items := make([]model.RentalItem, 0, count)
	for i := 0; i < count; i++ {
		owner := Pick(src, users)
		category := Pick(src, categories)
		listedFrom := yearAgo
		if owner.CreatedAt.After(listedFrom) {
			listedFrom = owner.CreatedAt
		}
		items = append(items, model.RentalItem{
			ID:          int64(i + 1),
			OwnerID:     owner.ID,
			CategoryID:  category.ID,
			Name:        Truncate(src.ProductName(), itemNameMax),
			Description: src.Text(itemDescMax),
			PricePerDay: decimal.New(src.Int64Range(minPriceCents, maxPriceCents), -2),
			Quantity:    src.IntRange(1, maxRentalQuantity),
			Available:   src.Chance(2, 3),
			DateListed:  src.TimeBetween(listedFrom, now),
		})
	}
	return items, nil
}

func GenerateRentals(src *Source, users []model.RentalUser, items []model.RentalItem, count, maxDays int, now time.Time) ([]model.Rental, error) {
	if err := checkCount("rentals", count); err != nil {
		return nil, err
	}
	if err := checkCount("rental days", maxDays); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &DependencyError{Entity: "rentals", Dependency: "users"}
	}
	if len(items) == 0 {
		return nil, &DependencyError{Entity: "rentals", Dependency: "items"}
	}

	rentals := make([]model.Rental, 0, count)
	for i := 0; i < count; i++ {
		item := Pick(src, items)
		renter := pickRenter(src, users, item.OwnerID)
		days := src.IntRange(1, maxDays)
		start := src.TimeBetween(item.DateListed, now)
		end := start.Add(time.Duration(days) * day)

		rentals = append(rentals, model.Rental{
			ID:         int64(i + 1),
			ItemID:     item.ID,
			RenterID:   renter.ID,
			StartDate:  start,
			EndDate:    end,
			Status:     rentalStatus(src, end, now),
			TotalPrice: item.PricePerDay.Mul(decimal.NewFromInt(int64(days))).Round(2),
		})
	}
	return rentals, nil
}

// pickRenter avoids owners renting their own item whenever another user exists.
func pickRenter(src *Source, users []model.RentalUser, ownerID int64) model.RentalUser {
	i := src.Index(len(users))
	if users[i].ID == ownerID && len(users) > 1 {
		i = (i + 1) % len(users)
	}
	return users[i]
}

var finishedStatuses = []string{model.RentalCompleted, model.RentalCancelled, model.RentalRejected}
var finishedWeights = []int{3, 1, 1}
var openStatuses = []string{model.RentalPending, model.RentalApproved}

func rentalStatus(src *Source, end, now time.Time) string {
	if end.After(now) {
		return Pick(src, openStatuses)
	}
	return finishedStatuses[src.Weighted(finishedWeights)]
}

// GenerateRentalReviews reviews completed rentals only, written by the renter
// within reviewWindow of the rental's end.
func GenerateRentalReviews(src *Source, rentals []model.Rental, count int, now time.Time) ([]model.RentalReview, error) {
	if err := checkCount("reviews", count); err != nil {
		return nil, err
	}

	var completed []model.Rental
	for _, r := range rentals {
		if r.Status == model.RentalCompleted {
			completed = append(completed, r)
		}
	}
	if len(completed) == 0 {
		return nil, &DependencyError{Entity: "reviews", Dependency: "completed rentals"}
	}

	reviews := make([]model.RentalReview, 0, count)
	for i := 0; i < count; i++ {
		rental := Pick(src, completed)
		latest := rental.EndDate.Add(reviewWindow)
		if latest.After(now) {
			latest = now
		}
		reviews = append(reviews, model.RentalReview{
			ID:         int64(i + 1),
			RentalID:   rental.ID,
			ReviewerID: rental.RenterID,
			Rating:     src.IntRange(1, 5),
			Comment:    src.Text(reviewCommentMax),
			CreatedAt:  src.TimeBetween(rental.EndDate, latest),
		})
	}
	return reviews, nil
}

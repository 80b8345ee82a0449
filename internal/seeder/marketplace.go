package seeder

import (
	"time"

	"github.com/Rana718/seedgen/internal/model"
)

const (
	passwordLength   = 12
	itemNameMax      = 255
	itemDescMax      = 200
	reviewCommentMax = 150
	minPriceCents    = 500
	maxPriceCents    = 20000
	maxItemQuantity  = 10
)

func GenerateUsers(src *Source, count, maxEmailAttempts int) ([]model.User, error) {
	if err := checkCount("users", count); err != nil {
		return nil, err
	}

	users := make([]model.User, 0, count)
	used := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id := int64(i + 1)
		email, err := uniqueEmail(src.Email, used, id, maxEmailAttempts)
		if err != nil {
			return nil, err
		}

		user := model.User{
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
		user.Password = src.Password(passwordLength)
		users = append(users, user)
	}
	return users, nil
}

// uniqueEmail draws from next until it yields an address not in used.
func uniqueEmail(next func() string, used map[string]struct{}, userID int64, maxAttempts int) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxEmailAttempts
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		email := next()
		if _, taken := used[email]; taken {
			continue
		}
		used[email] = struct{}{}
		return email, nil
	}
	return "", &EmailExhaustedError{UserID: userID, Attempts: maxAttempts}
}

func GenerateAddresses(src *Source, users []model.User, maxPerUser int) ([]model.Address, error) {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return generateAddresses(src, ids, maxPerUser)
}

func generateAddresses(src *Source, userIDs []int64, maxPerUser int) ([]model.Address, error) {
	if len(userIDs) == 0 {
		return nil, &DependencyError{Entity: "addresses", Dependency: "users"}
	}
	if err := checkCount("addresses per user", maxPerUser); err != nil {
		return nil, err
	}

	addresses := make([]model.Address, 0, len(userIDs)*(maxPerUser+1)/2)
	nextID := int64(1)
	for _, userID := range userIDs {
		n := src.IntRange(1, maxPerUser)
		for j := 0; j < n; j++ {
			addresses = append(addresses, model.Address{
				ID:      nextID,
				UserID:  userID,
				Street:  Truncate(src.Street(), 255),
				City:    Truncate(src.City(), 100),
				State:   Truncate(src.State(), 100),
				Zipcode: Truncate(src.Zip(), 20),
				Country: Truncate(src.Country(), 100),
			})
			nextID++
		}
	}
	return addresses, nil
}

// GenerateCategories returns a copy of the fixed catalog.
func GenerateCategories() []model.Category {
	categories := make([]model.Category, len(model.Categories))
	copy(categories, model.Categories)
	return categories
}

func GenerateItems(src *Source, categories []model.Category, count int, now time.Time) ([]model.Item, error) {
	if err := checkCount("items", count); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, &DependencyError{Entity: "items", Dependency: "categories"}
	}

	listedFrom := now.AddDate(-1, 0, 0)
	items := make([]model.Item, 0, count)
	for i := 0; i < count; i++ {
		category := Pick(src, categories)
		items = append(items, model.Item{
			ID:          int64(i + 1),
			Name:        Truncate(src.ProductName(), itemNameMax),
			Description: src.Text(itemDescMax),
			CategoryID:  category.ID,
			Price:       src.Int64Range(minPriceCents, maxPriceCents),
			DateListed:  src.TimeBetween(listedFrom, now),
			Quantity:    src.IntRange(1, maxItemQuantity),
			Available:   src.Chance(2, 3),
		})
	}
	return items, nil
}

func GenerateTransactions(src *Source, users []model.User, items []model.Item, count int, now time.Time) ([]model.Transaction, error) {
	if err := checkCount("transactions", count); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &DependencyError{Entity: "transactions", Dependency: "users"}
	}
	if len(items) == 0 {
		return nil, &DependencyError{Entity: "transactions", Dependency: "items"}
	}

	transactions := make([]model.Transaction, 0, count)
	for i := 0; i < count; i++ {
		item := Pick(src, items)
		user := Pick(src, users)
		transactions = append(transactions, model.Transaction{
			ID:     int64(i + 1),
			UserID: user.ID,
			Type:   Pick(src, model.TransactionTypes),
			ItemID: item.ID,
			Date:   src.TimeBetween(item.DateListed, now),
			Amount: item.Price * int64(src.IntRange(1, item.Quantity)),
		})
	}
	return transactions, nil
}

func GenerateReviews(src *Source, users []model.User, count int) ([]model.Review, error) {
	if err := checkCount("reviews", count); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &DependencyError{Entity: "reviews", Dependency: "users"}
	}

	reviews := make([]model.Review, 0, count)
	for i := 0; i < count; i++ {
		user := Pick(src, users)
		reviews = append(reviews, model.Review{
			ID:      int64(i + 1),
			Comment: src.Text(reviewCommentMax),
			Star:    src.IntRange(1, 5),
			UserID:  user.ID,
		})
	}
	return reviews, nil
}

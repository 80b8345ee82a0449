package model

import (
	"time"

	"github.com/Rana718/seedgen/internal/types"
	"github.com/shopspring/decimal"
)

// Rental rows: same entities as the marketplace schema under the names the
// rental backend uses, with per-day pricing and dated rentals in place of
// one-off transactions. Addresses and categories keep the marketplace
// structs since their shape is identical.

const (
	RentalPending   = "pending"
	RentalApproved  = "approved"
	RentalCompleted = "completed"
	RentalCancelled = "cancelled"
	RentalRejected  = "rejected"
)

type RentalUser struct {
	ID           int64
	Email        string
	PhoneNumber  string
	FirstName    string
	LastName     string
	NickName     *string
	PasswordHash string
	CreatedAt    time.Time
}

func (u RentalUser) Values() []any {
	return []any{u.ID, u.Email, u.PhoneNumber, u.FirstName, u.LastName, u.NickName, u.PasswordHash, u.CreatedAt}
}

type RentalItem struct {
	ID          int64
	OwnerID     int64
	CategoryID  int64
	Name        string
	Description string
	PricePerDay decimal.Decimal
	Quantity    int
	Available   bool
	DateListed  time.Time
}

func (i RentalItem) Values() []any {
	return []any{i.ID, i.OwnerID, i.CategoryID, i.Name, i.Description, i.PricePerDay, i.Quantity, i.Available, i.DateListed}
}

type Rental struct {
	ID         int64
	ItemID     int64
	RenterID   int64
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	TotalPrice decimal.Decimal
}

func (r Rental) Values() []any {
	return []any{r.ID, r.ItemID, r.RenterID, r.StartDate, r.EndDate, r.Status, r.TotalPrice}
}

type RentalReview struct {
	ID         int64
	RentalID   int64
	ReviewerID int64
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func (r RentalReview) Values() []any {
	return []any{r.ID, r.RentalID, r.ReviewerID, r.Rating, r.Comment, r.CreatedAt}
}

var (
	RentalUsersTable = types.SchemaTable{
		Name: "users",
		Columns: []types.SchemaColumn{
			{Name: "user_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "email", Kind: types.KindString, Size: 255, IsUnique: true},
			{Name: "phone_number", Kind: types.KindString, Size: 20},
			{Name: "first_name", Kind: types.KindString, Size: 100},
			{Name: "last_name", Kind: types.KindString, Size: 100},
			{Name: "nick_name", Kind: types.KindString, Size: 100, Nullable: true},
			{Name: "password_hash", Kind: types.KindString, Size: 255},
			{Name: "created_at", Kind: types.KindTime},
		},
	}

	RentalAddressesTable = types.SchemaTable{
		Name: "addresses",
		Columns: []types.SchemaColumn{
			{Name: "address_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "user_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "user_id"},
			{Name: "street", Kind: types.KindString, Size: 255},
			{Name: "city", Kind: types.KindString, Size: 100},
			{Name: "state", Kind: types.KindString, Size: 100},
			{Name: "zipcode", Kind: types.KindString, Size: 20},
			{Name: "country", Kind: types.KindString, Size: 100},
		},
	}

	RentalCategoriesTable = types.SchemaTable{
		Name: "categories",
		Columns: []types.SchemaColumn{
			{Name: "category_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "name", Kind: types.KindString, Size: 100},
			{Name: "description", Kind: types.KindText},
		},
	}

	RentalItemsTable = types.SchemaTable{
		Name: "items",
		Columns: []types.SchemaColumn{
			{Name: "item_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "owner_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "user_id"},
			{Name: "category_id", Kind: types.KindInt, ForeignKeyTable: "categories", ForeignKeyColumn: "category_id"},
			{Name: "name", Kind: types.KindString, Size: 255},
			{Name: "description", Kind: types.KindText},
			{Name: "price_per_day", Kind: types.KindDecimal},
			{Name: "quantity", Kind: types.KindInt},
			{Name: "available", Kind: types.KindBool},
			{Name: "date_listed", Kind: types.KindTime},
		},
	}

	RentalsTable = types.SchemaTable{
		Name: "rentals",
		Columns: []types.SchemaColumn{
			{Name: "rental_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "item_id", Kind: types.KindInt, ForeignKeyTable: "items", ForeignKeyColumn: "item_id"},
			{Name: "renter_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "user_id"},
			{Name: "start_date", Kind: types.KindTime},
			{Name: "end_date", Kind: types.KindTime},
			{Name: "status", Kind: types.KindString, Size: 20},
			{Name: "total_price", Kind: types.KindDecimal},
		},
	}

	RentalReviewsTable = types.SchemaTable{
		Name: "reviews",
		Columns: []types.SchemaColumn{
			{Name: "review_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "rental_id", Kind: types.KindInt, ForeignKeyTable: "rentals", ForeignKeyColumn: "rental_id"},
			{Name: "reviewer_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "user_id"},
			{Name: "rating", Kind: types.KindInt},
			{Name: "comment", Kind: types.KindText},
			{Name: "created_at", Kind: types.KindTime},
		},
	}
)

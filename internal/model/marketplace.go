package model

import (
	"time"

	"github.com/Rana718/seedgen/internal/types"
)

// Marketplace rows. Column names match the loader scripts of the
// marketplace schema exactly.

type User struct {
	ID          int64
	Email       string
	PhoneNumber string
	FirstName   string
	LastName    string
	NickName    *string
	Password    string
}

func (u User) Values() []any {
	return []any{u.ID, u.Email, u.PhoneNumber, u.FirstName, u.LastName, u.NickName, u.Password}
}

type Address struct {
	ID      int64
	UserID  int64
	Street  string
	City    string
	State   string
	Zipcode string
	Country string
}

func (a Address) Values() []any {
	return []any{a.ID, a.UserID, a.Street, a.City, a.State, a.Zipcode, a.Country}
}

type Category struct {
	ID          int64
	Name        string
	Description string
}

func (c Category) Values() []any {
	return []any{c.ID, c.Name, c.Description}
}

type Item struct {
	ID          int64
	Name        string
	Description string
	Image       []byte
	CategoryID  int64
	Price       int64 // cents
	DateListed  time.Time
	Quantity    int
	Available   bool
}

func (i Item) Values() []any {
	var image any
	if i.Image != nil {
		image = i.Image
	}
	return []any{i.ID, i.Name, i.Description, image, i.CategoryID, i.Price, i.DateListed, i.Quantity, i.Available}
}

type Transaction struct {
	ID     int64
	UserID int64
	Type   string
	ItemID int64
	Date   time.Time
	Amount int64
}

func (t Transaction) Values() []any {
	return []any{t.ID, t.UserID, t.Type, t.ItemID, t.Date, t.Amount}
}

type Review struct {
	ID      int64
	Comment string
	Star    int
	UserID  int64
}

func (r Review) Values() []any {
	return []any{r.ID, r.Comment, r.Star, r.UserID}
}

var (
	UsersTable = types.SchemaTable{
		Name: "users",
		Columns: []types.SchemaColumn{
			{Name: "u_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "u_email", Kind: types.KindString, Size: 255, IsUnique: true},
			{Name: "u_phone_number", Kind: types.KindString, Size: 20},
			{Name: "u_first_name", Kind: types.KindString, Size: 100},
			{Name: "u_last_name", Kind: types.KindString, Size: 100},
			{Name: "u_nick_name", Kind: types.KindString, Size: 100, Nullable: true},
			{Name: "u_password", Kind: types.KindString, Size: 255},
		},
	}

	AddressesTable = types.SchemaTable{
		Name: "addresses",
		Columns: []types.SchemaColumn{
			{Name: "a_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "u_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "u_id"},
			{Name: "a_street", Kind: types.KindString, Size: 255},
			{Name: "a_city", Kind: types.KindString, Size: 100},
			{Name: "a_state", Kind: types.KindString, Size: 100},
			{Name: "a_zipcode", Kind: types.KindString, Size: 20},
			{Name: "a_country", Kind: types.KindString, Size: 100},
		},
	}

	CategoriesTable = types.SchemaTable{
		Name: "categories",
		Columns: []types.SchemaColumn{
			{Name: "c_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "c_name", Kind: types.KindString, Size: 100},
			{Name: "c_description", Kind: types.KindText},
		},
	}

	ItemsTable = types.SchemaTable{
		Name: "items",
		Columns: []types.SchemaColumn{
			{Name: "i_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "i_name", Kind: types.KindString, Size: 255},
			{Name: "i_description", Kind: types.KindText},
			{Name: "i_image", Kind: types.KindBytes, Nullable: true},
			{Name: "c_id", Kind: types.KindInt, ForeignKeyTable: "categories", ForeignKeyColumn: "c_id"},
			{Name: "i_price", Kind: types.KindInt},
			{Name: "i_date_listed", Kind: types.KindTime},
			{Name: "i_quantity", Kind: types.KindInt},
			{Name: "i_available", Kind: types.KindBool},
		},
	}

	TransactionsTable = types.SchemaTable{
		Name: "transactions",
		Columns: []types.SchemaColumn{
			{Name: "t_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "u_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "u_id"},
			{Name: "t_type", Kind: types.KindString, Size: 20},
			{Name: "i_id", Kind: types.KindInt, ForeignKeyTable: "items", ForeignKeyColumn: "i_id"},
			{Name: "t_date", Kind: types.KindTime},
			{Name: "t_amount", Kind: types.KindInt},
		},
	}

	ReviewsTable = types.SchemaTable{
		Name: "reviews",
		Columns: []types.SchemaColumn{
			{Name: "r_id", Kind: types.KindInt, IsPrimary: true},
			{Name: "r_comment", Kind: types.KindText},
			{Name: "r_star", Kind: types.KindInt},
			{Name: "u_id", Kind: types.KindInt, ForeignKeyTable: "users", ForeignKeyColumn: "u_id"},
		},
	}
)

var TransactionTypes = []string{"Purchase", "Sale", "Refund", "Rental"}

// Categories is the fixed catalog shared by both variants.
var Categories = []Category{
	{ID: 1, Name: "Electronics", Description: "Electronic devices and accessories"},
	{ID: 2, Name: "Outdoor Equipment", Description: "Camping and hiking gear"},
	{ID: 3, Name: "Tools", Description: "Power and hand tools"},
	{ID: 4, Name: "Sports Equipment", Description: "Sports and fitness gear"},
	{ID: 5, Name: "Musical Instruments", Description: "Instruments and audio equipment"},
	{ID: 6, Name: "Photography", Description: "Cameras and accessories"},
	{ID: 7, Name: "Party Supplies", Description: "Party decorations and equipment"},
	{ID: 8, Name: "Books", Description: "Books and reading materials"},
	{ID: 9, Name: "Gaming", Description: "Video games and consoles"},
	{ID: 10, Name: "Home & Garden", Description: "Home improvement and gardening tools"},
	{ID: 11, Name: "Vehicles", Description: "Cars, bikes, and other vehicles"},
	{ID: 12, Name: "Fashion", Description: "Clothing and accessories"},
}

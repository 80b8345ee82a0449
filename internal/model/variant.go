package model

import (
	"fmt"
	"strings"

	"github.com/Rana718/seedgen/internal/types"
)

const (
	VariantMarketplace = "marketplace"
	VariantRental      = "rental"
)

// TimeOrder states that Child.ChildTime must not precede the ParentTime of
// the row that Child.ForeignKey points at.
type TimeOrder struct {
	Child      string
	ForeignKey string
	ChildTime  string
	Parent     string
	ParentTime string
}

type Variant struct {
	Name       string
	Tables     []types.SchemaTable // generation order
	TimeOrders []TimeOrder
}

func (v Variant) Table(name string) (types.SchemaTable, bool) {
	for _, t := range v.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return types.SchemaTable{}, false
}

var Marketplace = Variant{
	Name: VariantMarketplace,
	Tables: []types.SchemaTable{
		UsersTable, AddressesTable, CategoriesTable, ItemsTable, TransactionsTable, ReviewsTable,
	},
	TimeOrders: []TimeOrder{
		{Child: "transactions", ForeignKey: "i_id", ChildTime: "t_date", Parent: "items", ParentTime: "i_date_listed"},
	},
}

var Rental = Variant{
	Name: VariantRental,
	Tables: []types.SchemaTable{
		RentalUsersTable, RentalAddressesTable, RentalCategoriesTable, RentalItemsTable, RentalsTable, RentalReviewsTable,
	},
	TimeOrders: []TimeOrder{
		{Child: "items", ForeignKey: "owner_id", ChildTime: "date_listed", Parent: "users", ParentTime: "created_at"},
		{Child: "rentals", ForeignKey: "item_id", ChildTime: "start_date", Parent: "items", ParentTime: "date_listed"},
		{Child: "reviews", ForeignKey: "rental_id", ChildTime: "created_at", Parent: "rentals", ParentTime: "end_date"},
	},
}

var Variants = []Variant{Marketplace, Rental}

func VariantByName(name string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q (supported: %s, %s)", name, VariantMarketplace, VariantRental)
}

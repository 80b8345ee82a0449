package seeder

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/Rana718/seedgen/internal/model"
	"github.com/Rana718/seedgen/internal/types"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newSeeder(t *testing.T, variant string, seed uint64, counts Counts) *Seeder {
	t.Helper()
	s, err := New(SeedConfig{Variant: variant, Seed: seed, Now: testNow, Counts: counts, Quiet: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestGenerateIsDeterministic(t *testing.T) {
	for _, variant := range []string{model.VariantMarketplace, model.VariantRental} {
		first, err := newSeeder(t, variant, 42, DefaultCounts()).Generate()
		if err != nil {
			t.Fatalf("%s: Generate: %v", variant, err)
		}
		second, err := newSeeder(t, variant, 42, DefaultCounts()).Generate()
		if err != nil {
			t.Fatalf("%s: Generate: %v", variant, err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: same seed produced different tables", variant)
		}

		other, err := newSeeder(t, variant, 43, DefaultCounts()).Generate()
		if err != nil {
			t.Fatalf("%s: Generate: %v", variant, err)
		}
		if reflect.DeepEqual(first[0].Rows, other[0].Rows) {
			t.Errorf("%s: different seeds produced identical users", variant)
		}
	}
}

func TestMarketplaceDefaults(t *testing.T) {
	tables, err := newSeeder(t, model.VariantMarketplace, 42, DefaultCounts()).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	want := []string{"users", "addresses", "categories", "items", "transactions", "reviews"}
	for i, table := range tables {
		if table.Name() != want[i] {
			t.Fatalf("table %d is %s, want %s", i, table.Name(), want[i])
		}
	}

	users := tables[0]
	if users.Len() != 500 {
		t.Fatalf("expected 500 users, got %d", users.Len())
	}
	emails := make(map[string]bool)
	for i, row := range users.Rows {
		if row[0] != int64(i+1) {
			t.Fatalf("user %d has id %v", i+1, row[0])
		}
		email := row[1].(string)
		if emails[email] {
			t.Fatalf("duplicate email %s", email)
		}
		emails[email] = true
		if n := len(row[6].(string)); n != passwordLength {
			t.Errorf("password length %d, want %d", n, passwordLength)
		}
	}

	addresses := tables[1]
	if addresses.Len() < 500 || addresses.Len() > 1000 {
		t.Errorf("expected between 500 and 1000 addresses, got %d", addresses.Len())
	}

	if tables[2].Len() != 12 {
		t.Errorf("expected 12 categories, got %d", tables[2].Len())
	}

	items := tables[3]
	if items.Len() != 1000 {
		t.Fatalf("expected 1000 items, got %d", items.Len())
	}
	yearAgo := testNow.AddDate(-1, 0, 0)
	for _, row := range items.Rows {
		if c := row[4].(int64); c < 1 || c > 12 {
			t.Fatalf("item references category %d", c)
		}
		if p := row[5].(int64); p < minPriceCents || p > maxPriceCents {
			t.Fatalf("item price %d out of range", p)
		}
		listed := row[6].(time.Time)
		if listed.Before(yearAgo) || listed.After(testNow) {
			t.Fatalf("item listed at %v", listed)
		}
		if q := row[7].(int); q < 1 || q > maxItemQuantity {
			t.Fatalf("item quantity %d", q)
		}
	}

	if tables[4].Len() != 2000 || tables[5].Len() != 1500 {
		t.Errorf("expected 2000 transactions and 1500 reviews, got %d and %d", tables[4].Len(), tables[5].Len())
	}
}

func TestTransactionAmountIsPriceMultiple(t *testing.T) {
	src := NewSource(8)
	users, err := GenerateUsers(src.Derive("users"), 10, 0)
	if err != nil {
		t.Fatalf("GenerateUsers: %v", err)
	}
	items, err := GenerateItems(src.Derive("items"), GenerateCategories(), 20, testNow)
	if err != nil {
		t.Fatalf("GenerateItems: %v", err)
	}
	txs, err := GenerateTransactions(src.Derive("transactions"), users, items, 200, testNow)
	if err != nil {
		t.Fatalf("GenerateTransactions: %v", err)
	}

	for _, tx := range txs {
		item := items[tx.ItemID-1]
		if tx.Amount%item.Price != 0 {
			t.Fatalf("amount %d is not a multiple of price %d", tx.Amount, item.Price)
		}
		if units := tx.Amount / item.Price; units < 1 || units > int64(item.Quantity) {
			t.Fatalf("amount covers %d units of a %d stock", units, item.Quantity)
		}
		if tx.Date.Before(item.DateListed) {
			t.Fatalf("transaction %d predates its item", tx.ID)
		}
	}
}

func TestRentalRules(t *testing.T) {
	tables, err := newSeeder(t, model.VariantRental, 42, DefaultCounts()).Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	items := make(map[int64][]any)
	for _, row := range tables[3].Rows {
		price := row[5].(decimal.Decimal)
		if price.LessThan(decimal.New(500, -2)) || price.GreaterThan(decimal.New(20000, -2)) {
			t.Fatalf("price_per_day %s out of range", price)
		}
		items[row[0].(int64)] = row
	}

	rentals := make(map[int64][]any)
	for _, row := range tables[4].Rows {
		item := items[row[1].(int64)]
		if row[2] == item[1] {
			t.Fatalf("rental %v: owner rents their own item", row[0])
		}
		start, end := row[3].(time.Time), row[4].(time.Time)
		days := int64(end.Sub(start) / (24 * time.Hour))
		if days < 1 || days > 14 {
			t.Fatalf("rental %v lasts %d days", row[0], days)
		}
		status := row[5].(string)
		if end.After(testNow) && status != model.RentalPending && status != model.RentalApproved {
			t.Fatalf("future rental %v has status %s", row[0], status)
		}
		want := item[5].(decimal.Decimal).Mul(decimal.NewFromInt(days))
		if !row[6].(decimal.Decimal).Equal(want) {
			t.Fatalf("rental %v total %s, want %s", row[0], row[6], want)
		}
		rentals[row[0].(int64)] = row
	}

	for _, row := range tables[5].Rows {
		rental := rentals[row[1].(int64)]
		if rental[5] != model.RentalCompleted {
			t.Fatalf("review %v targets a %v rental", row[0], rental[5])
		}
		created := row[5].(time.Time)
		if created.Before(rental[4].(time.Time)) || created.After(testNow) {
			t.Fatalf("review %v created at %v", row[0], created)
		}
	}
}

func TestAddressesNeedUsers(t *testing.T) {
	_, err := GenerateAddresses(NewSource(1), nil, 2)
	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("expected a DependencyError, got %v", err)
	}
	if depErr.Entity != "addresses" || !errors.Is(err, ErrEmptyDependency) {
		t.Errorf("unexpected error %v", err)
	}
}

func TestInvalidCount(t *testing.T) {
	if _, err := GenerateUsers(NewSource(1), 0, 10); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
}

func TestReviewsNeedCompletedRentals(t *testing.T) {
	rentals := []model.Rental{{ID: 1, Status: model.RentalPending}, {ID: 2, Status: model.RentalCancelled}}
	_, err := GenerateRentalReviews(NewSource(1), rentals, 5, testNow)
	if !errors.Is(err, ErrEmptyDependency) {
		t.Errorf("expected ErrEmptyDependency, got %v", err)
	}
}

func TestUniqueEmailExhaustion(t *testing.T) {
	used := map[string]struct{}{"taken@example.com": {}}
	calls := 0
	_, err := uniqueEmail(func() string {
		calls++
		return "taken@example.com"
	}, used, 7, 25)

	var exhausted *EmailExhaustedError
	if !errors.As(err, &exhausted) {
		t.Fatalf("expected EmailExhaustedError, got %v", err)
	}
	if exhausted.UserID != 7 || exhausted.Attempts != 25 || calls != 25 {
		t.Errorf("unexpected error %+v after %d calls", exhausted, calls)
	}
	if !errors.Is(err, ErrEmailExhausted) {
		t.Error("error should match ErrEmailExhausted")
	}
}

func TestUniqueEmailRetries(t *testing.T) {
	used := map[string]struct{}{"a@example.com": {}}
	seq := []string{"a@example.com", "a@example.com", "b@example.com"}
	i := 0
	email, err := uniqueEmail(func() string {
		e := seq[i]
		i++
		return e
	}, used, 2, 5)
	if err != nil {
		t.Fatalf("uniqueEmail: %v", err)
	}
	if email != "b@example.com" {
		t.Errorf("got %s", email)
	}
	if _, ok := used["b@example.com"]; !ok {
		t.Error("accepted email should be recorded")
	}
}

func TestNewRejectsUnknownVariant(t *testing.T) {
	if _, err := New(SeedConfig{Variant: "bazaar", Now: testNow}); err == nil {
		t.Error("expected an error for an unknown variant")
	}
	if _, err := New(SeedConfig{Variant: model.VariantRental}); err == nil {
		t.Error("expected an error for a missing reference time")
	}
}

func TestBuildTableChecksArity(t *testing.T) {
	if _, err := types.BuildTable(model.ReviewsTable, []model.Address{{ID: 1}}); err == nil {
		t.Error("expected an arity error for mismatched records")
	}
}

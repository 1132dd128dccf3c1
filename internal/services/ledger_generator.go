package services

import (
	"errors"

	"savings-tracker/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultGeneratedEntries = 30
	maxGeneratedEntries     = 200
	sideIncomeOneIn         = 10
)

var ErrInvalidGeneratorCount = errors.New("count must be between 1 and 200")

// ledgerItem is a purchasable item with a realistic PKR price range
type ledgerItem struct {
	Category    string
	Description string
	MinPrice    float64
	MaxPrice    float64
}

type ledgerGenerator struct {
	itemPool       []ledgerItem
	sideIncomePool []ledgerItem
	faker          *gofakeit.Faker
}

// NewLedgerGenerator creates a generator seeded with seed. A zero seed picks
// a random one.
func NewLedgerGenerator(seed uint64) LedgerGeneratorInterface {
	return &ledgerGenerator{
		itemPool:       initializeItemPool(),
		sideIncomePool: initializeSideIncomePool(),
		faker:          gofakeit.New(seed),
	}
}

func initializeItemPool() []ledgerItem {
	return []ledgerItem{
		// Groceries
		{"Groceries", "Basmati rice 1kg", 250, 450},
		{"Groceries", "Whole wheat atta 5kg", 600, 950},
		{"Groceries", "Cooking oil 1 liter", 450, 650},
		{"Groceries", "Sugar 1kg", 130, 190},
		{"Groceries", "Fresh milk 1 liter", 180, 240},
		{"Groceries", "Eggs one dozen", 280, 400},
		{"Groceries", "Daal chana 1kg", 260, 380},
		{"Groceries", "Bread large loaf", 120, 200},
		{"Groceries", "Tea leaves 500g", 700, 1100},
		{"Groceries", "Chicken 1kg", 550, 800},

		// Dining
		{"Dining", "Chicken biryani plate", 300, 650},
		{"Dining", "Chai and paratha", 80, 200},
		{"Dining", "Pizza medium", 1200, 2200},
		{"Dining", "Burger meal", 650, 1300},

		// Transport
		{"Transport", "Petrol 10 liters", 2500, 3200},
		{"Transport", "Rickshaw fare", 150, 500},
		{"Transport", "Metro bus card top up", 200, 1000},
		{"Transport", "Ride hailing trip", 300, 1200},

		// Utilities
		{"Utilities", "Electricity bill", 3000, 15000},
		{"Utilities", "Gas bill", 800, 4000},
		{"Utilities", "Mobile package", 500, 1500},
		{"Utilities", "Internet bill", 2000, 4500},

		// Personal care
		{"Personal Care", "Shampoo 400ml", 450, 900},
		{"Personal Care", "Soap bar pack", 200, 450},
		{"Personal Care", "Toothpaste", 180, 350},

		// Clothing
		{"Clothing", "Lawn suit", 2500, 7000},
		{"Clothing", "Kurta", 1500, 4000},
		{"Clothing", "Shoes", 2500, 8000},
	}
}

func initializeSideIncomePool() []ledgerItem {
	return []ledgerItem{
		{"", "Freelance design project", 5000, 25000},
		{"", "Tuition classes", 3000, 12000},
		{"", "Sold old phone", 8000, 30000},
		{"", "Online survey payout", 500, 2000},
	}
}

// GenerateMonth returns count unsaved entries dated within month. Roughly one
// in ten is side income; the rest are expenses.
func (g *ledgerGenerator) GenerateMonth(userID uuid.UUID, month string, count int) ([]*models.LedgerEntry, error) {
	start, err := models.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		count = defaultGeneratedEntries
	}
	if count < 1 || count > maxGeneratedEntries {
		return nil, ErrInvalidGeneratorCount
	}

	days := start.AddDate(0, 1, -1).Day()
	entries := make([]*models.LedgerEntry, 0, count)

	for range count {
		date := start.AddDate(0, 0, g.faker.Number(0, days-1))

		kind := models.EntryKindExpense
		pool := g.itemPool
		if g.faker.Number(1, sideIncomeOneIn) == 1 {
			kind = models.EntryKindSideIncome
			pool = g.sideIncomePool
		}

		item := pool[g.faker.Number(0, len(pool)-1)]
		entries = append(entries, &models.LedgerEntry{
			UserID:      userID,
			Kind:        kind,
			Amount:      g.generateAmount(item),
			Category:    item.Category,
			Description: item.Description,
			Date:        date.Format(models.DateLayout),
			Month:       month,
		})
	}

	return entries, nil
}

func (g *ledgerGenerator) generateAmount(item ledgerItem) decimal.Decimal {
	amount := decimal.NewFromFloat(g.faker.Float64Range(item.MinPrice, item.MaxPrice)).Round(2)
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromFloat(item.MaxPrice).Round(2)
	}
	return amount
}

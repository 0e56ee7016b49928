// Package seed generates sample data for demos and local development.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dhruvm/spendwise/internal/model"
	"github.com/dhruvm/spendwise/internal/store"
)

type merchantProfile struct {
	name        string
	category    model.Category
	subcategory string
	txType      model.TransactionType
	minAmount   float64
	maxAmount   float64
}

var profiles = []merchantProfile{
	{"Swiggy", model.CategoryFood, "Food Delivery", model.TypeExpense, 150, 600},
	{"Zomato", model.CategoryFood, "Food Delivery", model.TypeExpense, 150, 600},
	{"Cafe Coffee Day", model.CategoryFood, "Coffee", model.TypeExpense, 80, 350},
	{"DMart Benz Circle", model.CategoryGroceries, "Supermarket", model.TypeExpense, 300, 2500},
	{"Reliance Fresh", model.CategoryGroceries, "Supermarket", model.TypeExpense, 200, 1500},
	{"Blinkit", model.CategoryGroceries, "Supermarket", model.TypeExpense, 100, 800},
	{"Uber", model.CategoryTransport, "Taxi", model.TypeExpense, 90, 450},
	{"IDFC FastTag", model.CategoryTransport, "Tolls", model.TypeExpense, 100, 500},
	{"Indian Oil Petrol Pump", model.CategoryTransport, "Fuel", model.TypeExpense, 500, 2000},
	{"APSPDCL Electricity", model.CategoryUtilities, "Electricity", model.TypeExpense, 400, 1800},
	{"Airtel Recharge", model.CategoryUtilities, "Mobile Recharge", model.TypeExpense, 199, 839},
	{"Netflix", model.CategoryEntertainment, "Streaming", model.TypeExpense, 199, 649},
	{"BookMyShow", model.CategoryEntertainment, "Movies", model.TypeExpense, 200, 900},
	{"Amazon", model.CategoryShopping, "Electronics", model.TypeExpense, 300, 5000},
	{"Myntra", model.CategoryShopping, "Clothing", model.TypeExpense, 400, 3000},
	{"Apollo Pharmacy", model.CategoryHealth, "Pharmacy", model.TypeExpense, 100, 900},
	{"Green Trends Salon", model.CategoryPersonalCare, "Salon", model.TypeExpense, 150, 700},
	{"Udemy", model.CategoryEducation, "Courses", model.TypeExpense, 400, 1200},
	{"HDFC Credit Card EMI", model.CategoryBanking, "EMI", model.TypeExpense, 1000, 5000},
	{"Acme Corp Salary", model.CategoryIncome, "Salary", model.TypeIncome, 45000, 45000},
}

var groceryItems = []model.LineItem{
	{Name: "Toor Dal 1kg", Price: 165, Quantity: 1, Brand: "Tata Sampann"},
	{Name: "Basmati Rice 5kg", Price: 540, Quantity: 1, Brand: "India Gate"},
	{Name: "Milk 500ml", Price: 28, Quantity: 2, Brand: "Amul"},
	{Name: "Atta 5kg", Price: 260, Quantity: 1, Brand: "Aashirvaad"},
	{Name: "Sunflower Oil 1L", Price: 145, Quantity: 1, Brand: "Fortune"},
	{Name: "Curd 400g", Price: 35, Quantity: 1, Brand: "Nestle"},
	{Name: "Bananas", Price: 48, Quantity: 1, Weight: "1kg"},
	{Name: "Onions", Price: 35, Quantity: 1, Weight: "1kg"},
}

// Transactions generates n sample transactions spread over the last 45 days.
// The same seed yields the same data.
func Transactions(rng *rand.Rand, n int, now time.Time) []model.Transaction {
	txs := make([]model.Transaction, 0, n)
	for i := 0; i < n; i++ {
		p := profiles[rng.Intn(len(profiles))]
		amount := p.minAmount
		if p.maxAmount > p.minAmount {
			amount += float64(rng.Intn(int(p.maxAmount - p.minAmount)))
		}
		date := now.AddDate(0, 0, -rng.Intn(45))
		tx := model.Transaction{
			ID:          fmt.Sprintf("seed-%04d", i),
			Merchant:    p.name,
			Amount:      amount,
			Category:    p.category,
			Subcategory: p.subcategory,
			Type:        p.txType,
			Date:        date.Format("2006-01-02"),
			Currency:    "INR",
		}
		if p.category == model.CategoryGroceries {
			count := 1 + rng.Intn(4)
			for j := 0; j < count; j++ {
				tx.Items = append(tx.Items, groceryItems[rng.Intn(len(groceryItems))])
			}
		}
		txs = append(txs, tx)
	}
	return txs
}

// Rules returns a few starter aliasing rules.
func Rules() []model.MerchantRule {
	transport := model.CategoryTransport
	groceries := model.CategoryGroceries
	return []model.MerchantRule{
		{OriginalName: "FastTag", RenamedTo: "FASTag", ForcedCategory: &transport, Emoji: "🛣️"},
		{OriginalName: "DMart", RenamedTo: "DMart", ForcedCategory: &groceries},
		{OriginalName: "Cafe Coffee Day", RenamedTo: "CCD"},
	}
}

// Budgets returns starter budgets for the demo.
func Budgets() []model.Budget {
	return []model.Budget{
		{Category: model.CategoryFood, Amount: 6000, Period: model.PeriodMonthly},
		{Category: model.CategoryGroceries, Amount: 8000, Period: model.PeriodMonthly},
		{Category: model.CategoryTransport, Amount: 1500, Period: model.PeriodWeekly},
	}
}

// Populate fills a store with sample transactions, rules and budgets.
func Populate(s *store.Store, rng *rand.Rand, n int, now time.Time) {
	for _, tx := range Transactions(rng, n, now) {
		s.AddTransaction(tx)
	}
	for _, r := range Rules() {
		_, _ = s.AddRule(r)
	}
	for _, b := range Budgets() {
		s.AddBudget(b)
	}
}

// Package lookup holds the static emoji and keyword tables the projector and
// suggestion engine read from. The tables are ordered slices rather than maps:
// substring matching is first-match-wins, so declaration order is the
// tie-break and iteration has to be deterministic.
package lookup

import "github.com/dhruvm/spendwise/internal/model"

// DefaultEmoji is used when nothing in the tables matches.
const DefaultEmoji = "📄"

// EmojiRule maps a lowercase merchant-name substring to a display emoji.
type EmojiRule struct {
	Substring string
	Emoji     string
}

// MerchantEmojiRules is scanned in order; the first substring hit wins.
var MerchantEmojiRules = []EmojiRule{
	{"swiggy", "🍔"},
	{"zomato", "🍕"},
	{"dominos", "🍕"},
	{"mcdonald", "🍟"},
	{"kfc", "🍗"},
	{"starbucks", "☕"},
	{"cafe", "☕"},
	{"bakery", "🍰"},
	{"restaurant", "🍽️"},
	{"dmart", "🛒"},
	{"big bazaar", "🛒"},
	{"reliance fresh", "🛒"},
	{"blinkit", "🛒"},
	{"zepto", "🛒"},
	{"grocery", "🛒"},
	{"amazon", "📦"},
	{"flipkart", "🛍️"},
	{"myntra", "👗"},
	{"ajio", "👕"},
	{"uber", "🚕"},
	{"ola", "🚕"},
	{"rapido", "🏍️"},
	{"irctc", "🚆"},
	{"metro", "🚇"},
	{"fastag", "🛣️"},
	{"petrol", "⛽"},
	{"fuel", "⛽"},
	{"netflix", "🎬"},
	{"prime video", "🎬"},
	{"hotstar", "🎬"},
	{"spotify", "🎵"},
	{"bookmyshow", "🎟️"},
	{"apollo", "💊"},
	{"pharmacy", "💊"},
	{"medplus", "💊"},
	{"hospital", "🏥"},
	{"clinic", "🩺"},
	{"electricity", "💡"},
	{"water", "🚰"},
	{"airtel", "📶"},
	{"jio", "📶"},
	{"vodafone", "📶"},
	{"broadband", "🌐"},
	{"school", "🏫"},
	{"college", "🎓"},
	{"udemy", "📚"},
	{"coursera", "📚"},
	{"salon", "💇"},
	{"spa", "💆"},
	{"gym", "🏋️"},
	{"salary", "💰"},
	{"interest", "🏦"},
	{"bank", "🏦"},
	{"atm", "🏧"},
	{"rent", "🏠"},
	{"insurance", "🛡️"},
	{"tax", "🏛️"},
}

// CategoryEmojis maps each category to its default emoji.
var CategoryEmojis = map[model.Category]string{
	model.CategoryFood:          "🍽️",
	model.CategoryTransport:     "🚌",
	model.CategoryUtilities:     "💡",
	model.CategoryEntertainment: "🎬",
	model.CategoryShopping:      "🛍️",
	model.CategoryHealth:        "🏥",
	model.CategoryGroceries:     "🛒",
	model.CategoryIncome:        "💰",
	model.CategoryEducation:     "🎓",
	model.CategoryPersonalCare:  "🧴",
	model.CategoryGovernment:    "🏛️",
	model.CategoryBanking:       "🏦",
	model.CategoryOther:         DefaultEmoji,
}

// KeywordRule maps a lowercase keyword to a category/subcategory/emoji triple.
type KeywordRule struct {
	Keyword     string
	Category    model.Category
	Subcategory string
	Emoji       string
}

// SubcategoryKeywords is scanned in order by the suggestion engine.
var SubcategoryKeywords = []KeywordRule{
	{"electricity", model.CategoryUtilities, "Electricity", "💡"},
	{"power bill", model.CategoryUtilities, "Electricity", "💡"},
	{"water bill", model.CategoryUtilities, "Water", "🚰"},
	{"gas cylinder", model.CategoryUtilities, "Cooking Gas", "🔥"},
	{"lpg", model.CategoryUtilities, "Cooking Gas", "🔥"},
	{"internet", model.CategoryUtilities, "Internet", "🌐"},
	{"broadband", model.CategoryUtilities, "Internet", "🌐"},
	{"wifi", model.CategoryUtilities, "Internet", "🌐"},
	{"recharge", model.CategoryUtilities, "Mobile Recharge", "📱"},
	{"mobile bill", model.CategoryUtilities, "Mobile Recharge", "📱"},
	{"petrol", model.CategoryTransport, "Fuel", "⛽"},
	{"diesel", model.CategoryTransport, "Fuel", "⛽"},
	{"cab", model.CategoryTransport, "Taxi", "🚕"},
	{"taxi", model.CategoryTransport, "Taxi", "🚕"},
	{"auto", model.CategoryTransport, "Auto Rickshaw", "🛺"},
	{"bus", model.CategoryTransport, "Bus", "🚌"},
	{"train", model.CategoryTransport, "Train", "🚆"},
	{"flight", model.CategoryTransport, "Flights", "✈️"},
	{"toll", model.CategoryTransport, "Tolls", "🛣️"},
	{"parking", model.CategoryTransport, "Parking", "🅿️"},
	{"breakfast", model.CategoryFood, "Breakfast", "🍳"},
	{"lunch", model.CategoryFood, "Lunch", "🍛"},
	{"dinner", model.CategoryFood, "Dinner", "🍽️"},
	{"snacks", model.CategoryFood, "Snacks", "🍿"},
	{"coffee", model.CategoryFood, "Coffee", "☕"},
	{"tea", model.CategoryFood, "Tea", "🍵"},
	{"pizza", model.CategoryFood, "Eating Out", "🍕"},
	{"burger", model.CategoryFood, "Eating Out", "🍔"},
	{"biryani", model.CategoryFood, "Eating Out", "🍛"},
	{"delivery", model.CategoryFood, "Food Delivery", "🛵"},
	{"vegetable", model.CategoryGroceries, "Vegetables", "🥦"},
	{"fruit", model.CategoryGroceries, "Fruits", "🍎"},
	{"milk", model.CategoryGroceries, "Dairy", "🥛"},
	{"supermarket", model.CategoryGroceries, "Supermarket", "🛒"},
	{"kirana", model.CategoryGroceries, "Kirana", "🏪"},
	{"movie", model.CategoryEntertainment, "Movies", "🎬"},
	{"cinema", model.CategoryEntertainment, "Movies", "🎬"},
	{"concert", model.CategoryEntertainment, "Events", "🎤"},
	{"game", model.CategoryEntertainment, "Gaming", "🎮"},
	{"subscription", model.CategoryEntertainment, "Streaming", "📺"},
	{"clothes", model.CategoryShopping, "Clothing", "👕"},
	{"shoes", model.CategoryShopping, "Footwear", "👟"},
	{"electronics", model.CategoryShopping, "Electronics", "💻"},
	{"furniture", model.CategoryShopping, "Home & Furniture", "🛋️"},
	{"gift", model.CategoryShopping, "Gifts", "🎁"},
	{"medicine", model.CategoryHealth, "Pharmacy", "💊"},
	{"doctor", model.CategoryHealth, "Consultation", "🩺"},
	{"dental", model.CategoryHealth, "Dental", "🦷"},
	{"lab test", model.CategoryHealth, "Diagnostics", "🧪"},
	{"haircut", model.CategoryPersonalCare, "Salon", "💇"},
	{"salon", model.CategoryPersonalCare, "Salon", "💇"},
	{"cosmetics", model.CategoryPersonalCare, "Cosmetics", "💄"},
	{"tuition", model.CategoryEducation, "Tuition", "📖"},
	{"course", model.CategoryEducation, "Courses", "📚"},
	{"books", model.CategoryEducation, "Books", "📚"},
	{"exam fee", model.CategoryEducation, "Exam Fees", "📝"},
	{"salary", model.CategoryIncome, "Salary", "💰"},
	{"refund", model.CategoryIncome, "Refunds", "↩️"},
	{"dividend", model.CategoryIncome, "Investments", "📈"},
	{"property tax", model.CategoryGovernment, "Property Tax", "🏛️"},
	{"challan", model.CategoryGovernment, "Fines", "🚨"},
	{"passport", model.CategoryGovernment, "Documents", "🛂"},
	{"emi", model.CategoryBanking, "EMI", "🏦"},
	{"loan", model.CategoryBanking, "Loan Payment", "🏦"},
	{"credit card", model.CategoryBanking, "Card Payment", "💳"},
	{"bank charge", model.CategoryBanking, "Charges", "🏦"},
}

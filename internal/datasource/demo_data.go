package datasource

import (
	"time"

	"github.com/getmorediners/backend/internal/models"
	"github.com/google/uuid"
)

func demoID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("getmorediners:"+name))
}

// Stable ids of the seeded demo records.
var (
	DemoUserID       = demoID("demo-user")
	DemoRestaurantID = demoID("demo-restaurant")
)

func strPtr(s string) *string { return &s }

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func demoUser() models.User {
	return models.User{
		ID:        DemoUserID,
		Email:     DemoUserEmail,
		FirstName: strPtr("Marco"),
		LastName:  strPtr("Rossi"),
		CreatedAt: mustTime("2024-01-15T00:00:00Z"),
	}
}

func demoRestaurant() models.Restaurant {
	return models.Restaurant{
		ID:          DemoRestaurantID,
		UserID:      DemoUserID,
		Name:        "Bella Vista Italian",
		Address:     "123 Culinary Lane",
		City:        "Austin",
		State:       "TX",
		Zip:         "78701",
		Phone:       "(512) 555-0123",
		CuisineType: "Italian",
		Description: strPtr("Authentic Italian cuisine in the heart of Austin. Family-owned restaurant serving traditional recipes with locally sourced ingredients."),
		CreatedAt:   mustTime("2024-01-15T00:00:00Z"),
	}
}

func demoCampaigns() []models.Campaign {
	valentineSent := mustTime("2024-02-10T10:00:00Z")
	happyHourSent := mustTime("2024-02-05T09:00:00Z")

	return []models.Campaign{
		{
			ID:           demoID("demo-campaign-1"),
			RestaurantID: DemoRestaurantID,
			Name:         "Valentine's Day Romance Special",
			Subject:      "💕 Romance is in the air at Bella Vista - Valentine's Special Inside!",
			EmailContent: `Dear Food Lover,

Love is in the air, and so is the aroma of authentic Italian cuisine!

💝 This Valentine's Day, treat your special someone to an unforgettable evening at Bella Vista Italian.

✨ Our Valentine's Romance Package includes:
• Intimate candlelit table for two
• Complimentary glass of Prosecco
• Chef's special 3-course romantic dinner
• Homemade tiramisu to share
• Live acoustic music from 7-9 PM

🌹 Just $89 per couple (regularly $120)

Reserve your romantic evening by calling (512) 555-0123 or visit our website.
Limited seating available - book now!

Amore awaits at Bella Vista,
Chef Marco & the Bella Vista Team

P.S. Surprise your love with an evening they'll never forget! ❤️`,
			SMSContent:  strPtr("💕 Valentine's Special at Bella Vista! Romantic 3-course dinner for 2 just $89 (reg $120). Call (512) 555-0123. Book now! ❤️"),
			TargetCount: 234,
			Status:      models.CampaignStatusSent,
			SentAt:      &valentineSent,
			CreatedAt:   mustTime("2024-02-08T15:30:00Z"),
		},
		{
			ID:           demoID("demo-campaign-2"),
			RestaurantID: DemoRestaurantID,
			Name:         "Happy Hour Monday Special",
			Subject:      "🍸 Beat the Monday Blues - Happy Hour at Bella Vista!",
			EmailContent: `Buongiorno Friend!

Monday blues got you down? We've got the perfect remedy!

🍸 Join us for Happy Hour Mondays at Bella Vista:
• 50% off all wines and cocktails
• $8 appetizer specials (usually $12-16)
• Complimentary bruschetta with any drink order
• Live jazz music to set the mood

⏰ Every Monday, 4:00 PM - 7:00 PM

Our Monday Happy Hour features:
🍷 Half-price wine bottles
🍹 Signature Aperol Spritz for just $6
🍤 Garlic shrimp scampi appetizer - $8
🧀 Artisanal cheese board - $8
🍞 Fresh burrata with prosciutto - $8

Transform your Monday into something special. See you at Bella Vista!

Saluti,
The Bella Vista Team

123 Culinary Lane, Austin TX | (512) 555-0123`,
			SMSContent:  strPtr("🍸 Monday Happy Hour at Bella Vista! 50% off drinks + $8 appetizer specials. 4-7 PM. Beat those Monday blues! 🎵"),
			TargetCount: 156,
			Status:      models.CampaignStatusSent,
			SentAt:      &happyHourSent,
			CreatedAt:   mustTime("2024-02-03T14:20:00Z"),
		},
		{
			ID:           demoID("demo-campaign-3"),
			RestaurantID: DemoRestaurantID,
			Name:         "Spring Menu Launch",
			Subject:      "🌸 Spring Has Sprung - New Seasonal Menu at Bella Vista!",
			EmailContent: `Ciao Bella!

Spring is here, and we're celebrating with an exciting new seasonal menu!

🌸 Our Spring 2024 Collection features:
• Fresh pasta made with locally sourced spring vegetables
• Wild mushroom risotto with Austin-grown morels
• Grilled branzino with lemon and fresh herbs
• House-made gelato in seasonal flavors

🎉 Grand Launch Special:
Visit us this week (March 18-24) and receive 20% off any new spring menu item!

Featured Spring Highlights:
🍋 Lemon Ricotta Agnolotti - delicate pasta pillows with spring peas
🍄 Truffle Mushroom Risotto - creamy Arborio rice with local mushrooms
🐟 Mediterranean Branzino - whole fish grilled to perfection
🍓 Strawberry Basil Gelato - made fresh daily in our kitchen

Book your table today to experience the flavors of spring!
Call (512) 555-0123 or visit our website.

Primavera blessings,
Chef Marco & Team Bella Vista`,
			SMSContent:  strPtr("🌸 NEW Spring Menu at Bella Vista! 20% off all new items this week (Mar 18-24). Fresh, local ingredients! Book: (512) 555-0123 🍋"),
			TargetCount: 189,
			Status:      models.CampaignStatusDraft,
			CreatedAt:   mustTime("2024-03-15T11:45:00Z"),
		},
	}
}

func demoDiners() []models.Diner {
	created := mustTime("2024-01-15T00:00:00Z")
	diner := func(key, name, email, phone string, interests ...string) models.Diner {
		return models.Diner{
			ID:        demoID(key),
			Name:      name,
			Email:     email,
			Phone:     strPtr(phone),
			City:      "Austin",
			State:     "TX",
			Interests: interests,
			CreatedAt: created,
		}
	}

	return []models.Diner{
		diner("demo-diner-1", "Sarah Johnson", "sarah.johnson@email.com", "(512) 555-0191", "Italian", "Fine Dining", "Date Night", "Wine", "Vegetarian"),
		diner("demo-diner-2", "Michael Chen", "mchen@example.com", "(512) 555-0192", "Italian", "Business Dining", "Happy Hour", "Seafood"),
		diner("demo-diner-3", "Emily Rodriguez", "emily.r@gmail.com", "(512) 555-0193", "Italian", "Family Friendly", "Casual", "Pizza", "Brunch"),
		diner("demo-diner-4", "David Thompson", "dthompson@yahoo.com", "(512) 555-0194", "Italian", "Fine Dining", "Steakhouse", "Date Night"),
		diner("demo-diner-5", "Lisa Park", "lisa.park@outlook.com", "(512) 555-0195", "Italian", "Healthy", "Vegetarian", "Wine", "Casual"),
		diner("demo-diner-6", "James Wilson", "jwilson@company.com", "(512) 555-0196", "Italian", "Business Dining", "Quick Service", "Takeout"),
		diner("demo-diner-7", "Amanda Davis", "amanda.davis@email.com", "(512) 555-0197", "Italian", "Date Night", "Fine Dining", "Wine", "Romantic"),
		diner("demo-diner-8", "Robert Kim", "rkim@gmail.com", "(512) 555-0198", "Italian", "Family Friendly", "Pizza", "Casual", "Kids Menu"),
		diner("demo-diner-9", "Jennifer Martinez", "jen.martinez@domain.com", "(512) 555-0199", "Italian", "Happy Hour", "Cocktails", "Appetizers", "Groups"),
		diner("demo-diner-10", "Christopher Lee", "chris.lee@service.com", "(512) 555-0200", "Italian", "Fine Dining", "Wine", "Chef Special", "Anniversary"),
	}
}

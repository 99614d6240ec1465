package main

import "github.com/getmorediners/backend/internal/models"

func sampleDiners() []models.Diner {
	d := func(name, email, phone, city string, interests ...string) models.Diner {
		return models.Diner{Name: name, Email: email, Phone: &phone, City: city, State: "NY", Interests: interests}
	}

	return []models.Diner{
		d("Sarah Johnson", "sarah.johnson@email.com", "(555) 123-4567", "New York", "Italian", "Fine Dining", "Date Night"),
		d("Mike Chen", "mike.chen@email.com", "(555) 234-5678", "New York", "Chinese", "Asian", "Quick Lunch"),
		d("Emily Rodriguez", "emily.rodriguez@email.com", "(555) 345-6789", "Brooklyn", "Mexican", "Vegetarian", "Family Friendly"),
		d("David Kim", "david.kim@email.com", "(555) 456-7890", "Queens", "Korean", "BBQ", "Spicy Food"),
		d("Jessica Brown", "jessica.brown@email.com", "(555) 567-8901", "Manhattan", "American", "Brunch", "Cocktails"),
		d("Ryan Thompson", "ryan.thompson@email.com", "(555) 678-9012", "Bronx", "Pizza", "Casual", "Sports Bar"),
		d("Amanda Davis", "amanda.davis@email.com", "(555) 789-0123", "Staten Island", "Seafood", "Fine Dining", "Special Occasions"),
		d("Chris Wilson", "chris.wilson@email.com", "(555) 890-1234", "Long Island", "Steakhouse", "Wine", "Business Dining"),
		d("Lisa Garcia", "lisa.garcia@email.com", "(555) 901-2345", "New York", "Thai", "Healthy", "Vegetarian"),
		d("Kevin Martinez", "kevin.martinez@email.com", "(555) 012-3456", "Brooklyn", "Mediterranean", "Healthy", "Lunch"),
		d("Nicole Taylor", "nicole.taylor@email.com", "(555) 123-5678", "Queens", "Indian", "Spicy Food", "Takeout"),
		d("Brandon Lee", "brandon.lee@email.com", "(555) 234-6789", "Manhattan", "Japanese", "Sushi", "Fine Dining"),
		d("Stephanie White", "stephanie.white@email.com", "(555) 345-7890", "Bronx", "French", "Bakery", "Coffee"),
		d("Jason Moore", "jason.moore@email.com", "(555) 456-8901", "Staten Island", "BBQ", "Casual", "Family Friendly"),
		d("Michelle Clark", "michelle.clark@email.com", "(555) 567-9012", "Long Island", "Greek", "Mediterranean", "Healthy"),
		d("Daniel Lewis", "daniel.lewis@email.com", "(555) 678-0123", "New York", "Spanish", "Tapas", "Wine"),
		d("Rachel Anderson", "rachel.anderson@email.com", "(555) 789-1234", "Brooklyn", "Vietnamese", "Pho", "Quick Lunch"),
		d("Matthew Hall", "matthew.hall@email.com", "(555) 890-2345", "Queens", "Middle Eastern", "Halal", "Casual"),
		d("Lauren Young", "lauren.young@email.com", "(555) 901-3456", "Manhattan", "Cafe", "Coffee", "Light Meals"),
		d("Tyler King", "tyler.king@email.com", "(555) 012-4567", "Bronx", "Fast Food", "Quick", "Affordable"),
	}
}

package dto

// Auth

type SignUpRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Restaurant

type SaveRestaurantRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	CuisineType string `json:"cuisine_type"`
	Description string `json:"description"`
}

// Selection

type ToggleSelectionRequest struct {
	ID string `json:"id"`
}

// Campaigns

type GenerateCampaignRequest struct {
	Template string `json:"template"`
	Prompt   string `json:"prompt"`
}

type SaveCampaignRequest struct {
	Name         string `json:"name"`
	Subject      string `json:"subject"`
	EmailContent string `json:"email_content"`
	SMSContent   string `json:"sms_content"`
	TargetCount  *int   `json:"target_count,omitempty"`
}

package dto

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	Field     string `json:"field,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

// DinerListResponse carries a non-fatal Warning when the directory could
// not be loaded; Diners is then empty.
type DinerListResponse struct {
	Diners  any    `json:"diners"`
	Count   int    `json:"count"`
	Warning string `json:"warning,omitempty"`
}

// DraftResponse is generated copy plus advisory SMS length information.
type DraftResponse struct {
	Draft          any  `json:"draft"`
	SMSLength      int  `json:"sms_length"`
	SMSOverLimit   bool `json:"sms_over_limit"`
	SelectionCount int  `json:"selection_count"`
}

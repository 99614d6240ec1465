package models

var USStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
	"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

var usStateSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(USStates))
	for _, s := range USStates {
		m[s] = struct{}{}
	}
	return m
}()

func IsValidState(code string) bool {
	_, ok := usStateSet[code]
	return ok
}

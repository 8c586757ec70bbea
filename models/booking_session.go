package models

// BookingSession carries a customer's classify → followups → match flow
// between requests. Sessions live in redis with a short TTL.
type BookingSession struct {
	SessionID        string            `json:"session_id"`
	CustomerID       string            `json:"customer_id"`
	Query            string            `json:"query"`
	ServiceID        string            `json:"service_id"`
	Answers          map[string]string `json:"answers,omitempty"`
	Location         *LatLng           `json:"location,omitempty"`
	MatchedProviders []ProviderRanking `json:"matched_providers,omitempty"`
	SelectedProvider string            `json:"selected_provider,omitempty"`
}

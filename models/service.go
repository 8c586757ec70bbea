package models

// FollowupKind enumerates the input kinds for follow-up questions.
const (
	FollowupSelect    = "select"
	FollowupShortText = "short-text"
	FollowupLongText  = "long-text"
)

// FollowupQuestion is one question asked after a service is classified.
// Options is populated only when Kind is "select".
type FollowupQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"q"`
	Kind    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// ServiceDefinition describes one bookable service. Definitions are
// immutable and loaded once at startup; catalog order matters for
// classifier tie-breaking.
type ServiceDefinition struct {
	ID                 string             `json:"id"`
	Label              string             `json:"label"`
	Keywords           []string           `json:"keywords"`
	Followups          []FollowupQuestion `json:"followups"`
	SkillTag           string             `json:"skill_tag"`
	EstimateHoursMin   float64            `json:"estimate_hours_min"`
	EstimateHoursMax   float64            `json:"estimate_hours_max"`
	Regulated          bool               `json:"regulated,omitempty"`
	RequiredCredential string             `json:"required_credential,omitempty"`
}

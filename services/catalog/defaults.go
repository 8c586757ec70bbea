package catalog

import "taskhive/models"

// defaultServices is the built-in catalog. Keywords are lowercase; order
// matters for classifier tie-breaking.
var defaultServices = []models.ServiceDefinition{
	{
		ID:       "bed_assembly",
		Label:    "Bed Assembly",
		Keywords: []string{"bed", "ikea", "bed frame", "headboard", "bunk", "crib"},
		Followups: []models.FollowupQuestion{
			{ID: "brand", Prompt: "What brand is the bed?", Kind: models.FollowupSelect, Options: []string{"IKEA", "Wayfair", "Amazon", "Other"}},
			{ID: "size", Prompt: "What size?", Kind: models.FollowupSelect, Options: []string{"Twin", "Full", "Queen", "King"}},
		},
		SkillTag:         "furniture_assembly",
		EstimateHoursMin: 1,
		EstimateHoursMax: 2,
	},
	{
		ID:       "furniture_assembly",
		Label:    "Furniture Assembly",
		Keywords: []string{"assemble", "assembly", "furniture", "flat-pack", "flatpack", "wardrobe", "desk", "shelf", "drawer"},
		Followups: []models.FollowupQuestion{
			{ID: "items", Prompt: "How many items need assembling?", Kind: models.FollowupSelect, Options: []string{"1", "2-3", "4+"}},
			{ID: "instructions", Prompt: "Do you have the assembly instructions?", Kind: models.FollowupSelect, Options: []string{"Yes", "No"}},
		},
		SkillTag:         "furniture_assembly",
		EstimateHoursMin: 1,
		EstimateHoursMax: 3,
	},
	{
		ID:       "home_cleaning",
		Label:    "Home Cleaning",
		Keywords: []string{"clean", "cleaning", "house", "home", "dust", "vacuum", "mop", "tidy"},
		Followups: []models.FollowupQuestion{
			{ID: "rooms", Prompt: "Which rooms need cleaning?", Kind: models.FollowupSelect, Options: []string{"All rooms", "Kitchen only", "Bathrooms only", "Bedrooms only"}},
			{ID: "frequency", Prompt: "How often?", Kind: models.FollowupSelect, Options: []string{"One-time", "Weekly", "Bi-weekly", "Monthly"}},
		},
		SkillTag:         "cleaning",
		EstimateHoursMin: 1.5,
		EstimateHoursMax: 3,
	},
	{
		ID:       "appliance_repair",
		Label:    "Appliance Repair",
		Keywords: []string{"repair", "fix", "appliance", "broken", "not working", "refrigerator", "washing machine", "microwave"},
		Followups: []models.FollowupQuestion{
			{ID: "appliance", Prompt: "Which appliance?", Kind: models.FollowupSelect, Options: []string{"Refrigerator", "Washing Machine", "AC", "Microwave", "Other"}},
			{ID: "issue", Prompt: "What's the problem?", Kind: models.FollowupShortText},
		},
		SkillTag:         "appliance_repair",
		EstimateHoursMin: 1,
		EstimateHoursMax: 3,
	},
	{
		ID:       "pest_control",
		Label:    "Pest Control",
		Keywords: []string{"pest", "bugs", "bed bugs", "cockroach", "termite", "rodent", "exterminator", "infestation"},
		Followups: []models.FollowupQuestion{
			{ID: "pest_type", Prompt: "What kind of pest?", Kind: models.FollowupSelect, Options: []string{"Roaches", "Bed bugs", "Rodents", "Termites", "Other"}},
			{ID: "area", Prompt: "Which areas are affected?", Kind: models.FollowupShortText},
		},
		SkillTag:           "pest_control",
		EstimateHoursMin:   1,
		EstimateHoursMax:   2,
		Regulated:          true,
		RequiredCredential: "pest_control_license",
	},
	{
		ID:       FallbackServiceID,
		Label:    "Something else",
		Keywords: []string{},
		Followups: []models.FollowupQuestion{
			{ID: "describe", Prompt: "Tell us more about what you need", Kind: models.FollowupLongText},
		},
		SkillTag:         "general",
		EstimateHoursMin: 0.5,
		EstimateHoursMax: 2,
	},
}

package drafting

// Template is a pre-written promotional theme used to seed generation.
type Template struct {
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
	PromptSeed  string `json:"prompt"`
	Category    string `json:"category"`
}

var templates = []Template{
	{
		Name:        "Happy Hour Special",
		Emoji:       "🍸",
		Description: "Drive traffic during slower afternoon/evening hours",
		PromptSeed:  "happy hour deals with discounted drinks and appetizers",
		Category:    "promotion",
	},
	{
		Name:        "Holiday Special",
		Emoji:       "🎉",
		Description: "Celebrate holidays with themed offers",
		PromptSeed:  "holiday-themed menu specials and festive dining experience",
		Category:    "seasonal",
	},
	{
		Name:        "Loyalty Discount",
		Emoji:       "⭐",
		Description: "Reward your most loyal customers",
		PromptSeed:  "exclusive loyalty program benefits and returning customer rewards",
		Category:    "retention",
	},
	{
		Name:        "Weekend Family Special",
		Emoji:       "👨‍👩‍👧‍👦",
		Description: "Attract families for weekend dining",
		PromptSeed:  "family-friendly weekend specials with kids menu discounts",
		Category:    "family",
	},
	{
		Name:        "Date Night Package",
		Emoji:       "❤️",
		Description: "Create romantic dining experiences for couples",
		PromptSeed:  "romantic date night package with wine pairings and intimate setting",
		Category:    "romance",
	},
	{
		Name:        "Grand Opening",
		Emoji:       "🎆",
		Description: "Launch your restaurant with a bang",
		PromptSeed:  "grand opening celebration with special introductory offers",
		Category:    "launch",
	},
	{
		Name:        "New Menu Launch",
		Emoji:       "🍽️",
		Description: "Showcase new seasonal dishes",
		PromptSeed:  "exciting new menu items and chef-curated seasonal specials",
		Category:    "menu",
	},
	{
		Name:        "Business Lunch Deal",
		Emoji:       "💼",
		Description: "Target nearby office workers",
		PromptSeed:  "quick and delicious business lunch options with express service",
		Category:    "business",
	},
}

// Templates returns a copy of the built-in catalog.
func Templates() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

func FindTemplate(name string) (Template, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

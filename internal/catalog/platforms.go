package catalog

// Platform is a coding platform with no public statistics API. Its numbers
// are maintained by hand and shown as-is next to the live providers.
type Platform struct {
	ID    string         `toml:"id" json:"id"`
	Name  string         `toml:"name" json:"name"`
	Color string         `toml:"color" json:"color"`
	Stats []PlatformStat `toml:"stats" json:"stats"`
}

// PlatformStat is one labelled figure on a platform card.
type PlatformStat struct {
	Label string `toml:"label" json:"label"`
	Value string `toml:"value" json:"value"`
}

var defaultPlatforms = []Platform{
	{
		ID:    "geeksforgeeks",
		Name:  "GeeksforGeeks",
		Color: "#2F8D46",
		Stats: []PlatformStat{
			{Label: "Contest Rating", Value: "1702"},
			{Label: "Coding Score", Value: "1150"},
			{Label: "Problems Solved", Value: "375"},
			{Label: "Monthly Coding Score", Value: "234"},
			{Label: "Institute Rank", Value: "Top 5"},
			{Label: "Streak", Value: "89 days"},
			{Label: "Articles", Value: "3"},
		},
	},
}

package catalog

// Timeline entry types. They double as the category ids of the timeline
// tabs, so the shared Query filters the timeline too.
const (
	EntryEducation     = "education"
	EntryProject       = "project"
	EntryCertification = "certification"
	EntryAchievement   = "achievement"
)

// TimelineTabs lists the tab ids in display order.
var TimelineTabs = []string{CategoryAll, EntryEducation, EntryProject, EntryCertification, EntryAchievement}

// Entry is one milestone on the timeline.
type Entry struct {
	ID           int      `toml:"id" json:"id"`
	Type         string   `toml:"type" json:"type"`
	Title        string   `toml:"title" json:"title"`
	Organization string   `toml:"organization" json:"organization"`
	Location     string   `toml:"location" json:"location,omitempty"`
	Date         string   `toml:"date" json:"date"`
	Current      bool     `toml:"current" json:"current"`
	Description  string   `toml:"description" json:"description"`
	Achievements []string `toml:"achievements" json:"achievements"`
	Link         string   `toml:"link" json:"link,omitempty"`
}

func (e Entry) CategoryID() string { return e.Type }

// IsFeatured reports ongoing entries.
func (e Entry) IsFeatured() bool { return e.Current }

func (e Entry) SearchFields() []string {
	return append([]string{e.Title, e.Organization, e.Description}, e.Achievements...)
}

var defaultTimeline = []Entry{
	{
		ID:           3,
		Type:         EntryProject,
		Title:        "Lumina-Craft E-Commerce Platform",
		Organization: "Personal Project",
		Date:         "2025",
		Description:  "Developed full-featured e-commerce platform with Next.js 14, achieving <2s page load times.",
		Achievements: []string{
			"Implemented Razorpay payment gateway",
			"Built real-time cart management",
			"Achieved 99.9% transaction success rate",
		},
		Link: "https://github.com/AryanBV/lumina-craft",
	},
	{
		ID:           2,
		Type:         EntryCertification,
		Title:        "Microsoft Azure AI Fundamentals",
		Organization: "Microsoft",
		Date:         "December 2024",
		Description:  "Certified in AI and ML concepts with Azure services implementation.",
		Achievements: []string{
			"Credential ID: 878ECBC7C3BE4794",
			"Focus on Azure AI services",
			"Machine Learning fundamentals",
		},
		Link: "https://learn.microsoft.com/credentials/878ecbc7c3be4794",
	},
	{
		ID:           5,
		Type:         EntryProject,
		Title:        "SMART_MED Healthcare System",
		Organization: "Academic Project",
		Date:         "2024",
		Description:  "Diabetes management platform with OCR-based document processing.",
		Achievements: []string{
			"Reduced data retrieval time by 40%",
			"90% OCR accuracy achieved",
			"Multi-role authentication system",
		},
	},
	{
		ID:           4,
		Type:         EntryAchievement,
		Title:        "Competitive Programming Excellence",
		Organization: "LeetCode & GeeksforGeeks",
		Date:         "2022 - Present",
		Current:      true,
		Description:  "Consistent problem-solving practice with significant achievements across platforms.",
		Achievements: []string{
			"LeetCode Rating: 1494",
			"GeeksforGeeks Rating: 1702",
			"550+ problems solved",
			"160+ day streak maintained",
		},
	},
	{
		ID:           1,
		Type:         EntryEducation,
		Title:        "B.Tech in AI & Machine Learning",
		Organization: "M S Ramaiah University of Applied Sciences",
		Location:     "Bangalore, India",
		Date:         "2021 - 2025",
		Current:      true,
		Description:  "Pursuing comprehensive program in AI/ML with 8.3 GPA. Focus on machine learning algorithms, neural networks, and practical AI applications.",
		Achievements: []string{
			"GPA: 8.3/10",
			"Relevant Coursework: Machine Learning, Data Structures, Database Management",
			"Active member of Tech Club",
		},
	},
}

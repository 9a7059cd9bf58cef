package catalog

// Project is a curated showcase entry.
type Project struct {
	Title        string   `toml:"title" json:"title"`
	Description  string   `toml:"description" json:"description"`
	Category     string   `toml:"category" json:"category"`
	Technologies []string `toml:"technologies" json:"technologies"`
	GithubURL    string   `toml:"github_url" json:"githubUrl,omitempty"`
	LiveURL      string   `toml:"live_url" json:"liveUrl,omitempty"`
	Featured     bool     `toml:"featured" json:"featured"`
}

func (p Project) CategoryID() string { return p.Category }

func (p Project) IsFeatured() bool { return p.Featured }

func (p Project) SearchFields() []string {
	return append([]string{p.Title, p.Description}, p.Technologies...)
}

var defaultProjects = []Project{
	{
		Title:        "SMART_MED",
		Description:  "A diabetes management system with family tree visualization and medical document OCR extraction, reducing patient data retrieval time by 40%.",
		Category:     "fullstack",
		Technologies: []string{"React", "TypeScript", "Node.js", "Express.js", "MySQL", "Tesseract.js"},
		GithubURL:    "https://github.com/AryanBV/SMART_MED_2.0",
		Featured:     true,
	},
	{
		Title:        "Weather Monitoring System",
		Description:  "Real-time weather monitoring system for Indian cities, showcasing data processing and visualization with API integration.",
		Category:     "ai",
		Technologies: []string{"Python", "Flask", "MongoDB", "scikit-learn", "Pandas", "Matplotlib"},
		GithubURL:    "https://github.com/AryanBV/weather_monitoring_system",
	},
	{
		Title:        "IEEE Paper Generator",
		Description:  "Full-stack web app generating IEEE-formatted research papers with AI-powered content and automatic image captioning.",
		Category:     "ai",
		Technologies: []string{"React", "Node.js", "MySQL", "JWT", "Multer"},
		GithubURL:    "https://github.com/AryanBV/research-paper-assistant",
	},
	{
		Title:        "Lumina-Craft",
		Description:  "Full-featured e-commerce platform built on Next.js 14 with Razorpay payments and real-time cart management.",
		Category:     "web",
		Technologies: []string{"Next.js", "React", "Tailwind CSS", "Razorpay"},
		GithubURL:    "https://github.com/AryanBV/lumina-craft",
		Featured:     true,
	},
}

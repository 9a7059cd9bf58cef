package catalog

// Category is a tech-grid grouping.
type Category struct {
	ID    string `toml:"id" json:"id"`
	Title string `toml:"title" json:"title"`
}

// Tech is a pure-data catalog entry. Level is the author's own rating,
// used only when no live signal exists for the technology.
type Tech struct {
	Name     string `toml:"name" json:"name"`
	Category string `toml:"category" json:"category"`
	Level    int    `toml:"level" json:"level"`
}

var defaultCategories = []Category{
	{ID: "languages", Title: "Languages"},
	{ID: "frontend", Title: "Frontend"},
	{ID: "backend", Title: "Backend"},
	{ID: "database", Title: "Database"},
	{ID: "aiml", Title: "AI/ML"},
	{ID: "devops", Title: "DevOps & Cloud"},
	{ID: "tools", Title: "Tools"},
	{ID: "testing", Title: "Testing"},
}

var defaultTech = []Tech{
	{Name: "JavaScript", Category: "languages", Level: 85},
	{Name: "TypeScript", Category: "languages", Level: 75},
	{Name: "Python", Category: "languages", Level: 80},
	{Name: "Java", Category: "languages", Level: 90},
	{Name: "HTML5", Category: "languages", Level: 95},
	{Name: "CSS3", Category: "languages", Level: 90},

	{Name: "React", Category: "frontend", Level: 85},
	{Name: "Next.js", Category: "frontend", Level: 80},
	{Name: "Tailwind CSS", Category: "frontend", Level: 90},
	{Name: "Redux", Category: "frontend", Level: 70},
	{Name: "Webpack", Category: "frontend", Level: 65},
	{Name: "Vite", Category: "frontend", Level: 75},

	{Name: "Node.js", Category: "backend", Level: 85},
	{Name: "Express.js", Category: "backend", Level: 80},
	{Name: "Flask", Category: "backend", Level: 70},
	{Name: "Django", Category: "backend", Level: 65},
	{Name: "GraphQL", Category: "backend", Level: 60},
	{Name: "Apollo", Category: "backend", Level: 55},

	{Name: "MySQL", Category: "database", Level: 85},
	{Name: "MongoDB", Category: "database", Level: 75},
	{Name: "PostgreSQL", Category: "database", Level: 70},
	{Name: "Redis", Category: "database", Level: 60},
	{Name: "Firebase", Category: "database", Level: 70},
	{Name: "Supabase", Category: "database", Level: 75},

	{Name: "TensorFlow", Category: "aiml", Level: 70},
	{Name: "PyTorch", Category: "aiml", Level: 60},
	{Name: "Scikit-learn", Category: "aiml", Level: 75},
	{Name: "Pandas", Category: "aiml", Level: 80},
	{Name: "NumPy", Category: "aiml", Level: 80},

	{Name: "Git", Category: "devops", Level: 90},
	{Name: "Docker", Category: "devops", Level: 70},
	{Name: "AWS", Category: "devops", Level: 60},
	{Name: "Vercel", Category: "devops", Level: 85},
	{Name: "Netlify", Category: "devops", Level: 75},
	{Name: "Linux", Category: "devops", Level: 75},

	{Name: "VS Code", Category: "tools", Level: 95},
	{Name: "Postman", Category: "tools", Level: 85},
	{Name: "GitHub", Category: "tools", Level: 90},
	{Name: "Figma", Category: "tools", Level: 70},
	{Name: "Notion", Category: "tools", Level: 80},
	{Name: "Jira", Category: "tools", Level: 65},

	{Name: "Jest", Category: "testing", Level: 70},
	{Name: "Cypress", Category: "testing", Level: 60},
	{Name: "Selenium", Category: "testing", Level: 55},
	{Name: "ESLint", Category: "testing", Level: 85},
	{Name: "Prettier", Category: "testing", Level: 90},
}

// CategoryTitle returns the display title for id, or id itself.
func (c *Catalog) CategoryTitle(id string) string {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat.Title
		}
	}
	return id
}

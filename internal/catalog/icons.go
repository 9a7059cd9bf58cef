package catalog

import "strings"

// Icon is the presentation half of a technology: an icon-set identifier
// and a brand colour. It is looked up by name and never used in scoring.
type Icon struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

// defaultIcon is used for technologies without a curated icon.
var defaultIcon = Icon{ID: "fa:code", Color: "#586069"}

var icons = map[string]Icon{
	"javascript":   {ID: "fa:js", Color: "#F7DF1E"},
	"typescript":   {ID: "si:typescript", Color: "#3178C6"},
	"python":       {ID: "fa:python", Color: "#3776AB"},
	"java":         {ID: "fa:java", Color: "#007396"},
	"html5":        {ID: "fa:html5", Color: "#E34C26"},
	"css3":         {ID: "fa:css3-alt", Color: "#1572B6"},
	"css":          {ID: "fa:css3-alt", Color: "#1572B6"},
	"react":        {ID: "fa:react", Color: "#61DAFB"},
	"next.js":      {ID: "si:nextdotjs", Color: "#000000"},
	"tailwind css": {ID: "si:tailwindcss", Color: "#06B6D4"},
	"redux":        {ID: "si:redux", Color: "#764ABC"},
	"webpack":      {ID: "si:webpack", Color: "#8DD6F9"},
	"vite":         {ID: "si:vite", Color: "#646CFF"},
	"node.js":      {ID: "fa:node-js", Color: "#339933"},
	"express.js":   {ID: "si:express", Color: "#000000"},
	"flask":        {ID: "si:flask", Color: "#000000"},
	"django":       {ID: "si:django", Color: "#092E20"},
	"graphql":      {ID: "si:graphql", Color: "#E10098"},
	"apollo":       {ID: "si:apollographql", Color: "#311C87"},
	"mysql":        {ID: "si:mysql", Color: "#4479A1"},
	"mongodb":      {ID: "si:mongodb", Color: "#47A248"},
	"postgresql":   {ID: "si:postgresql", Color: "#4169E1"},
	"redis":        {ID: "si:redis", Color: "#DC382D"},
	"firebase":     {ID: "si:firebase", Color: "#FFCA28"},
	"supabase":     {ID: "si:supabase", Color: "#3ECF8E"},
	"tensorflow":   {ID: "si:tensorflow", Color: "#FF6F00"},
	"pytorch":      {ID: "si:pytorch", Color: "#EE4C2C"},
	"scikit-learn": {ID: "si:scikitlearn", Color: "#F7931E"},
	"pandas":       {ID: "si:pandas", Color: "#150458"},
	"numpy":        {ID: "si:numpy", Color: "#013243"},
	"git":          {ID: "fa:git-alt", Color: "#F05032"},
	"docker":       {ID: "fa:docker", Color: "#2496ED"},
	"aws":          {ID: "fa:aws", Color: "#FF9900"},
	"vercel":       {ID: "si:vercel", Color: "#000000"},
	"netlify":      {ID: "si:netlify", Color: "#00C7B7"},
	"linux":        {ID: "fa:linux", Color: "#FCC624"},
	"vs code":      {ID: "vsc:code", Color: "#007ACC"},
	"postman":      {ID: "si:postman", Color: "#FF6C37"},
	"github":       {ID: "fa:github", Color: "#181717"},
	"figma":        {ID: "fa:figma", Color: "#F24E1E"},
	"notion":       {ID: "si:notion", Color: "#000000"},
	"jira":         {ID: "si:jira", Color: "#0052CC"},
	"jest":         {ID: "si:jest", Color: "#C21325"},
	"cypress":      {ID: "si:cypress", Color: "#17202C"},
	"selenium":     {ID: "si:selenium", Color: "#43B02A"},
	"eslint":       {ID: "si:eslint", Color: "#4B32C3"},
	"prettier":     {ID: "si:prettier", Color: "#F7B93E"},
	"go":           {ID: "si:go", Color: "#00ADD8"},
	"shell":        {ID: "si:gnubash", Color: "#89E051"},
}

// IconFor returns the icon for a technology name, case-insensitively.
func IconFor(name string) Icon {
	if ic, ok := icons[strings.ToLower(name)]; ok {
		return ic
	}
	return defaultIcon
}

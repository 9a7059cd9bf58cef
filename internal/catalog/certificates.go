package catalog

// Certificate is a professional certification. VerifyURL is empty when the
// issuer offers no public verification page.
type Certificate struct {
	Title        string   `toml:"title" json:"title"`
	Issuer       string   `toml:"issuer" json:"issuer"`
	IssueDate    string   `toml:"issue_date" json:"issueDate"`
	CredentialID string   `toml:"credential_id" json:"credentialId"`
	CertNumber   string   `toml:"cert_number" json:"certNumber,omitempty"`
	Description  string   `toml:"description" json:"description"`
	Category     string   `toml:"category" json:"category"`
	Skills       []string `toml:"skills" json:"skills"`
	VerifyURL    string   `toml:"verify_url" json:"verifyUrl,omitempty"`
	Featured     bool     `toml:"featured" json:"featured"`
}

func (c Certificate) CategoryID() string { return c.Category }

func (c Certificate) IsFeatured() bool { return c.Featured }

func (c Certificate) SearchFields() []string {
	return append([]string{c.Title, c.Issuer, c.Description}, c.Skills...)
}

var defaultCertificates = []Certificate{
	{
		Title:        "Microsoft Certified: Azure AI Fundamentals",
		Issuer:       "Microsoft",
		IssueDate:    "December 26, 2024",
		CredentialID: "878ECBC7C3BE4794",
		CertNumber:   "MD46DE-2BDB32",
		Description:  "Validated knowledge of machine learning and AI concepts, along with related Microsoft Azure services.",
		Category:     "ai",
		Skills: []string{
			"Artificial Intelligence workloads and considerations",
			"Fundamental principles of machine learning on Azure",
			"Computer vision workloads on Azure",
			"Natural Language Processing (NLP) workloads on Azure",
			"Generative AI workloads on Azure",
		},
		VerifyURL: "https://learn.microsoft.com/en-us/users/aryansalian-4114/credentials/878ecbc7c3be4794",
		Featured:  true,
	},
	{
		Title:        "Alpha (DSA with Java)",
		Issuer:       "Apna College",
		IssueDate:    "2023",
		CredentialID: "669b551d141788b55c0e3016",
		Description:  "Comprehensive data structures and algorithms course focusing on implementation using Java.",
		Category:     "dsa",
		Skills: []string{
			"Data Structures implementation in Java",
			"Algorithm analysis and design",
			"Problem-solving techniques",
			"Object-Oriented Programming concepts",
			"Optimization strategies",
		},
	},
}

package domain

// OwnerProfile is the read-only identity rendered into outgoing emails.
// Populated from configuration at startup and never mutated per request.
type OwnerProfile struct {
	Name    string
	Title   string
	Website string
	Email   string
}

// SubjectCatalog maps inquiry-type keys to the labels shown in emails.
// The "default" entry backs any key the form sends that we don't know.
type SubjectCatalog map[string]string

// DefaultSubjectCatalog returns the catalog used by the portfolio contact form.
func DefaultSubjectCatalog() SubjectCatalog {
	return SubjectCatalog{
		"general":   "General Inquiry",
		"project":   "Project Discussion",
		"freelance": "Freelance Opportunity",
		"speaking":  "Speaking Engagement",
		"other":     "Something Else",
		"default":   "New Inquiry",
	}
}

// Label resolves a subject key to its display label. Resolution is
// three-tier: catalog[key], then catalog["default"], then the raw key.
func (c SubjectCatalog) Label(key string) string {
	if label, ok := c[key]; ok && label != "" {
		return label
	}
	if label, ok := c["default"]; ok && label != "" {
		return label
	}
	return key
}

package model

// Contact is the hiring contact published with a job posting.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Job is a posting in the catalog, either from the static dataset or posted
// locally by an employer.
type Job struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Category     string   `json:"category,omitempty"`
	PostedAt     string   `json:"postedAt"`
	Description  []string `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	Cover        string   `json:"cover,omitempty"`
	Contact      *Contact `json:"contact,omitempty"`
	PosterEmail  string   `json:"posterEmail,omitempty"`
}

// OwnerEmail returns the employer identity a posting belongs to, falling back
// to the contact email for dataset jobs that lack an explicit poster.
func (j Job) OwnerEmail() string {
	if j.PosterEmail != "" {
		return j.PosterEmail
	}
	if j.Contact != nil {
		return j.Contact.Email
	}
	return ""
}

package domain

// Project is a portfolio entry mirrored from the remote API.
type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image,omitempty"`
	Technologies []string  `json:"technologies"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	LiveURL      string    `json:"liveUrl,omitempty"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Technologies []string `json:"technologies"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
}

// Input returns the writable view of p, used when editing an existing record.
func (p Project) Input() ProjectInput {
	return ProjectInput{
		Title:        p.Title,
		Description:  p.Description,
		Image:        p.Image,
		Technologies: append([]string(nil), p.Technologies...),
		GithubURL:    p.GithubURL,
		LiveURL:      p.LiveURL,
	}
}

// Technology is a tag that projects reference. Deletion is soft.
type Technology struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsDeleted bool      `json:"isDeleted"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// ActiveTechnologies drops soft-deleted entries.
func ActiveTechnologies(in []Technology) []Technology {
	out := make([]Technology, 0, len(in))
	for _, t := range in {
		if !t.IsDeleted {
			out = append(out, t)
		}
	}
	return out
}

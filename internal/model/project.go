package model

type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Description string `json:"description" gorm:"not null"`
	ProjectURL  string `json:"project_url"`
}

// ProjectPatch carries a partial update. Nil fields are left unchanged;
// non-nil fields overwrite, even when set to the empty string.
// The slug is never patched: it is derived once at creation and stays
// the stable mutation key afterwards.
type ProjectPatch struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1"`
	ProjectURL  *string `json:"project_url,omitempty"`
}

// Apply merges the patch into the project.
func (p *Project) Apply(patch ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ProjectURL != nil {
		p.ProjectURL = *patch.ProjectURL
	}
}

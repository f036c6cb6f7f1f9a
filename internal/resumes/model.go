package resumes

import "time"

// Resume is owned by exactly one user; ownership is non-transferable and
// every read or mutation is scoped by OwnerID.
type Resume struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Improvement is an append-only record of one transformation. ResumeID refers
// to the resume as it was at transformation time and is not required to still
// exist.
type Improvement struct {
	ID              string    `json:"id"`
	ResumeID        string    `json:"resumeId"`
	OriginalContent string    `json:"originalContent"`
	ImprovedContent string    `json:"improvedContent"`
	CreatedAt       time.Time `json:"createdAt"`
}

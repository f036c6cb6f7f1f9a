package resumes

import "context"

// Repo defines persistence operations for resumes and their improvement log.
// Lookups and mutations take the owner id and fold it into the query, so an
// id belonging to another user behaves exactly like a missing id.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByOwner(ctx context.Context, ownerID, resumeID string) (Resume, error)
	ListByOwner(ctx context.Context, ownerID string) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
	Delete(ctx context.Context, ownerID, resumeID string) error
	AddImprovement(ctx context.Context, improvement Improvement) error
	ListImprovementsByResume(ctx context.Context, resumeID string) ([]Improvement, error)
}

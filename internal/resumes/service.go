package resumes

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service contains the ownership-scoped resume lifecycle. Every operation
// takes the authenticated owner's id; the repo folds it into the lookup so a
// foreign resume id is indistinguishable from a missing one.
type Service struct {
	Repo     Repo
	Improver Improver

	now func() time.Time
}

// NewService constructs a Service with the placeholder improver.
func NewService(repo Repo) *Service {
	return &Service{
		Repo:     repo,
		Improver: MarkerImprover{},
		now:      time.Now,
	}
}

// List returns the owner's resumes in creation order.
func (s *Service) List(ctx context.Context, ownerID string) ([]Resume, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Create persists a new resume. created_at and updated_at share the same
// instant so a fresh resume reads back with equal timestamps.
func (s *Service) Create(ctx context.Context, ownerID, title, content string) (Resume, error) {
	now := s.now().UTC()
	resume := Resume{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get returns an owned resume.
func (s *Service) Get(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	return s.Repo.GetByOwner(ctx, ownerID, resumeID)
}

// Update overwrites title and content and refreshes updated_at. The last
// successful update wins; there is no conflict detection between concurrent
// writers of the same resume.
func (s *Service) Update(ctx context.Context, ownerID, resumeID, title, content string) (Resume, error) {
	resume, err := s.Repo.GetByOwner(ctx, ownerID, resumeID)
	if err != nil {
		return Resume{}, err
	}
	resume.Title = title
	resume.Content = content
	resume.UpdatedAt = s.now().UTC()
	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Delete removes an owned resume permanently and returns the pre-deletion
// snapshot. Improvement rows referencing the id are left in place.
func (s *Service) Delete(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	resume, err := s.Repo.GetByOwner(ctx, ownerID, resumeID)
	if err != nil {
		return Resume{}, err
	}
	if err := s.Repo.Delete(ctx, ownerID, resumeID); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Improve runs the transformation over an owned resume's content and appends
// one Improvement record capturing the before/after pair. The resume itself
// is not mutated.
func (s *Service) Improve(ctx context.Context, ownerID, resumeID string) (string, error) {
	resume, err := s.Repo.GetByOwner(ctx, ownerID, resumeID)
	if err != nil {
		return "", err
	}
	improved, err := s.Improver.Improve(ctx, resume.Content)
	if err != nil {
		return "", err
	}
	improvement := Improvement{
		ID:              uuid.NewString(),
		ResumeID:        resume.ID,
		OriginalContent: resume.Content,
		ImprovedContent: improved,
		CreatedAt:       s.now().UTC(),
	}
	if err := s.Repo.AddImprovement(ctx, improvement); err != nil {
		return "", err
	}
	return improved, nil
}

// Improvements lists the improvement history of an owned resume. Ownership
// is checked through the resume; improvement rows are never independently
// addressable.
func (s *Service) Improvements(ctx context.Context, ownerID, resumeID string) ([]Improvement, error) {
	if _, err := s.Repo.GetByOwner(ctx, ownerID, resumeID); err != nil {
		return nil, err
	}
	return s.Repo.ListImprovementsByResume(ctx, resumeID)
}

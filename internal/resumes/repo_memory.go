package resumes

import (
	"context"
	"sync"
)

// MemoryRepo stores resumes and improvements in memory and is safe for
// concurrent use. Per-owner insertion order is preserved for listing.
type MemoryRepo struct {
	mu           sync.RWMutex
	byID         map[string]Resume
	orderByOwner map[string][]string
	improvements map[string][]Improvement
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:         make(map[string]Resume),
		orderByOwner: make(map[string][]string),
		improvements: make(map[string][]Improvement),
	}
}

// Create stores the resume.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[resume.ID] = resume
	r.orderByOwner[resume.OwnerID] = append(r.orderByOwner[resume.OwnerID], resume.ID)
	return nil
}

// GetByOwner returns the resume only when it exists and belongs to ownerID.
func (r *MemoryRepo) GetByOwner(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.byID[resumeID]
	if !ok || resume.OwnerID != ownerID {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

// ListByOwner returns the owner's resumes in creation order.
func (r *MemoryRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.orderByOwner[ownerID]
	out := make([]Resume, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// Update overwrites the stored resume when it exists under the same owner.
func (r *MemoryRepo) Update(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[resume.ID]
	if !ok || existing.OwnerID != resume.OwnerID {
		return ErrNotFound
	}
	r.byID[resume.ID] = resume
	return nil
}

// Delete removes the resume permanently. Improvement rows referencing it are
// intentionally left in place.
func (r *MemoryRepo) Delete(ctx context.Context, ownerID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[resumeID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.byID, resumeID)
	ids := r.orderByOwner[ownerID]
	for i, id := range ids {
		if id == resumeID {
			r.orderByOwner[ownerID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// AddImprovement appends an improvement record.
func (r *MemoryRepo) AddImprovement(ctx context.Context, improvement Improvement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.improvements[improvement.ResumeID] = append(r.improvements[improvement.ResumeID], improvement)
	return nil
}

// ListImprovementsByResume returns improvements for a resume in append order.
func (r *MemoryRepo) ListImprovementsByResume(ctx context.Context, resumeID string) ([]Improvement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.improvements[resumeID]
	out := make([]Improvement, len(stored))
	copy(out, stored)
	return out, nil
}

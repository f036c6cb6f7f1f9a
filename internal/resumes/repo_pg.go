package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres. Ownership scoping happens in SQL:
// every per-resume statement filters on owner_id as well as id.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (id, title, content, owner_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.Title,
		resume.Content,
		resume.OwnerID,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByOwner fetches a resume scoped to its owner.
func (r *PGRepo) GetByOwner(ctx context.Context, ownerID, resumeID string) (Resume, error) {
	const query = `
SELECT id, title, content, owner_id, created_at, updated_at
FROM resumes
WHERE owner_id = $1 AND id = $2
LIMIT 1`
	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, ownerID, resumeID).Scan(
		&resume.ID,
		&resume.Title,
		&resume.Content,
		&resume.OwnerID,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByOwner lists resumes in creation order.
func (r *PGRepo) ListByOwner(ctx context.Context, ownerID string) ([]Resume, error) {
	const query = `
SELECT id, title, content, owner_id, created_at, updated_at
FROM resumes
WHERE owner_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var resume Resume
		if err := rows.Scan(
			&resume.ID,
			&resume.Title,
			&resume.Content,
			&resume.OwnerID,
			&resume.CreatedAt,
			&resume.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update overwrites title, content, and updated_at for an owned resume.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET title = $3, content = $4, updated_at = $5
WHERE owner_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		resume.OwnerID,
		resume.ID,
		resume.Title,
		resume.Content,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an owned resume. Improvement rows referencing it stay in
// place; the improvements table has no foreign key to resumes.
func (r *PGRepo) Delete(ctx context.Context, ownerID, resumeID string) error {
	const query = `
DELETE FROM resumes
WHERE owner_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, ownerID, resumeID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AddImprovement appends an improvement record.
func (r *PGRepo) AddImprovement(ctx context.Context, improvement Improvement) error {
	const query = `
INSERT INTO improvements (id, resume_id, original_content, improved_content, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		improvement.ID,
		improvement.ResumeID,
		improvement.OriginalContent,
		improvement.ImprovedContent,
		improvement.CreatedAt,
	)
	return err
}

// ListImprovementsByResume lists improvements oldest-first.
func (r *PGRepo) ListImprovementsByResume(ctx context.Context, resumeID string) ([]Improvement, error) {
	const query = `
SELECT id, resume_id, original_content, improved_content, created_at
FROM improvements
WHERE resume_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Improvement
	for rows.Next() {
		var improvement Improvement
		if err := rows.Scan(
			&improvement.ID,
			&improvement.ResumeID,
			&improvement.OriginalContent,
			&improvement.ImprovedContent,
			&improvement.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, improvement)
	}
	return out, rows.Err()
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

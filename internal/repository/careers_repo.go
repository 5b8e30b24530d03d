// filepath: internal/repository/careers_repo.go
package repository

import (
	"database/sql"
	"errors"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"

	"github.com/Masterminds/squirrel"
)

func scanJobListing(row squirrel.RowScanner) (models.JobListing, error) {
	var job models.JobListing
	var status sql.NullString
	err := row.Scan(&job.ID, &job.Title, &job.Description, &job.Location, &job.Type, &status, &job.CreatedAt)
	if err != nil {
		return models.JobListing{}, err
	}
	job.Status = text(status)
	return job, nil
}

// GetJobListings returns listings newest first, always excluding soft-deleted
// rows. With openOnly set, only listings with status 'open' are returned.
func (s *Repository) GetJobListings(openOnly bool) ([]models.JobListing, error) {
	q := s.Builder.Select("id", "title", "description", "location", "type", "status", "created_at").
		From("job_listings").
		Where(squirrel.NotEq{"status": models.JobStatusDeleted})
	if openOnly {
		q = q.Where(squirrel.Eq{"status": models.JobStatusOpen})
	}

	query, args, err := q.OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]models.JobListing, 0)
	for rows.Next() {
		job, err := scanJobListing(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// GetJobByID returns a single listing (including soft-deleted ones) or
// shared.ErrJobNotFound.
func (s *Repository) GetJobByID(id string) (*models.JobListing, error) {
	row := s.DB.QueryRow(
		"SELECT id, title, description, location, type, status, created_at FROM job_listings WHERE id = ? LIMIT 1", id)
	job, err := scanJobListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// CreateJob inserts a new open listing and returns its generated ID.
func (s *Repository) CreateJob(data models.JobCreate) (string, error) {
	id := s.NewID()
	_, err := s.DB.Exec(
		"INSERT INTO job_listings (id, title, description, location, type, status) VALUES (?, ?, ?, ?, ?, 'open')",
		id, data.Title, data.Description, data.Location, data.Type,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// EnsureGeneralListing inserts the reserved general-application pseudo-listing
// if it does not exist yet. The insert is idempotent; concurrent callers
// cannot create a duplicate.
func (s *Repository) EnsureGeneralListing() error {
	_, err := s.DB.Exec(
		`INSERT OR IGNORE INTO job_listings (id, title, description, location, type, status)
		 VALUES (?, 'General Application', 'General Talent Pipeline', 'Remote/Various', 'General', 'open')`,
		models.GeneralApplicationID,
	)
	return err
}

// UpdateJob writes only the supplied fields. A payload with no fields set is
// a no-op.
func (s *Repository) UpdateJob(id string, data models.JobUpdate) error {
	q := s.Builder.Update("job_listings")
	changed := false

	set := func(col string, v *string) {
		if v != nil {
			q = q.Set(col, *v)
			changed = true
		}
	}
	set("title", data.Title)
	set("description", data.Description)
	set("location", data.Location)
	set("type", data.Type)
	set("status", data.Status)

	if !changed {
		return nil
	}

	query, args, err := q.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DeleteJob soft-deletes a listing. The row persists and associated
// applications are never touched.
func (s *Repository) DeleteJob(id string) error {
	_, err := s.DB.Exec("UPDATE job_listings SET status = 'deleted' WHERE id = ?", id)
	return err
}

// InsertApplication stores a new application with status 'pending' and
// returns its generated ID.
func (s *Repository) InsertApplication(data models.ApplicationSubmit) (string, error) {
	id := s.NewID()
	_, err := s.DB.Exec(
		`INSERT INTO job_applications (id, job_id, applicant_name, email, resume_url, role_interest, message, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 'pending')`,
		id, data.JobID, data.ApplicantName, data.Email, data.ResumeURL,
		nullIfEmpty(data.RoleInterest), nullIfEmpty(data.Message),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetApplications returns applications newest first, optionally limited to a
// single job. The listing title and current status are joined in with a LEFT
// JOIN so applications against deleted or missing listings still display.
func (s *Repository) GetApplications(jobID string) ([]models.JobApplication, error) {
	q := s.Builder.Select(
		"ja.id", "ja.job_id", "ja.applicant_name", "ja.email", "ja.resume_url",
		"ja.role_interest", "ja.message", "ja.status", "ja.created_at",
		"jl.title", "jl.status",
	).
		From("job_applications ja").
		LeftJoin("job_listings jl ON ja.job_id = jl.id")
	if jobID != "" {
		q = q.Where(squirrel.Eq{"ja.job_id": jobID})
	}

	query, args, err := q.OrderBy("ja.created_at DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := make([]models.JobApplication, 0)
	for rows.Next() {
		var app models.JobApplication
		var roleInterest, message, jobTitle, jobStatus sql.NullString
		err := rows.Scan(
			&app.ID, &app.JobID, &app.ApplicantName, &app.Email, &app.ResumeURL,
			&roleInterest, &message, &app.Status, &app.CreatedAt,
			&jobTitle, &jobStatus,
		)
		if err != nil {
			return nil, err
		}
		app.RoleInterest = text(roleInterest)
		app.Message = text(message)
		app.JobTitle = text(jobTitle)
		app.JobCurrentStatus = text(jobStatus)
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus sets the review status of one application.
func (s *Repository) UpdateApplicationStatus(id, status string) error {
	_, err := s.DB.Exec("UPDATE job_applications SET status = ? WHERE id = ?", status, id)
	return err
}

// DeleteApplication removes one application.
func (s *Repository) DeleteApplication(id string) error {
	_, err := s.DB.Exec("DELETE FROM job_applications WHERE id = ?", id)
	return err
}

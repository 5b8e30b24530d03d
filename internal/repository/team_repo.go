// filepath: internal/repository/team_repo.go
package repository

import (
	"database/sql"
	"errors"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"

	"github.com/Masterminds/squirrel"
)

func scanTeamMember(row squirrel.RowScanner) (models.TeamMember, error) {
	var m models.TeamMember
	var imageURL, category, linkedin, twitter, email sql.NullString
	err := row.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &imageURL, &category, &linkedin, &twitter, &email, &m.CreatedAt)
	if err != nil {
		return models.TeamMember{}, err
	}
	m.ImageURL = text(imageURL)
	m.Category = text(category)
	m.LinkedIn = text(linkedin)
	m.Twitter = text(twitter)
	m.Email = text(email)
	return m, nil
}

// GetTeamMembers returns all members newest first, optionally filtered by
// category.
func (s *Repository) GetTeamMembers(category string) ([]models.TeamMember, error) {
	q := s.Builder.Select("id", "name", "role", "bio", "image_url", "category", "linkedin", "twitter", "email", "created_at").
		From("team_members")
	if category != "" {
		q = q.Where(squirrel.Eq{"category": category})
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

	members := make([]models.TeamMember, 0)
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// GetTeamMemberByID returns a single member or shared.ErrTeamMemberNotFound.
func (s *Repository) GetTeamMemberByID(id string) (*models.TeamMember, error) {
	row := s.DB.QueryRow(
		"SELECT id, name, role, bio, image_url, category, linkedin, twitter, email, created_at FROM team_members WHERE id = ? LIMIT 1", id)
	m, err := scanTeamMember(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrTeamMemberNotFound
		}
		return nil, err
	}
	return &m, nil
}

// AddTeamMember inserts a new member and returns its generated ID.
func (s *Repository) AddTeamMember(data models.TeamMemberInput) (string, error) {
	id := s.NewID()
	category := data.Category
	if category == "" {
		category = models.TeamCategoryTeam
	}
	_, err := s.DB.Exec(
		`INSERT INTO team_members (id, name, role, bio, image_url, category, linkedin, twitter, email)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, data.Name, data.Role, data.Bio, nullIfEmpty(data.ImageURL), category,
		nullIfEmpty(data.LinkedIn), nullIfEmpty(data.Twitter), nullIfEmpty(data.Email),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateTeamMember overwrites every field of an existing member. Unlike the
// content partial update, team edits always carry the full record.
func (s *Repository) UpdateTeamMember(id string, data models.TeamMemberInput) error {
	_, err := s.DB.Exec(
		`UPDATE team_members SET name = ?, role = ?, bio = ?, image_url = ?, category = ?, linkedin = ?, twitter = ?, email = ?
		 WHERE id = ?`,
		data.Name, data.Role, data.Bio, nullIfEmpty(data.ImageURL), data.Category,
		nullIfEmpty(data.LinkedIn), nullIfEmpty(data.Twitter), nullIfEmpty(data.Email), id,
	)
	return err
}

// DeleteTeamMember hard-deletes a member.
func (s *Repository) DeleteTeamMember(id string) error {
	_, err := s.DB.Exec("DELETE FROM team_members WHERE id = ?", id)
	return err
}

// PromoteTeamToBoard moves every 'team' member into the 'board' category and
// returns the number of affected rows. This mirrors the one-off migration
// script that originally introduced the board category.
func (s *Repository) PromoteTeamToBoard() (int64, error) {
	res, err := s.DB.Exec("UPDATE team_members SET category = 'board' WHERE category = 'team'")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// filepath: internal/repository/event_repo.go
package repository

import (
	"database/sql"
	"errors"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"
)

// GetEventStatus returns the status of a content item by ID, or
// shared.ErrEventNotFound. The caller decides whether 'closed' blocks the
// operation.
func (s *Repository) GetEventStatus(eventID string) (string, error) {
	var status sql.NullString
	err := s.DB.QueryRow("SELECT status FROM content_items WHERE id = ?", eventID).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", shared.ErrEventNotFound
		}
		return "", err
	}
	return text(status), nil
}

// HasRegistration reports whether a registration already exists for the
// (event, email) pair. This is an advisory check-then-insert guard, not a
// storage constraint; concurrent submissions with the same pair can race.
func (s *Repository) HasRegistration(eventID, email string) (bool, error) {
	var id string
	err := s.DB.QueryRow(
		"SELECT id FROM event_registrations WHERE event_id = ? AND email = ?",
		eventID, email,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertRegistration appends a registration record and returns its ID.
func (s *Repository) InsertRegistration(eventID, firstName, lastName, email, phone string) (string, error) {
	id := s.NewID()
	_, err := s.DB.Exec(
		"INSERT INTO event_registrations (id, event_id, first_name, last_name, email, phone) VALUES (?, ?, ?, ?, ?, ?)",
		id, eventID, firstName, lastName, email, phone,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetEventRegistrations returns all registrations for an event, newest first.
func (s *Repository) GetEventRegistrations(eventID string) ([]models.EventRegistration, error) {
	rows, err := s.DB.Query(
		"SELECT id, event_id, first_name, last_name, email, phone, created_at FROM event_registrations WHERE event_id = ? ORDER BY created_at DESC",
		eventID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	regs := make([]models.EventRegistration, 0)
	for rows.Next() {
		var r models.EventRegistration
		if err := rows.Scan(&r.ID, &r.EventID, &r.FirstName, &r.LastName, &r.Email, &r.Phone, &r.CreatedAt); err != nil {
			return nil, err
		}
		regs = append(regs, r)
	}
	return regs, rows.Err()
}

// CountRegistrations returns the registration count for an event.
func (s *Repository) CountRegistrations(eventID string) (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM event_registrations WHERE event_id = ?", eventID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// filepath: internal/services/event_service.go
package services

import (
	"errors"

	"hcsl_site/internal/logging"
	"hcsl_site/internal/models"
	"hcsl_site/internal/repository"
	"hcsl_site/internal/revalidate"
	"hcsl_site/internal/shared"
)

var _ EventService = (*eventService)(nil)

// eventService handles public event registration.
type eventService struct {
	Repo  *repository.Repository
	Views *revalidate.Cache
}

// NewEventService creates a new EventService.
func NewEventService(repo *repository.Repository, views *revalidate.Cache) *eventService {
	return &eventService{Repo: repo, Views: views}
}

// RegisterForEvent validates the event, guards against duplicate
// registrations for the same (event, email) pair, and inserts the record.
// It never returns an error: every failure path collapses into the result
// with a user-facing message.
//
// The duplicate guard is an advisory check-then-insert; two concurrent
// submissions with the same pair can both pass the check. The storage layer
// carries no unique constraint, matching the observed production behavior.
func (s *eventService) RegisterForEvent(eventID, firstName, lastName, email, phone string) models.RegistrationResult {
	status, err := s.Repo.GetEventStatus(eventID)
	if err != nil {
		return s.registrationFailure(err)
	}
	if status == models.EventStatusClosed {
		return s.registrationFailure(shared.ErrEventClosed)
	}

	exists, err := s.Repo.HasRegistration(eventID, email)
	if err != nil {
		return s.registrationFailure(err)
	}
	if exists {
		return models.RegistrationResult{Success: false, Message: "You have already registered for this event."}
	}

	if _, err := s.Repo.InsertRegistration(eventID, firstName, lastName, email, phone); err != nil {
		return s.registrationFailure(err)
	}

	s.Views.Path(revalidate.ViewAdminEvents)
	return models.RegistrationResult{Success: true, Message: "Registration successful!"}
}

// registrationFailure converts an error into the result shape. Domain errors
// surface a specific message; storage errors get a generic one.
func (s *eventService) registrationFailure(err error) models.RegistrationResult {
	logging.Log.Errorf("EventService: registration failed: %v", err)
	switch {
	case errors.Is(err, shared.ErrEventNotFound):
		return models.RegistrationResult{Success: false, Message: "Event not found"}
	case errors.Is(err, shared.ErrEventClosed):
		return models.RegistrationResult{Success: false, Message: "Event is closed"}
	}
	return models.RegistrationResult{Success: false, Message: "Something went wrong."}
}

func (s *eventService) GetEventRegistrations(eventID string) []models.EventRegistration {
	regs, err := s.Repo.GetEventRegistrations(eventID)
	if err != nil {
		logging.Log.Errorf("EventService: failed to get registrations: %v", err)
		return []models.EventRegistration{}
	}
	return regs
}

func (s *eventService) GetEventRegistrationCount(eventID string) int {
	count, err := s.Repo.CountRegistrations(eventID)
	if err != nil {
		logging.Log.Errorf("EventService: failed to count registrations: %v", err)
		return 0
	}
	return count
}

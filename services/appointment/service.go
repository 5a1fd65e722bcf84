package appointment

import (
	"fmt"
	"time"

	appointmentRepo "estia/database/repository/appointment"
	"estia/models"

	"github.com/google/uuid"
)

// AppointmentService manages viewings and meetings.
type AppointmentService interface {
	CreateAppointment(appointment models.Appointment) (*models.Appointment, error)
	GetAppointmentByID(appointmentID string) (*models.Appointment, error)
	GetAppointmentsByAgent(agentID string) ([]models.Appointment, error)
	GetUpcomingByAgent(agentID string) ([]models.Appointment, error)
	UpdateAppointment(appointment models.Appointment) (*models.Appointment, error)
	DeleteAppointment(appointmentID string) error
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo appointmentRepo.AppointmentRepository
}

// CreateAppointment validates and stores a new appointment.
func (s *DefaultAppointmentService) CreateAppointment(appointment models.Appointment) (*models.Appointment, error) {
	if appointment.AgentID == "" {
		return nil, fmt.Errorf("agentId is required")
	}
	if appointment.ClientID == "" {
		return nil, fmt.Errorf("clientId is required")
	}
	if appointment.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if appointment.StartsAt.IsZero() || appointment.EndsAt.IsZero() {
		return nil, fmt.Errorf("startsAt and endsAt are required")
	}
	if !appointment.EndsAt.After(appointment.StartsAt) {
		return nil, fmt.Errorf("endsAt must be after startsAt")
	}

	appointment.ID = uuid.NewString()
	if err := s.Repo.Create(&appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &appointment, nil
}

// GetAppointmentByID retrieves a single appointment.
func (s *DefaultAppointmentService) GetAppointmentByID(appointmentID string) (*models.Appointment, error) {
	appointment, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment: %w", err)
	}
	return appointment, nil
}

// GetAppointmentsByAgent lists all of the agent's appointments.
func (s *DefaultAppointmentService) GetAppointmentsByAgent(agentID string) ([]models.Appointment, error) {
	appointments, err := s.Repo.GetAllByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// GetUpcomingByAgent lists the agent's appointments from now onward.
func (s *DefaultAppointmentService) GetUpcomingByAgent(agentID string) ([]models.Appointment, error) {
	appointments, err := s.Repo.GetUpcomingByAgent(agentID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming appointments: %w", err)
	}
	return appointments, nil
}

// UpdateAppointment replaces the stored appointment document.
func (s *DefaultAppointmentService) UpdateAppointment(appointment models.Appointment) (*models.Appointment, error) {
	existing, err := s.Repo.GetByID(appointment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointment: %w", err)
	}
	if !appointment.EndsAt.After(appointment.StartsAt) {
		return nil, fmt.Errorf("endsAt must be after startsAt")
	}
	appointment.AgentID = existing.AgentID
	appointment.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(&appointment); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &appointment, nil
}

// DeleteAppointment removes an appointment.
func (s *DefaultAppointmentService) DeleteAppointment(appointmentID string) error {
	if err := s.Repo.Delete(appointmentID); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

package appointmentRepo

import (
	"time"

	"estia/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by its unique ID.
	GetByID(id string) (*models.Appointment, error)
	// GetAllByAgent retrieves all appointments belonging to an agent.
	GetAllByAgent(agentID string) ([]models.Appointment, error)
	// GetUpcomingByAgent retrieves appointments starting at or after the given time.
	GetUpcomingByAgent(agentID string, from time.Time) ([]models.Appointment, error)
	// Create inserts a new appointment record.
	Create(appointment *models.Appointment) error
	// Update modifies an existing appointment record.
	Update(appointment *models.Appointment) error
	// Delete removes an appointment record by its ID.
	Delete(id string) error
}

package handlers

import (
	agentRepo "estia/database/repository/agent"
)

// HandlerBundle aggregates the handlers and the repository the auth
// middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	AgentRepo agentRepo.AgentRepository

	Agent       *AgentHandler
	Client      *ClientHandler
	Property    *PropertyHandler
	Match       *MatchHandler
	Appointment *AppointmentHandler
}

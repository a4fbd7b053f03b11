package dto

import (
	"github.com/google/uuid"
)

// AppointmentResponse represents one booked slot. Dates use dd/MM/yyyy and times HH:mm.
type AppointmentResponse struct {
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`
}

// PersonResponse represents a person row of the displayed list
type PersonResponse struct {
	Index        int                   `json:"index"`
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Phone        string                `json:"phone"`
	Email        string                `json:"email"`
	Address      string                `json:"address"`
	Role         string                `json:"role"`
	Tags         []string              `json:"tags"`
	Appointments []AppointmentResponse `json:"appointments"`
}

package cli

import (
	"fmt"
	"strings"

	"github.com/pradyuprasad/tp/internal/delivery/dto"
)

// RenderPersons renders the displayed list, one block per person
func RenderPersons(persons []dto.PersonResponse) string {
	var sb strings.Builder
	for _, p := range persons {
		sb.WriteString(renderPerson(p))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderPerson(p dto.PersonResponse) string {
	header := fmt.Sprintf("%s %s %s",
		IndexStyle.Render(fmt.Sprintf("%d.", p.Index)),
		NameStyle.Render(p.Name),
		RoleStyle.Render(p.Role),
	)
	for _, t := range p.Tags {
		header += " " + TagStyle.Render("["+t+"]")
	}

	lines := []string{
		header,
		DetailStyle.Render("Phone: " + p.Phone),
		DetailStyle.Render("Email: " + p.Email),
		DetailStyle.Render("Address: " + p.Address),
	}
	for _, a := range p.Appointments {
		lines = append(lines, DetailStyle.Render(
			fmt.Sprintf("Appointment: %s %s - %s %s", a.StartDate, a.StartTime, a.EndDate, a.EndTime)))
	}
	return strings.Join(lines, "\n")
}

// RenderHistory renders history lines, most recent first
func RenderHistory(lines []string) string {
	if len(lines) == 0 {
		return HistoryStyle.Render("(no commands entered yet)") + "\n"
	}
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(HistoryStyle.Render(l))
		sb.WriteString("\n")
	}
	return sb.String()
}

package cli

import (
	"context"
	"fmt"
)

type teamMember struct {
	name string
	role string
	area string
}

// team is the static roster shown by the about page.
var team = []teamMember{
	{name: "Ayush Kumar Chouksey", role: "Project Lead", area: "React And Backend"},
	{name: "Harsh Ahelleya", area: "React,UI/UX And Management"},
	{name: "Harsh Agnihotri", role: "PR head", area: "Management And PR"},
	{name: "Divyam Pandey", area: "UI/UX And Frontend"},
	{name: "Isha Rajput", area: "Backend"},
	{name: "Jagriti Chaudhary", area: "React"},
	{name: "Harshita Shukla", area: "Frontend"},
}

// About prints the team behind Jec Lens.
func (a *App) About(ctx context.Context) error {
	for _, m := range team {
		line := m.name
		if m.role != "" {
			line += " - " + m.role
		}
		fmt.Printf("  %s\n    %s\n", line, m.area)
	}
	return nil
}

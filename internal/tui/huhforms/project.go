package huhforms

import (
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/services/freelancing"
)

// ProjectDraft holds the fields of a freelance project
type ProjectDraft struct {
	Name        string
	Client      string
	Description string
	Status      string
	Rate        string
	Budget      string
	Deadline    string
	Confirm     bool
}

// NewProjectDraft returns an empty draft for a new lead
func NewProjectDraft() *ProjectDraft {
	return &ProjectDraft{Status: string(models.FreelanceLead), Confirm: true}
}

// ProjectDraftFrom prefills a draft from an existing project
func ProjectDraftFrom(p models.FreelanceProject) *ProjectDraft {
	return &ProjectDraft{
		Name:        p.Name,
		Client:      p.Client,
		Description: p.Description,
		Status:      string(p.Status),
		Rate:        formatFloat(p.HourlyRate),
		Budget:      formatFloat(p.Budget),
		Deadline:    formatDate(p.Deadline),
		Confirm:     true,
	}
}

// CreateProjectForm creates a huh form for adding/editing a freelance project
func CreateProjectForm(d *ProjectDraft) *huh.Form {
	return newForm("Save this project?", &d.Confirm,
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Validate(required("name")).
			Value(&d.Name),

		huh.NewInput().
			Key("client").
			Title("Client (optional)").
			Value(&d.Client),

		huh.NewText().
			Key("description").
			Title("Description (optional)").
			Placeholder("Enter project description...").
			CharLimit(500).
			Lines(3).
			Value(&d.Description),

		huh.NewSelect[string]().
			Key("status").
			Title("Status").
			Options(options(models.FreelanceStatuses)...).
			Value(&d.Status),

		huh.NewInput().
			Key("rate").
			Title("Hourly rate (optional)").
			Validate(validNumber).
			Value(&d.Rate),

		huh.NewInput().
			Key("budget").
			Title("Budget (optional)").
			Validate(validNumber).
			Value(&d.Budget),

		huh.NewInput().
			Key("deadline").
			Title("Deadline (optional)").
			Placeholder(DateLayout).
			Validate(validDate).
			Value(&d.Deadline),
	)
}

type projectFields struct {
	rate, budget *float64
	deadline     *time.Time
}

func (d *ProjectDraft) parse() (projectFields, error) {
	var f projectFields
	var err error
	if f.rate, err = parseFloat(d.Rate); err != nil {
		return f, err
	}
	if f.budget, err = parseFloat(d.Budget); err != nil {
		return f, err
	}
	f.deadline, err = parseDate(d.Deadline)
	return f, err
}

// CreateRequest converts the draft into a new project
func (d *ProjectDraft) CreateRequest() (freelancing.CreateProjectRequest, error) {
	f, err := d.parse()
	if err != nil {
		return freelancing.CreateProjectRequest{}, err
	}
	req := freelancing.CreateProjectRequest{
		Name:        strings.TrimSpace(d.Name),
		Client:      strings.TrimSpace(d.Client),
		Description: strings.TrimSpace(d.Description),
		Status:      models.FreelanceStatus(d.Status),
		Deadline:    f.deadline,
	}
	if f.rate != nil {
		req.HourlyRate = *f.rate
	}
	if f.budget != nil {
		req.Budget = *f.budget
	}
	return req, nil
}

// UpdateRequest converts the draft into an update of project id. Emptied
// numeric fields reset to zero and an emptied deadline is cleared.
func (d *ProjectDraft) UpdateRequest(id string) (freelancing.UpdateProjectRequest, error) {
	f, err := d.parse()
	if err != nil {
		return freelancing.UpdateProjectRequest{}, err
	}
	name := strings.TrimSpace(d.Name)
	client := strings.TrimSpace(d.Client)
	description := strings.TrimSpace(d.Description)
	status := models.FreelanceStatus(d.Status)
	zero := 0.0
	req := freelancing.UpdateProjectRequest{
		ID:            id,
		Name:          &name,
		Client:        &client,
		Description:   &description,
		Status:        &status,
		HourlyRate:    f.rate,
		Budget:        f.budget,
		Deadline:      f.deadline,
		ClearDeadline: f.deadline == nil,
	}
	if req.HourlyRate == nil {
		req.HourlyRate = &zero
	}
	if req.Budget == nil {
		req.Budget = &zero
	}
	return req, nil
}

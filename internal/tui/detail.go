package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thenoetrevino/lifeos/internal/adapters"
	"github.com/thenoetrevino/lifeos/internal/grades"
	"github.com/thenoetrevino/lifeos/internal/models"
	"github.com/thenoetrevino/lifeos/internal/tui/components"
	"github.com/thenoetrevino/lifeos/internal/tui/state"
)

type detailKind int

const (
	detailNone detailKind = iota
	detailTask
	detailNote
	detailSubject
)

// detailState is the full-screen view of one task, note or subject
type detailState struct {
	viewport viewport.Model
	kind     detailKind
	id       string
	title    string
}

// openDetail shows the item with id in a scrollable viewport
func (m Model) openDetail(kind detailKind, id string) {
	m.detail.kind = kind
	m.detail.id = id
	m.uiState.SetMode(state.DetailMode)
	m.refreshDetail()
	m.detail.viewport.GotoTop()
}

func (m Model) closeDetail() {
	m.detail.kind = detailNone
	m.detail.id = ""
	m.detail.title = ""
	if m.uiState.Mode() == state.DetailMode {
		m.uiState.SetMode(state.NormalMode)
	}
}

// refreshDetail re-renders the open item after a resize or reload. The
// detail closes when its item no longer exists.
func (m Model) refreshDetail() {
	d := m.detail
	if d.kind == detailNone {
		return
	}

	width := max(m.uiState.Width()-4, 20)
	d.viewport.Width = width
	d.viewport.Height = max(m.uiState.ContentHeight()-2, 3)

	var content string
	switch d.kind {
	case detailTask:
		t, ok := findByID(m.data.Tasks, d.id, func(t models.Task) string { return t.ID })
		if !ok {
			m.closeDetail()
			return
		}
		d.title = t.Title
		content = taskDetail(t, width)
	case detailNote:
		n, ok := findByID(m.data.Notes, d.id, func(n models.Note) string { return n.ID })
		if !ok {
			m.closeDetail()
			return
		}
		d.title = n.Title
		content = noteDetail(n, width)
	case detailSubject:
		s, ok := findByID(m.data.Subjects, d.id, func(s models.Subject) string { return s.ID })
		if !ok {
			m.closeDetail()
			return
		}
		d.title = s.Name
		content = m.subjectDetail(s)
	}
	d.viewport.SetContent(content)
}

func findByID[T any](items []T, id string, getID func(T) string) (T, bool) {
	for _, item := range items {
		if getID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func taskDetail(t models.Task, width int) string {
	meta := []string{"Status: " + string(t.Status)}
	if t.Priority != "" {
		meta = append(meta, "Priority: "+string(t.Priority))
	}
	if t.DueDate != nil {
		meta = append(meta, "Due: "+t.DueDate.Format("2006-01-02"))
	}
	return components.SubtleStyle.Render(strings.Join(meta, "  ·  ")) + "\n\n" +
		components.RenderMarkdown(components.MarkdownProps{
			Content: t.Description,
			Width:   width,
			Empty:   "No description",
		})
}

func noteDetail(n models.Note, width int) string {
	meta := []string{"Modified " + n.LastModified().Format("2006-01-02 15:04")}
	if n.Pinned {
		meta = append(meta, "pinned")
	}
	if len(n.Tags) > 0 {
		meta = append(meta, "#"+strings.Join(n.Tags, " #"))
	}
	return components.SubtleStyle.Render(strings.Join(meta, "  ·  ")) + "\n\n" +
		components.RenderMarkdown(components.MarkdownProps{
			Content: n.Content,
			Width:   width,
		})
}

func (m Model) subjectDetail(s models.Subject) string {
	calc := m.data.Grades[s.ID]
	var b strings.Builder

	if calc.TotalPossible > 0 {
		fmt.Fprintf(&b, "Grade: %.1f%% (%s)  %.1f / %.1f\n", calc.Percentage, grades.Letter(calc.Percentage), calc.TotalEarned, calc.TotalPossible)
		b.WriteString(components.RenderProgress(grades.Clamp(calc.Percentage), progressWidth))
		b.WriteString("\n")
		fmt.Fprintf(&b, "Exams %.1f/%.1f  Entries %.1f/%.1f  Bonus +%.1f  Deductions -%.1f\n",
			calc.ExamGrades.Earned, calc.ExamGrades.Possible,
			calc.EntryGrades.Earned, calc.EntryGrades.Possible,
			calc.BonusPoints, calc.Deductions)
	} else {
		b.WriteString(components.SubtleStyle.Render("No grades recorded yet") + "\n")
	}

	section := lipgloss.NewStyle().Bold(true).MarginTop(1)
	b.WriteString(section.Render("Exams") + "\n")
	exams := m.data.Exams[s.ID]
	if len(exams) == 0 {
		b.WriteString(components.SubtleStyle.Render("  none") + "\n")
	}
	for _, e := range exams {
		b.WriteString("  " + adapters.ExamLine(e) + "\n")
	}

	b.WriteString(section.Render("Grade entries") + "\n")
	entries := m.data.Entries[s.ID]
	if len(entries) == 0 {
		b.WriteString(components.SubtleStyle.Render("  none") + "\n")
	}
	for _, g := range entries {
		b.WriteString("  " + adapters.EntryLine(g) + "\n")
	}

	b.WriteString("\n" + components.SubtleStyle.Render(fmt.Sprintf("%s add exam · %s add grade entry",
		m.keys.AddExam.Help().Key, m.keys.AddEntry.Help().Key)))
	return b.String()
}

// ============================================================================
// DETAIL MODE HANDLERS
// ============================================================================

// handleDetailMode handles keys while an item is shown full screen
func (m Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	d := m.detail
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back, m.keys.CancelDrag):
		m.closeDetail()
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		return m, m.editDetail()
	case d.kind == detailSubject && key.Matches(msg, m.keys.AddExam):
		return m, m.openAddExam(d.id)
	case d.kind == detailSubject && key.Matches(msg, m.keys.AddEntry):
		return m, m.openAddEntry(d.id)
	}

	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return m, cmd
}

// editDetail opens the edit form for the shown item; the form returns to
// the detail view
func (m Model) editDetail() tea.Cmd {
	d := m.detail
	switch d.kind {
	case detailTask:
		if t, ok := findByID(m.data.Tasks, d.id, func(t models.Task) string { return t.ID }); ok {
			return m.openEditTask(t)
		}
	case detailNote:
		if n, ok := findByID(m.data.Notes, d.id, func(n models.Note) string { return n.ID }); ok {
			return m.openEditNote(n)
		}
	case detailSubject:
		if s, ok := findByID(m.data.Subjects, d.id, func(s models.Subject) string { return s.ID }); ok {
			return m.openEditSubject(s)
		}
	}
	return nil
}

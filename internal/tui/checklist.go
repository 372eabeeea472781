package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/ui"
)

type checklistModel struct {
	ctx context.Context
	svc *tracker.Service

	catalog []tracker.TaskDefinition
	checked map[string]bool

	cursor  int
	width   int
	loading bool

	lastLog string
	result  *tracker.SubmitResult
	err     error
}

type loadedMsg struct {
	record *tracker.DayRecord
	streak int
	err    error
}

type submittedMsg struct {
	res *tracker.SubmitResult
	err error
}

func newChecklistModel(ctx context.Context, svc *tracker.Service) checklistModel {
	return checklistModel{
		ctx:     ctx,
		svc:     svc,
		catalog: svc.Catalog(),
		checked: map[string]bool{},
		loading: true,
		lastLog: "Loading…",
	}
}

func (m checklistModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd pre-checks today's boxes from an existing submission, so
// resubmitting edits the day instead of starting blank.
func (m checklistModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		rec, err := m.svc.TodayRecord(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		streak, err := m.svc.CurrentStreak(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{record: rec, streak: streak}
	}
}

func (m checklistModel) submitCmd() tea.Cmd {
	completion := make(map[string]bool, len(m.checked))
	for k, v := range m.checked {
		completion[k] = v
	}
	return func() tea.Msg {
		res, err := m.svc.SubmitDay(m.ctx, completion)
		return submittedMsg{res: res, err: err}
	}
}

func (m checklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.record != nil {
			for name, done := range msg.record.Completion {
				m.checked[name] = done
			}
			m.lastLog = "Today already submitted; submitting again overwrites it."
		} else {
			m.lastLog = fmt.Sprintf("Streak so far: %d. Check off your day and press enter.", msg.streak)
		}
		return m, nil
	case submittedMsg:
		if msg.err != nil {
			m.lastLog = "Submit failed: " + msg.err.Error()
			return m, nil
		}
		m.result = msg.res
		m.lastLog = fmt.Sprintf("Submitted %s.", msg.res.Day)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.catalog)-1 {
				m.cursor++
			}
			return m, nil
		case " ", "x":
			if m.cursor >= 0 && m.cursor < len(m.catalog) {
				name := m.catalog[m.cursor].Name
				m.checked[name] = !m.checked[name]
				m.result = nil
			}
			return m, nil
		case "enter", "s":
			m.lastLog = "Submitting…"
			return m, m.submitCmd()
		}
	}
	return m, nil
}

func (m checklistModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return m.lastLog + "\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconStar, "My Perfect Day") + "\n\n")

	score := tracker.Score(m.checked, m.catalog)
	for i, t := range m.catalog {
		cursor := "  "
		if i == m.cursor {
			cursor = ui.SelectedRow.Render("> ")
		}
		box := "[ ]"
		if m.checked[t.Name] {
			box = "[x]"
		}
		label := fmt.Sprintf("%s (%.0f%%)", t.Name, t.Weight)
		if i == m.cursor {
			label = ui.SelectedRow.Render(label)
		} else {
			label = ui.TaskColor(t.Color).Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, label))
	}

	b.WriteString("\n" + ui.LabelValue("Score", ui.ScoreText(score)) + "\n")
	if m.result != nil {
		b.WriteString(ui.StreakText(m.result.Streak) + "\n")
		for _, name := range m.result.NewlyUnlocked {
			b.WriteString(ui.Gold.Render(ui.IconTrophy+" Unlocked: "+name) + "\n")
		}
	}
	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(ui.Muted.Render("space: toggle · enter: submit day · q: quit") + "\n")
	return b.String()
}

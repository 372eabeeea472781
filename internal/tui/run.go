package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

func RunChecklist(ctx context.Context, svc *tracker.Service, out io.Writer) error {
	m := newChecklistModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

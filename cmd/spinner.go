package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

type progressFunc func(accounts int)

type workDoneMsg struct {
	err error
}

type workProgressMsg struct {
	accounts int
}

type progressSpinnerModel struct {
	spinner  spinner.Model
	label    string
	work     tea.Cmd
	accounts int
	err      error
	done     bool
}

func newProgressSpinnerModel(label string, work tea.Cmd) progressSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return progressSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
	}
}

func (m progressSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m progressSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workProgressMsg:
		m.accounts = msg.accounts
		return m, nil
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m progressSpinnerModel) View() string {
	if m.done {
		return ""
	}
	if m.accounts == 0 {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
	}

	return fmt.Sprintf("%s %s %s accounts", m.spinner.View(), m.label, humanize.Comma(int64(m.accounts)))
}

// runWithProgress runs work behind a spinner on output when animate is true,
// and plainly otherwise. The spinner only displays progress; work does every
// request itself.
func runWithProgress(ctx context.Context, output io.Writer, animate bool, label string, work func(context.Context, progressFunc) error) error {
	if !animate {
		return work(ctx, func(int) {})
	}

	var p *tea.Program
	progress := func(accounts int) {
		p.Send(workProgressMsg{accounts: accounts})
	}
	workCmd := func() tea.Msg {
		return workDoneMsg{err: work(ctx, progress)}
	}

	p = tea.NewProgram(
		newProgressSpinnerModel(label, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(progressSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}

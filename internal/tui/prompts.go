package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zeittui/zeittui/internal/tracker"
	"github.com/zeittui/zeittui/internal/ui"
)

// promptCommand adapts a plain function to tea.ExecCommand. bubbletea
// leaves the alternate screen and restores cooked mode before Run, and
// unconditionally re-enters the session afterwards, so the prompt flows
// below never have to manage terminal state themselves.
type promptCommand struct {
	body func() error
}

func (c *promptCommand) Run() error          { return c.body() }
func (c *promptCommand) SetStdin(io.Reader)  {}
func (c *promptCommand) SetStdout(io.Writer) {}
func (c *promptCommand) SetStderr(io.Writer) {}

// suspendFor wraps body in a tea.Exec command. The returned error, if
// any, is delivered as a trackDoneMsg once the session is back.
func suspendFor(body func() error) tea.Cmd {
	return tea.Exec(&promptCommand{body: body}, func(err error) tea.Msg {
		return trackDoneMsg{err: err}
	})
}

// startFlow suspends the session, collects the start answers, and runs
// the tracker command while still outside the alternate screen so the
// spinner has somewhere to draw.
func startFlow(client tracker.Client) tea.Cmd {
	return suspendFor(func() error {
		project, err := ui.PromptRequired("Enter project name", "project name")
		if err != nil {
			return err
		}
		task, err := ui.PromptOptional("Enter task name (optional)")
		if err != nil {
			return err
		}
		begin, err := ui.PromptOptional("Enter start time (e.g. '16:00' or '-0:15', leave empty for now)")
		if err != nil {
			return err
		}

		return ui.WithSpinner("Starting tracking", func() error {
			return client.Start(tracker.StartOptions{
				Project: project,
				Task:    task,
				Begin:   begin,
			})
		})
	})
}

// finishFlow suspends the session and runs the finish command. All three
// answers are optional.
func finishFlow(client tracker.Client) tea.Cmd {
	return suspendFor(func() error {
		task, err := ui.PromptOptional("Enter new task name (optional)")
		if err != nil {
			return err
		}
		begin, err := ui.PromptOptional("Adjust start time (optional)")
		if err != nil {
			return err
		}
		finish, err := ui.PromptOptional("Adjust finish time (optional)")
		if err != nil {
			return err
		}

		return ui.WithSpinner("Finishing tracking", func() error {
			return client.Finish(tracker.FinishOptions{
				Task:   task,
				Begin:  begin,
				Finish: finish,
			})
		})
	})
}

package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"cee/internal/driver"
)

// RunWithProgress runs work in the background and shows its progress
// events until work returns. work must not close the channel.
func RunWithProgress[T any](out io.Writer, title string, files []string, work func(driver.ProgressSink) (T, error)) (T, error) {
	events := make(chan driver.Event, 256)
	type outcome struct {
		res T
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		res, err := work(driver.ChannelSink(events))
		done <- outcome{res: res, err: err}
		close(events)
	}()

	program := tea.NewProgram(NewProgressModel(title, files, events), tea.WithOutput(out))
	_, uiErr := program.Run()
	// UI мог выйти раньше (ctrl+c): дочитываем события, чтобы воркеры не встали на полном канале
	go func() {
		for range events {
		}
	}()
	res := <-done
	if uiErr != nil {
		return res.res, uiErr
	}
	return res.res, res.err
}

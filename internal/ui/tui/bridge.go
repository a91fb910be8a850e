package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/louisbranch/emberclash.quest/internal/ui"
)

// Messages the Bridge forwards into the program loop.
type (
	lineMsg   string
	promptMsg string
	doneMsg   struct{ err error }
)

// Bridge implements the game's input and output seams over a bubbletea
// program. The session runs on its own goroutine: output lines and
// prompt requests are forwarded as program messages, and the player's
// replies come back over a channel.
//
// The context bounds every Read. Canceling it releases a session
// blocked on input after the program has quit.
type Bridge struct {
	ctx     context.Context
	send    func(tea.Msg)
	replies chan string
}

var (
	_ ui.Input  = (*Bridge)(nil)
	_ ui.Output = (*Bridge)(nil)
)

// NewBridge returns a Bridge. Attach it to the program before starting
// the session.
func NewBridge(ctx context.Context) *Bridge {
	return &Bridge{
		ctx:     ctx,
		replies: make(chan string, 1),
	}
}

// Attach wires the Bridge to a running program.
func (b *Bridge) Attach(program *tea.Program) {
	b.send = program.Send
}

// Read forwards prompt to the program and blocks until the player
// submits a reply or the context is canceled.
func (b *Bridge) Read(prompt string) (string, error) {
	if b.send == nil {
		return "", errors.New("bridge is not attached")
	}
	b.send(promptMsg(prompt))
	select {
	case <-b.ctx.Done():
		return "", b.ctx.Err()
	case reply := <-b.replies:
		return reply, nil
	}
}

// Write forwards one line of game text to the program.
func (b *Bridge) Write(text string) {
	if b.send == nil {
		return
	}
	b.send(lineMsg(text))
}

// Done tells the program the session finished. A nil error means the
// player exited through the game itself.
func (b *Bridge) Done(err error) {
	if b.send == nil {
		return
	}
	b.send(doneMsg{err: err})
}

// reply hands the player's submitted line to the blocked Read. The
// drop-on-full send keeps the program loop from wedging if no Read is
// waiting.
func (b *Bridge) reply(value string) {
	select {
	case b.replies <- value:
	default:
	}
}

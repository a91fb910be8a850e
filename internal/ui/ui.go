// Package ui declares the input and output seams between the game core
// and its front ends. The core reads choices and writes lines through
// these interfaces only; terminals, buffers, and TUI programs live in
// the adapter packages underneath.
package ui

// Input reads one line of player input after presenting prompt.
// Implementations return the raw line without the trailing newline.
type Input interface {
	Read(prompt string) (string, error)
}

// Output writes one line of game text to the player.
type Output interface {
	Write(text string)
}

// OutputFunc adapts a function to the Output interface.
type OutputFunc func(text string)

// Write calls f with text.
func (f OutputFunc) Write(text string) { f(text) }

// Package flow drives a play session as a state machine.
//
// A Context carries everything a session needs: the event bus, the
// input and output seams, a localized printer, the random source, the
// attack strategy, and the combatants of the battle in progress. States
// implement one screen each and hand off by calling SetState; the
// session ends when a state sets the next state to nil.
//
// # States
//
// MainMenu offers a new game or exit. CharacterCreation names the
// player and rolls an enemy. Play runs the battle to its end and
// records the outcome. GameOver announces the result and offers a
// rematch. Exit says goodbye and stops the machine.
//
// Player input never fails a state: unrecognized choices and empty
// names produce a localized notice and the state runs again. Errors
// are reserved for broken seams, such as a closed input stream.
package flow

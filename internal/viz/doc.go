// Package viz is the interactive terminal front-end for the orbital
// simulator. It is the external driver of the core: a bubbletea event
// loop owns the session, steps it on a fixed tick, and renders bodies,
// trail, and the fading kick indicator onto a braille canvas.
//
// All session mutation happens on the bubbletea goroutine, satisfying
// the core's single-writer requirement.
package viz

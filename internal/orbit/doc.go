// Package orbit provides the core state model for a two-body
// gravitational simulation: a heavy fixed primary and a light
// secondary advanced by fixed-step semi-implicit Euler integration.
//
// The central type is [Session], which owns both bodies, the trail
// history, and the pause/halt state machine:
//
//   - [NewSession]: build a session from a [Config]
//   - [Session.Step]: advance one timestep, guarding collisions
//   - [Session.ApplyKick]: add an impulse to the secondary's velocity
//   - [Session.TogglePause]: manual pause toggle
//
// # Integration
//
// Step updates velocity from acceleration first, then position from
// the already-updated velocity. This semi-implicit ordering keeps the
// orbital energy bounded over long runs, unlike naive explicit Euler.
//
// # Thread Safety
//
// Session instances are NOT thread-safe. A single driver goroutine
// must own all mutations (Step, ApplyKick, TogglePause, Reset).
package orbit

// Package viz animates solves in the terminal.
//
// [RunLive] steps a solve incrementally inside a Bubble Tea program
// and redraws the trajectory so far as an ascii chart.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from the initial condition
//	Q     - Quit
package viz

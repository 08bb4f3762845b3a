// Package viz renders height fields in the terminal.
//
//   - [Profile]: asciigraph plot of one time slice
//   - [Summary]: styled block of parameters and metrics for a run
//   - [Viewer]: Bubble Tea program for scrubbing through time slices
//
// # Key Bindings
//
//	←/→ or h/l - Step backward/forward one timestep
//	PgUp/PgDn  - Jump ten timesteps
//	Home/End   - First/last timestep
//	Space      - Play/Pause
//	q          - Quit
package viz

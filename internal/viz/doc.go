// Package viz renders series evaluations in the terminal and to image files.
//
// Three layers, smallest first:
//
//   - [SweepChart] and [DeltaChart]: asciigraph charts for sweep curves and
//     log-scale delta histories
//   - [RenderFile]: gonum/plot writer for PNG/SVG/PDF sweep figures
//   - [RunInteractive]: Bubble Tea explorer that replays a convergence
//     evaluation term by term
//
// # Key Bindings
//
//	↑/↓   - move selection (menu), adjust the focused parameter (explorer)
//	Tab   - cycle the focused parameter (x, precision)
//	Enter - evaluate the selected series
//	Space - pause/resume playback
//	R     - restart playback
//	Q     - back out / quit
package viz

// Package viz provides terminal rendering of classification runs.
//
//   - [Canvas]: Braille canvas where every cell carries a palette color
//   - [ScatterPlot]: one row band per label, one dot per integer
//   - [Explorer]: Bubble Tea program for stepping through integers and
//     inspecting their label, cycle and trajectory
//
// # Key Bindings
//
//	←/→ h/l  - Move cursor by one
//	PgUp/PgDn - Move cursor by ten
//	Home/End - Jump to first or last integer
//	?        - Toggle help
//	Q        - Quit
package viz

// Package viz renders artwork and editor chrome for the terminal.
//
//   - [Terminal]: half-block rendering, two grid rows per text line
//   - [Block]: a single grid cell as a two-column swatch
//   - [Profile], [Usage]: per-row fill chart and per-color counts
//   - [Theme]: chrome colors, five built in
package viz

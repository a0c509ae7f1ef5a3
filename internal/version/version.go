// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.1.0"

// Milestones:
// 0.1.0 - Initial release: prayer-time kernel, qibla accessory, sunnah
//         times, Bubble Tea TUI, headless modes, batch-benchmark demo

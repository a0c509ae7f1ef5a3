// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arafathusayn/masjiduna-waqt/internal/prayer"
	"github.com/arafathusayn/masjiduna-waqt/internal/qibla"
	"github.com/arafathusayn/masjiduna-waqt/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewTimes ViewMode = iota
	ViewDiagnostics
)

// Msg types for Bubble Tea.
type (
	// TickMsg fires once a second; Update only schedules the next one.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time
)

// Model is the root Bubble Tea model. It owns a long-lived prayer.Context
// (one resolved Config, repeated Compute calls across dates), so navigating
// between days never re-resolves the configuration.
type Model struct {
	ctx *prayer.Context
	loc *time.Location

	dateMs float64
	view   prayer.View

	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	animTick  int
	statusMsg string
}

// New creates a new root UI model for the given resolved configuration,
// starting on dateMs (UTC midnight of the civil date), displayed in loc.
func New(ctx *prayer.Context, dateMs float64, loc *time.Location) Model {
	return Model{
		ctx:      ctx,
		loc:      loc,
		dateMs:   dateMs,
		view:     ctx.Compute(dateMs),
		viewMode: ViewTimes,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), animTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "t":
			m.viewMode = ViewTimes
		case "2", "g":
			m.viewMode = ViewDiagnostics
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case "left", "h":
			m.dateMs -= 86_400_000
			m.view = m.ctx.Compute(m.dateMs)
			m.statusMsg = ""
		case "right", "l":
			m.dateMs += 86_400_000
			m.view = m.ctx.Compute(m.dateMs)
			m.statusMsg = ""
		case "0":
			m.dateMs = todayUTCMidnightMs()
			m.view = m.ctx.Compute(m.dateMs)
			m.statusMsg = ""

		case "r":
			m.ctx.Clear()
			m.view = m.ctx.Compute(m.dateMs)
			m.statusMsg = "caches cleared, recomputed"
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		cmds = append(cmds, tickCmd())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewTimes:
		content = m.renderTimes()
	case ViewDiagnostics:
		content = m.renderDiagnostics()
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	header := m.renderHeader()
	footer := m.renderFooter()
	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderStatusLine()
}

func (m Model) renderLogo() string {
	logo := []string{
		`  ██╗    ██╗ █████╗  ██████╗ ████████╗`,
		`  ██║    ██║██╔══██╗██╔═══██╗╚══██╔══╝`,
		`  ██║ █╗ ██║███████║██║   ██║   ██║   `,
		`  ██║███╗██║██╔══██║██║▄▄ ██║   ██║   `,
		`  ╚███╔███╔╝██║  ██║╚██████╔╝   ██║   `,
		`   ╚══╝╚══╝ ╚═╝  ╚═╝ ╚══▀▀═╝    ╚═╝   `,
	}

	var b strings.Builder
	b.WriteString("\n")

	for row, line := range logo {
		runes := []rune(line)
		lineLen := len(runes)
		for col, r := range runes {
			color := gradientColor(col, row, lineLen, len(logo))
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			b.WriteString(style.Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("101"))
	b.WriteString(muted.Render("  Prayer times · Meeus low-precision solar ephemeris"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  v%s | [0] today  [h/l] day ±1  [r] clear caches", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor interpolates a green-to-gold sweep across the logo, brighter
// near the top row than the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	// Deep green (#1B4332) -> olive (#6A7B2E) -> gold (#D4AF37)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 27 + t*(106-27)
		g = 67 + t*(123-67)
		b = 50 + t*(46-50)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 106 + t*(212-106)
		g = 123 + t*(175-123)
		b = 46 + t*(55-46)
	}

	brightness := 1.0 - (yRatio * 0.35)
	r *= brightness
	g *= brightness
	b *= brightness

	clamp := func(v float64) int {
		if v > 255 {
			return 255
		}
		if v < 0 {
			return 0
		}
		return int(v)
	}

	return fmt.Sprintf("#%02X%02X%02X", clamp(r), clamp(g), clamp(b))
}

func (m Model) renderStatusLine() string {
	return m.renderTabs() + "\n"
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Times", "[2] Diagnostics"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D4AF37")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("101"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("101"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6A7B2E"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	dateLabel := formatDate(m.dateMs, m.loc)
	status := accentStyle.Render(spinner) + dimStyle.Render(" "+dateLabel)

	help := dimStyle.Render("tab: switch view | q: quit")
	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help

	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}

	return footer
}

func (m Model) renderTimes() string {
	meta := m.view.Metadata()
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("101")).Width(14)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D4AF37")).Bold(true)
	undefStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7A2E2E"))

	row := func(label string, r prayer.PrayerResult) string {
		var v string
		if r.Valid {
			v = valueStyle.Render(formatClock(r.Ms, m.loc))
		} else {
			v = undefStyle.Render(r.Reason)
		}
		return "  " + labelStyle.Render(label) + v
	}

	var b strings.Builder
	b.WriteString(row("Imsak", m.view.Imsak()) + "\n")
	b.WriteString(row("Fajr", m.view.Fajr()) + "\n")
	b.WriteString(row("Sunrise", m.view.Sunrise()) + "\n")
	b.WriteString(row("Dhuhr", m.view.Dhuhr()) + "\n")
	b.WriteString(row("Asr", m.view.Asr()) + "\n")
	b.WriteString(row("Sunset", m.view.Sunset()) + "\n")
	b.WriteString(row("Maghrib", m.view.Maghrib()) + "\n")
	b.WriteString(row("Isha", m.view.Isha()) + "\n")
	b.WriteString(row("Midnight", m.view.Midnight()) + "\n")
	b.WriteString(row("First third", m.view.FirstThird()) + "\n")
	b.WriteString(row("Last third", m.view.LastThird()) + "\n")
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  declination %.3f°  eqt %.3fm  solar noon %s  JD %.4f\n",
		meta.DeclinationDeg, meta.EqtMinutes, formatClock(meta.SolarNoonMs, m.loc), meta.JulianDate))

	return b.String()
}

func (m Model) renderDiagnostics() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("101")).Width(14)

	row := func(label string, r prayer.PrayerResult) string {
		d := r.Diagnostics
		cos := "n/a"
		if d.CosOmega != nil {
			cos = fmt.Sprintf("%.6f", *d.CosOmega)
		}
		return fmt.Sprintf("  %scos(H0)=%-10s clamped=%-5v fallback=%-18s target_alt=%.3f°",
			labelStyle.Render(label), cos, d.Clamped, fallbackName(d.FallbackUsed), d.TargetAltitudeDeg)
	}

	var b strings.Builder
	b.WriteString(row("Fajr", m.view.Fajr()) + "\n")
	b.WriteString(row("Sunrise", m.view.Sunrise()) + "\n")
	b.WriteString(row("Asr", m.view.Asr()) + "\n")
	b.WriteString(row("Sunset", m.view.Sunset()) + "\n")
	b.WriteString(row("Maghrib", m.view.Maghrib()) + "\n")
	b.WriteString(row("Isha", m.view.Isha()) + "\n")

	return b.String()
}

func fallbackName(k prayer.FallbackKind) string {
	switch k {
	case prayer.FallbackInterval:
		return "interval"
	case prayer.FallbackMiddleOfNight:
		return "middle_of_night"
	case prayer.FallbackSeventhOfNight:
		return "seventh_of_night"
	case prayer.FallbackTwilightAngle:
		return "twilight_angle"
	default:
		return "none"
	}
}

// QiblaLine renders the qibla bearing for a location as one line of text.
// The TUI views do not show it; cmd/waqt prints it in --qibla mode.
func QiblaLine(latDeg, lngDeg float64) string {
	bearing := qibla.Bearing(latDeg, lngDeg)
	return fmt.Sprintf("qibla bearing: %.2f° from true north", bearing)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// formatClock renders an absolute UTC millisecond instant as HH:MM in loc —
// the display-boundary conversion the core kernel deliberately never
// performs.
func formatClock(ms float64, loc *time.Location) string {
	t := time.UnixMilli(int64(ms)).In(loc)
	return t.Format("15:04")
}

func formatDate(ms float64, loc *time.Location) string {
	t := time.UnixMilli(int64(ms)).In(loc)
	return t.Format("Mon, 02 Jan 2006")
}

func todayUTCMidnightMs() float64 {
	now := time.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return float64(midnight.UnixMilli())
}

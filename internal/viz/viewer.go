package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tsunami/internal/metrics"
	"github.com/san-kum/tsunami/internal/wave"
)

const frameInterval = 50 * time.Millisecond

type TickMsg time.Time

// Viewer steps through the time slices of a finished run.
type Viewer struct {
	field         *wave.Field
	energy        []float64
	step          int
	playing       bool
	width, height int
}

func NewViewer(f *wave.Field) Viewer {
	return Viewer{
		field:  f,
		energy: metrics.EnergySeries(f),
		width:  80,
		height: 24,
	}
}

// Step reports the timestep on screen.
func (v Viewer) Step() int { return v.step }

// Playing reports whether playback is running.
func (v Viewer) Playing() bool { return v.playing }

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	case TickMsg:
		if !v.playing {
			return v, nil
		}
		if v.step >= v.last() {
			v.playing = false
			return v, nil
		}
		v.step++
		return v, tick()
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return v, tea.Quit
	case "right", "l":
		v.step = min(v.step+1, v.last())
	case "left", "h":
		v.step = max(v.step-1, 0)
	case "pgdown":
		v.step = min(v.step+10, v.last())
	case "pgup":
		v.step = max(v.step-10, 0)
	case "home", "g":
		v.step = 0
	case "end", "G":
		v.step = v.last()
	case " ":
		v.playing = !v.playing
		if v.playing {
			if v.step >= v.last() {
				v.step = 0
			}
			return v, tick()
		}
	}
	return v, nil
}

func (v Viewer) last() int { return v.field.Timesteps() - 1 }

func (v Viewer) View() string {
	plotWidth := max(v.width-12, 20)
	plotHeight := max(v.height-10, 5)

	status := StatusPaused.Render("paused")
	if v.playing {
		status = StatusRunning.Render("playing")
	}

	var sb strings.Builder
	sb.WriteString(Title.Render("tsunami") + "  " + status + "\n\n")
	sb.WriteString(StepProfile(v.field, v.step, plotWidth, plotHeight))
	sb.WriteString("\n\n")
	sb.WriteString(MetricLabel.Render("energy") + Sparkline(v.energy, plotWidth) + "\n")
	sb.WriteString(MetricLabel.Render("energy now") + MetricValue.Render(fmt.Sprintf("%.6g", v.energy[v.step])) + "\n\n")
	sb.WriteString(KeyHint.Render("←/→ step  pgup/pgdn ×10  home/end  space play  q quit"))
	return sb.String()
}

// RunViewer blocks until the user quits the viewer.
func RunViewer(f *wave.Field) error {
	_, err := tea.NewProgram(NewViewer(f), tea.WithAltScreen()).Run()
	return err
}

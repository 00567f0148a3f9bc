package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/roclab/internal/player"
	"github.com/san-kum/roclab/internal/remote"
	"github.com/san-kum/roclab/internal/system"
)

type TickMsg time.Time

// PlayModel is the interactive playback view for convolution frames. The
// frame array is immutable input; all sequencing goes through the player
// controller, and this model owns the single tea.Tick timer.
type PlayModel struct {
	result *remote.ConvolutionResult
	ctrl   *player.Controller
	domain system.Domain
	width  int
}

func NewPlayModel(result *remote.ConvolutionResult, domain system.Domain) PlayModel {
	return PlayModel{
		result: result,
		ctrl:   player.New(len(result.Frames), player.PeriodFor(domain)),
		domain: domain,
		width:  80,
	}
}

func (m PlayModel) tick() tea.Cmd {
	return tea.Tick(m.ctrl.Period(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m PlayModel) Init() tea.Cmd { return nil }

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.ctrl.Status() == player.Playing {
				m.ctrl.Pause()
				return m, nil
			}
			if m.ctrl.Play() {
				return m, m.tick()
			}
		case "left", "h":
			m.seekBy(-1)
		case "right", "l":
			m.seekBy(1)
		case "home", "r":
			m.ctrl.Reset()
		case "end":
			m.seekBy(m.ctrl.Frames())
		}
		return m, nil
	case TickMsg:
		if m.ctrl.Tick() {
			return m, m.tick()
		}
		return m, nil
	}
	return m, nil
}

// seekBy clamps to the frame range, so Seek cannot fail here; the error is
// discarded deliberately.
func (m *PlayModel) seekBy(delta int) {
	if m.ctrl.Frames() == 0 {
		return
	}
	i := m.ctrl.Index() + delta
	if i < 0 {
		i = 0
	}
	if last := m.ctrl.Frames() - 1; i > last {
		i = last
	}
	_ = m.ctrl.Seek(i)
}

func (m PlayModel) View() string {
	if len(m.result.Frames) == 0 {
		return subtleStyle.Render("no frames") + "\n"
	}

	idx := m.ctrl.Index()
	frame := m.result.Frames[idx]

	var b strings.Builder
	signal := "y(t) = x(t) * h(t)"
	if m.domain == system.ZTransform {
		signal = "y[n] = x[n] * h[n]"
	}
	b.WriteString("  " + titleStyle.Render("CONVOLUTION") + "  " + subtleStyle.Render(signal) + "\n\n")

	graphWidth := m.width - 12
	if graphWidth < 20 {
		graphWidth = 20
	}

	// Flipped-and-shifted impulse response over the fixed input trace.
	b.WriteString(graphStyle.Render(asciigraph.Plot(frame.HShifted,
		asciigraph.Height(6),
		asciigraph.Width(graphWidth),
		asciigraph.Caption(fmt.Sprintf("h shifted to t=%.2f", frame.T)),
	)))
	b.WriteString("\n\n")

	// Output trace up to the current frame.
	b.WriteString(graphStyle.Render(asciigraph.Plot(m.outputTrace(idx),
		asciigraph.Height(6),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("accumulated output"),
	)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  frame %d/%d  t=%.2f  y=%.4f  %s\n",
		idx+1, m.ctrl.Frames(), frame.T, frame.CurrentY,
		accentStyle.Render(m.ctrl.Status().String())))
	b.WriteString(m.progressBar())
	b.WriteString(helpStyle.Render("  " +
		helpKeyStyle.Render("space") + " play/pause  " +
		helpKeyStyle.Render("h/l") + " step  " +
		helpKeyStyle.Render("r") + " rewind  " +
		helpKeyStyle.Render("q") + " quit"))
	b.WriteString("\n")
	return b.String()
}

// outputTrace returns y values through the current frame, padded so the
// graph scale stays fixed during playback.
func (m PlayModel) outputTrace(idx int) []float64 {
	trace := make([]float64, len(m.result.Y))
	last := 0.0
	for i := range trace {
		if i <= idx && i < len(m.result.Y) {
			last = m.result.Y[i]
		}
		trace[i] = last
	}
	if len(trace) == 0 {
		return []float64{0}
	}
	return trace
}

func (m PlayModel) progressBar() string {
	barWidth := 40
	frames := m.ctrl.Frames()
	filled := 0
	if frames > 1 {
		filled = int(math.Round(float64(m.ctrl.Index()) / float64(frames-1) * float64(barWidth)))
	}
	return "  [" + strings.Repeat("=", filled) + strings.Repeat(" ", barWidth-filled) + "]\n"
}

// RunPlayer starts the playback TUI.
func RunPlayer(result *remote.ConvolutionResult, domain system.Domain) error {
	_, err := tea.NewProgram(NewPlayModel(result, domain), tea.WithAltScreen()).Run()
	return err
}

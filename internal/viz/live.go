package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kyeongh0324/two-body-problem/internal/config"
	"github.com/kyeongh0324/two-body-problem/internal/orbit"
)

const (
	canvasCols = 80
	canvasRows = 24

	angleStep     = 15.0
	magnitudeStep = 5.0
)

type TickMsg time.Time

// Model drives one orbital session from the bubbletea event loop.
type Model struct {
	cfg     *config.Config
	session *orbit.Session
	canvas  *Canvas

	kickAngle float64
	kickMag   float64

	stepsPerTick int
	tick         time.Duration

	degenerate bool
	showHelp   bool
}

// NewModel builds the live view. A degenerate separation still yields
// a usable model (the session starts paused and the view says why);
// any other invalid configuration is an error.
func NewModel(cfg *config.Config) (Model, error) {
	session, err := orbit.NewSession(cfg.Orbit())
	degenerate := errors.Is(err, orbit.ErrDegenerateConfig)
	if err != nil && !degenerate {
		return Model{}, err
	}

	fps := cfg.FrameRate
	if fps < 1 {
		fps = config.DefaultFrameRate
	}

	// Advance sim time at roughly wall-clock rate: enough fixed steps
	// per frame to cover one frame interval.
	steps := int(1.0/(float64(fps)*cfg.Dt) + 0.5)
	if steps < 1 {
		steps = 1
	}

	return Model{
		cfg:          cfg,
		session:      session,
		canvas:       NewCanvas(canvasCols, canvasRows),
		kickAngle:    cfg.Kick.AngleDeg,
		kickMag:      cfg.Kick.Magnitude,
		stepsPerTick: steps,
		tick:         time.Second / time.Duration(fps),
		degenerate:   degenerate,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.session.TogglePause()
		case "r":
			if err := m.session.Reset(m.cfg.Orbit()); err != nil {
				m.degenerate = errors.Is(err, orbit.ErrDegenerateConfig)
			} else {
				m.degenerate = false
			}
		case "left":
			m.kickAngle = math.Mod(m.kickAngle+angleStep+360, 360)
		case "right":
			m.kickAngle = math.Mod(m.kickAngle-angleStep+360, 360)
		case "up":
			m.kickMag += magnitudeStep
		case "down":
			if m.kickMag > magnitudeStep {
				m.kickMag -= magnitudeStep
			}
		case "k", "enter":
			// Paused sessions reject the kick; nothing to surface
			// beyond the status line already saying "paused".
			_ = m.session.ApplyKick(m.kickAngle, m.kickMag)
		case "h", "?":
			m.showHelp = !m.showHelp
		}
		return m, nil

	case TickMsg:
		if !m.session.Paused() {
			for i := 0; i < m.stepsPerTick; i++ {
				if out := m.session.Step(); out.Halted {
					break
				}
			}
		}
		return m, tea.Tick(m.tick, func(t time.Time) tea.Msg { return TickMsg(t) })
	}

	return m, nil
}

func (m Model) View() string {
	m.drawScene()

	left := canvasStyle.Render(m.canvas.String())
	right := statsStyle.Render(m.statsPanel())
	view := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	if m.showHelp {
		view += helpStyle.Render("\n" +
			"space pause/resume   r reset   k/enter kick\n" +
			"left/right kick angle   up/down kick strength\n" +
			"h help   q quit")
	}
	return view
}

// drawScene renders trail, bodies, and kick cues into the canvas.
func (m Model) drawScene() {
	m.canvas.Clear()

	scale, cx, cy := m.projection()
	toPixel := func(p orbit.Vector2) (int, int) {
		return cx + int(p.X*scale), cy - int(p.Y*scale)
	}

	m.session.Trail().Each(func(p orbit.Vector2) bool {
		x, y := toPixel(p)
		m.canvas.Set(x, y)
		return true
	})

	primary := m.session.Primary()
	px, py := toPixel(primary.Pos)
	m.canvas.FillCircle(px, py, pixelRadius(primary.Radius, scale))

	secondary := m.session.Secondary()
	sx, sy := toPixel(secondary.Pos)
	m.canvas.FillCircle(sx, sy, pixelRadius(secondary.Radius, scale))

	// Short aim line for the pending kick, longer arrow while the
	// kick marker is active.
	m.drawArrow(sx, sy, m.kickAngle, 8, false)
	if marker, ok := m.session.Marker(); ok && marker.ActiveAt(time.Now()) {
		m.drawArrow(sx, sy, marker.AngleDeg, 16, true)
	}
}

// projection returns pixels-per-world-unit and the pixel coordinates
// of the world origin. The view tracks the secondary outward so a
// kicked orbit stays on screen.
func (m Model) projection() (scale float64, cx, cy int) {
	viewRadius := m.cfg.Separation * 1.4
	if sep := m.session.Separation() * 1.2; sep > viewRadius {
		viewRadius = sep
	}
	if viewRadius <= 0 {
		viewRadius = 1
	}

	pw, ph := m.canvas.PixelWidth(), m.canvas.PixelHeight()
	scale = float64(min(pw, ph)) / (2 * viewRadius)
	return scale, pw / 2, ph / 2
}

func (m Model) drawArrow(x, y int, angleDeg float64, length int, head bool) {
	rad := angleDeg * math.Pi / 180
	dx, dy := math.Cos(rad), -math.Sin(rad) // pixel y grows downward
	tx := x + int(float64(length)*dx)
	ty := y + int(float64(length)*dy)
	m.canvas.DrawLine(x, y, tx, ty)

	if !head {
		return
	}
	for _, offset := range []float64{150, -150} {
		barb := rad + offset*math.Pi/180
		bx := tx + int(5*math.Cos(barb))
		by := ty - int(5*math.Sin(barb))
		m.canvas.DrawLine(tx, ty, bx, by)
	}
}

func (m Model) statsPanel() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("two-body orbit"))
	b.WriteString("\n\n")

	status := statusRunning.Render("● running")
	switch {
	case m.session.Halted():
		status = statusHalted.Render("● collided (press r)")
	case m.degenerate:
		status = statusHalted.Render("● degenerate config (press r)")
	case m.session.Paused():
		status = statusPaused.Render("● paused")
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	secondary := m.session.Secondary()
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteByte('\n')
	}
	row("time", fmt.Sprintf("%.2f s", m.session.Time()))
	row("separation", fmt.Sprintf("%.1f", m.session.Separation()))
	row("speed", fmt.Sprintf("%.2f", secondary.Speed()))
	row("energy", fmt.Sprintf("%.1f", m.session.Energy()))
	row("ang. mom.", fmt.Sprintf("%.1f", m.session.AngularMomentum()))
	row("trail", fmt.Sprintf("%d/%d", m.session.Trail().Len(), m.session.Trail().Cap()))
	b.WriteByte('\n')
	row("kick angle", fmt.Sprintf("%.0f°", m.kickAngle))
	row("kick power", fmt.Sprintf("%.0f", m.kickMag))

	b.WriteString(helpStyle.Render("\nh for keys"))
	return b.String()
}

func pixelRadius(worldRadius, scale float64) int {
	r := int(worldRadius * scale)
	if r < 1 {
		return 1
	}
	return r
}

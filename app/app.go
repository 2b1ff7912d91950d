package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"roomgrid/config"
	"roomgrid/grid"
	"roomgrid/keys"
	"roomgrid/log"
	"roomgrid/room"
	"roomgrid/track"
	"roomgrid/ui"
	"roomgrid/viewport"
)

// The stage is the only observed render target; its published size drives
// layout selection.
const stageTarget = "stage"

// Layout thresholds in the catalog are pixel-scale; terminal cells are
// scaled up so one catalog serves both worlds.
const (
	cellPixelWidth  = 10
	cellPixelHeight = 20
)

// Chrome rows reserved below the grid.
const (
	menuHeight   = 2
	errBoxHeight = 1
)

// connectDelay is how long the fake connection spinner shows.
const connectDelay = 1200 * time.Millisecond

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config, scenario *room.Scenario) error {
	p := tea.NewProgram(
		newHome(ctx, cfg, scenario),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // swipe gestures
	)
	_, err := p.Run()
	return err
}

type state int

const (
	// stateConnecting shows the spinner until the room feed is live.
	stateConnecting state = iota
	// stateLive shows the tile grid.
	stateLive
	// stateHelp shows the key-binding help screen.
	stateHelp
)

type tickMsg time.Time

type stageSizeMsg viewport.Size

type hideErrMsg struct{}

type home struct {
	ctx context.Context

	appConfig *config.Config

	// -- Room feed --

	room      *room.Room
	startedAt time.Time

	// -- Layout core --

	arranger *grid.Arranger
	arr      grid.Arrangement
	registry *viewport.Registry
	stageSub *viewport.Subscription

	// -- UI components --

	gridPane *ui.GridPane
	menu     *ui.Menu
	errBox   *ui.ErrBox
	spinner  spinner.Model
	swipe    *ui.SwipeDetector

	// -- State --

	state            state
	width, height    int
	focusedIdx       int
	showPlaceholders bool
}

func newHome(ctx context.Context, cfg *config.Config, scenario *room.Scenario) *home {
	arranger, err := grid.NewArranger(cfg.Catalog())
	if err != nil {
		// Catalog() falls back to the validated default, so this is
		// unreachable unless the default itself is broken.
		panic(err)
	}

	registry := viewport.Shared()
	r := room.Open(scenario)

	return &home{
		ctx:              ctx,
		appConfig:        cfg,
		room:             r,
		arranger:         arranger,
		registry:         registry,
		stageSub:         registry.Observe(stageTarget),
		gridPane:         ui.NewGridPane(r.Preview),
		menu:             ui.NewMenu(),
		errBox:           ui.NewErrBox(),
		spinner:          spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		swipe:            ui.NewSwipeDetector(cfg.SwipeThreshold),
		state:            stateConnecting,
		showPlaceholders: cfg.ShowPlaceholders,
		startedAt:        time.Now(),
	}
}

func (m *home) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.tickCmd(),
		m.watchStageCmd(),
	)
}

// tickCmd schedules the next scenario replay step.
func (m *home) tickCmd() tea.Cmd {
	interval := time.Duration(m.appConfig.TickMillis) * time.Millisecond
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// watchStageCmd waits for the next coalesced stage size. Window resize
// storms collapse into one of these per frame.
func (m *home) watchStageCmd() tea.Cmd {
	sub := m.stageSub
	return func() tea.Msg {
		size, ok := <-sub.Sizes()
		if !ok {
			return nil
		}
		return stageSizeMsg(size)
	}
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width, menuHeight)
		m.errBox.SetSize(msg.Width, errBoxHeight)
		// The registry coalesces; the arrangement updates on stageSizeMsg.
		m.registry.Publish(stageTarget, msg.Width, msg.Height-menuHeight-errBoxHeight)
		return m, nil

	case stageSizeMsg:
		m.gridPane.SetSize(msg.Width, msg.Height)
		m.rearrange()
		return m, m.watchStageCmd()

	case tickMsg:
		if m.state == stateConnecting && time.Since(m.startedAt) >= connectDelay {
			m.state = stateLive
		}
		if m.room.Advance(time.Since(m.startedAt)) {
			m.rearrange()
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case hideErrMsg:
		m.errBox.Clear()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m *home) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateHelp {
		// Any key leaves help.
		m.state = stateLive
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyQuit]):
		m.stageSub.Close()
		return m, tea.Quit

	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyNextPage]):
		m.arranger.NextPage(m.arr.Page)
		m.rearrange()

	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyPrevPage]):
		m.arranger.PrevPage(m.arr.Page)
		m.rearrange()

	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyFocusNext]):
		if n := len(m.arr.Page.TracksOnPage); n > 0 {
			m.focusedIdx = (m.focusedIdx + 1) % n
		}

	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyCopyIdentity]):
		return m, m.copyFocusedIdentity()

	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyTogglePlaceholders]):
		m.showPlaceholders = !m.showPlaceholders
		m.rearrange()

	case key.Matches(msg, keys.GlobalKeyBindings[keys.KeyHelp]):
		m.state = stateHelp
	}
	return m, nil
}

func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.swipe.Press(msg.X, msg.Y)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.arranger.NextPage(m.arr.Page)
			m.rearrange()
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.arranger.PrevPage(m.arr.Page)
			m.rearrange()
		}
	case tea.MouseActionRelease:
		switch m.swipe.Release(msg.X, msg.Y) {
		case ui.SwipeLeft:
			m.arranger.NextPage(m.arr.Page)
			m.rearrange()
		case ui.SwipeRight:
			m.arranger.PrevPage(m.arr.Page)
			m.rearrange()
		}
	}
	return m, nil
}

// copyFocusedIdentity puts the focused participant's identity on the
// system clipboard. Failures surface in the error box and clear themselves.
func (m *home) copyFocusedIdentity() tea.Cmd {
	tracks := m.arr.Page.TracksOnPage
	if len(tracks) == 0 {
		return nil
	}
	idx := m.focusedIdx
	if idx >= len(tracks) {
		idx = 0
	}
	if err := clipboard.WriteAll(tracks[idx].Identity); err != nil {
		log.WarningLog.Printf("clipboard write failed: %v", err)
		m.errBox.SetError(fmt.Errorf("could not copy identity: %w", err))
		return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return hideErrMsg{}
		})
	}
	return nil
}

// rearrange rederives layout and page from the latest inputs. Everything
// downstream of here is synchronous pure computation.
func (m *home) rearrange() {
	size, ok := m.stageSub.Latest()
	if !ok {
		// No measured viewport yet; skip rather than guess.
		return
	}

	arr, err := m.arranger.Arrange(
		m.displayTracks(),
		size.Width*cellPixelWidth,
		size.Height*cellPixelHeight,
	)
	if err != nil {
		log.ErrorLog.Printf("arrange failed: %v", err)
		m.errBox.SetError(err)
		return
	}
	m.arr = arr

	if n := len(arr.Page.TracksOnPage); n == 0 {
		m.focusedIdx = 0
	} else if m.focusedIdx >= n {
		m.focusedIdx = n - 1
	}
}

func (m *home) displayTracks() []track.Reference {
	tracks := m.room.Tracks()
	if m.showPlaceholders {
		return tracks
	}
	filtered := tracks[:0]
	for _, ref := range tracks {
		if !ref.IsPlaceholder() {
			filtered = append(filtered, ref)
		}
	}
	return filtered
}

func (m *home) focusedSID() string {
	tracks := m.arr.Page.TracksOnPage
	if m.focusedIdx < len(tracks) {
		return tracks[m.focusedIdx].SID
	}
	return ""
}

var connectingStyle = lipgloss.NewStyle().Foreground(ui.TextMuted)

func (m *home) View() string {
	switch m.state {
	case stateConnecting:
		msg := fmt.Sprintf("%s joining %s...", m.spinner.View(), m.room.Name())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			connectingStyle.Render(msg))

	case stateHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			helpView())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.gridPane.Render(m.arr, m.focusedSID()),
		m.menu.String(),
		m.errBox.String(),
	)
}

func helpView() string {
	order := []keys.KeyName{
		keys.KeyPrevPage, keys.KeyNextPage, keys.KeyFocusNext,
		keys.KeyCopyIdentity, keys.KeyTogglePlaceholders,
		keys.KeyHelp, keys.KeyQuit,
	}
	out := "Key bindings\n\n"
	for _, name := range order {
		b := keys.GlobalKeyBindings[name]
		out += fmt.Sprintf("  %-8s %s\n", b.Help().Key, b.Help().Desc)
	}
	out += "\npress any key to close"
	return out
}

package ui

import (
	"fmt"
	"reflect"

	"github.com/atomicstack/dualpane/internal/backend"
	"github.com/atomicstack/dualpane/internal/config"
	"github.com/atomicstack/dualpane/internal/jobs"
	"github.com/atomicstack/dualpane/internal/keymap"
	"github.com/atomicstack/dualpane/internal/logging"
	"github.com/atomicstack/dualpane/internal/overlay"
	"github.com/atomicstack/dualpane/internal/pane"
	"github.com/atomicstack/dualpane/internal/theme"
	"github.com/atomicstack/dualpane/internal/ui/command"
	uistate "github.com/atomicstack/dualpane/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const welcomeMessage = "Welcome."

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a new Model.
type Options struct {
	StartDir string
	Width    int
	Height   int
	Settings *config.Settings
	Runner   *jobs.Runner
	Watcher  *backend.Watcher
}

// Model implements the Bubble Tea model for the dual-pane browser.
type Model struct {
	panes [2]*pane.Pane
	views [2]uistate.Viewport
	src   int

	overlay overlay.Overlay
	status  string

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	keys     keymap.Map
	settings *config.Settings
	runner   *jobs.Runner
	watcher  *backend.Watcher
	watched  [2]string
	bus      *command.Bus

	// listening is set by Init; until then job results and watch events are
	// only delivered by whoever drives Update directly.
	listening bool
	quitting  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel lists StartDir into both panes.
func NewModel(opts Options) (*Model, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	runner := opts.Runner
	if runner == nil {
		runner = jobs.NewRunner()
	}
	var panes [2]*pane.Pane
	for i := range panes {
		p, err := pane.New(opts.StartDir)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", opts.StartDir, err)
		}
		panes[i] = p
	}
	m := &Model{
		panes:    panes,
		status:   welcomeMessage,
		keys:     keymap.Default(),
		settings: settings,
		runner:   runner,
		watcher:  opts.Watcher,
		bus:      command.New(config.NewLauncher(settings)),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	if m.watcher != nil {
		m.watcher.Ignore(logging.Path())
	}
	m.registerHandlers()
	m.syncWatch()
	m.syncViewports()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.listening = true
	cmds := []tea.Cmd{waitForJobResult(m.runner)}
	if m.watcher != nil {
		cmds = append(cmds, waitForWatchEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	m.syncViewports()
	return m, cmd
}

// visibleRows is the number of listing rows a pane can show below its title.
func (m *Model) visibleRows() int {
	if m.height <= 1 {
		return 0
	}
	return m.height - 1 - paneChrome
}

// syncViewports scrolls each pane so its cursor stays on screen.
func (m *Model) syncViewports() {
	rows := m.visibleRows()
	for i, p := range m.panes {
		m.views[i].EnsureVisible(p.Selection(), p.Len()+1, rows)
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(jobResultMsg{}):      m.handleJobResultMsg,
		reflect.TypeOf(watchEventMsg{}):     m.handleWatchEventMsg,
		reflect.TypeOf(watchDoneMsg{}):      m.handleWatchDoneMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResultMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	a := m.Route(keyMsg)
	if a == nil {
		return nil
	}
	return m.Apply(a)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) srcPane() *pane.Pane  { return m.panes[m.src] }
func (m *Model) destPane() *pane.Pane { return m.panes[1-m.src] }

// Source returns the active pane.
func (m *Model) Source() *pane.Pane { return m.srcPane() }

// Destination returns the inactive pane.
func (m *Model) Destination() *pane.Pane { return m.destPane() }

// SourceIndex reports which pane is active.
func (m *Model) SourceIndex() int { return m.src }

// Overlay returns the open overlay, or nil.
func (m *Model) Overlay() overlay.Overlay { return m.overlay }

// Status returns the status row message.
func (m *Model) Status() string { return m.status }

// Quitting reports whether Quit has been dispatched.
func (m *Model) Quitting() bool { return m.quitting }

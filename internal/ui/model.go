// Package ui drives the presenter inside Bubble Tea. It decodes key
// presses for the navigator, composes a frame after every transition and
// styles the frame's lines for the terminal.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"termdeck/internal/config"
	"termdeck/internal/deck"
	"termdeck/internal/frame"
	"termdeck/internal/logging"
	"termdeck/internal/nav"
)

// Options configures a presenter Model.
type Options struct {
	Deck   deck.Deck
	Config *config.Config
	Logger *log.Logger
}

// Model is the Bubble Tea model for a presentation.
type Model struct {
	ctx      context.Context
	deck     deck.Deck
	nav      *nav.Navigator
	composer frame.Composer
	keys     KeyMap
	styles   Styles
	logger   *log.Logger

	progress     progress.Model
	showProgress bool
	watcher      *deck.Watcher
	reloads      int

	frame    frame.Frame
	width    int
	height   int
	quitting bool
}

type slidesChangedMsg struct{ path string }

type deckLoadedMsg struct {
	deck deck.Deck
	seq  int
}

type reloadFailedMsg struct {
	err error
	seq int
}

type watchFailedMsg struct{ err error }

// New returns a Model presenting opts.Deck. ctx bounds the slide watcher.
func New(ctx context.Context, opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	keys := NewKeyMap(cfg.Keys)
	width, height := TerminalSize()

	m := Model{
		ctx:  ctx,
		deck: opts.Deck,
		nav: nav.New(opts.Deck.Len(), nav.Options{
			NotesHeight:  cfg.Presenter.NotesHeight,
			NotesVisible: cfg.Presenter.ShowNotes,
			ScrollStep:   cfg.Presenter.ScrollStep,
		}),
		composer:     frame.Composer{Help: keys.HelpSections()},
		keys:         keys,
		styles:       DefaultStyles(),
		logger:       logger,
		progress:     progress.New(progress.WithDefaultGradient()),
		showProgress: cfg.Presenter.ProgressBar,
	}
	if cfg.Presenter.WatchEnabled() && opts.Deck.Dir != "" {
		w, err := deck.NewWatcher(opts.Deck.Dir)
		if err != nil {
			logger.Error("not watching slides", "err", err)
		} else {
			m.watcher = w
		}
	}
	return m.resized(width, height)
}

// Close releases the slide watcher.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

// Navigator exposes the navigator for inspection.
func (m Model) Navigator() *nav.Navigator { return m.nav }

// Frame returns the most recently composed frame.
func (m Model) Frame() frame.Frame { return m.frame }

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcher != nil {
		cmds = append(cmds, m.watchSlides())
	}
	if m.showProgress {
		cmds = append(cmds, m.progress.SetPercent(m.percent()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resized(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		before := m.nav.State()
		ev := m.keys.Event(before.Mode, msg)
		m.logger.Debug("key", "key", msg.String(), "event", ev.Key, "mode", before.Mode)

		switch m.nav.Apply(ev) {
		case nav.Quit:
			m.logger.Info("quit", "slide", before.Current+1)
			m.quitting = true
			return m, tea.Quit
		case nav.Ignored:
			return m, nil
		}

		m = m.rendered()
		if m.showProgress && m.nav.State().Current != before.Current {
			return m, m.progress.SetPercent(m.percent())
		}
		return m, nil

	case slidesChangedMsg:
		m.logger.Info("slides changed", "path", msg.path)
		m.reloads++
		return m, tea.Batch(loadDeck(m.deck.Dir, m.reloads), m.watchSlides())

	case deckLoadedMsg:
		// Loads run concurrently; only the latest one reflects the files.
		if msg.seq != m.reloads {
			m.logger.Debug("dropping stale reload", "seq", msg.seq, "latest", m.reloads)
			return m, nil
		}
		m.deck = msg.deck
		m.nav.Resize(msg.deck.Len())
		m.logger.Info("reloaded deck", "dir", msg.deck.Dir, "slides", msg.deck.Len())
		m = m.rendered()
		if m.showProgress {
			return m, m.progress.SetPercent(m.percent())
		}
		return m, nil

	case reloadFailedMsg:
		if msg.seq == m.reloads {
			m.logger.Warn("keeping previous deck", "err", msg.err)
		}
		return m, nil

	case watchFailedMsg:
		m.logger.Error("stopped watching slides", "err", msg.err)
		_ = m.Close()
		m.watcher = nil
		return m, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	lines := m.frame.Lines
	// Tiny terminals cannot fit every row; keep the status bar visible.
	if rows := m.contentHeight(); len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.styles.Render(l))
	}
	if m.showProgress {
		b.WriteByte('\n')
		b.WriteString(m.progress.View())
	}
	return b.String()
}

func (m Model) resized(width, height int) Model {
	m.width = width
	m.height = height
	// Leave some margin
	m.progress.Width = max(1, width-4)
	return m.rendered()
}

// contentHeight is the number of rows the frame may use.
func (m Model) contentHeight() int {
	if m.showProgress {
		return max(1, m.height-1)
	}
	return max(1, m.height)
}

// rendered composes the frame for the current state and records the
// scroll offset the layout allowed.
func (m Model) rendered() Model {
	m.frame = m.composer.Compose(m.nav.State(), m.deck, m.width, m.contentHeight())
	m.nav.ClampScroll(m.frame.Scroll)
	return m
}

func (m Model) percent() float64 {
	return float64(m.nav.State().Current+1) / float64(max(1, m.deck.Len()))
}

func (m Model) watchSlides() tea.Cmd {
	ctx, w := m.ctx, m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		path, err := w.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return watchFailedMsg{err: err}
		}
		return slidesChangedMsg{path: path}
	}
}

func loadDeck(dir string, seq int) tea.Cmd {
	return func() tea.Msg {
		d, err := deck.Load(dir)
		if err != nil {
			return reloadFailedMsg{err: err, seq: seq}
		}
		return deckLoadedMsg{deck: d, seq: seq}
	}
}

// Run presents d until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(ctx, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

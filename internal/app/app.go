// Package app wires the action mapping components into the actionmap
// tool: an interactive terminal inspector and a one-shot profile
// checker.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/actionmap/internal/config"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/state"
	"github.com/dshills/actionmap/internal/logging"
	"github.com/dshills/actionmap/internal/profile"
	"github.com/dshills/actionmap/internal/trigger"
)

// ErrQuit is returned by the event loop when the user asks to exit.
var ErrQuit = errors.New("quit requested")

// keyHold is how long a fed key stays held without a repeat event.
// Terminals report presses but never releases, so held keys expire.
const keyHold = 150 * time.Millisecond

// recentEventCap bounds the inspector's event history.
const recentEventCap = 12

// Options carries command line overrides for the configuration file.
type Options struct {
	// ConfigPath locates the TOML configuration. Empty uses
	// DefaultConfigPath.
	ConfigPath string
	// ProfilePath overrides profile.path when non-empty.
	ProfilePath string
	// LogLevel overrides log.level when non-empty.
	LogLevel string
	// LayoutName overrides joystick.layout when non-empty.
	LayoutName string
}

// DefaultConfigPath is used when no config path is given.
const DefaultConfigPath = "actionmap.toml"

// Application is the assembled tool: device backends, a loaded
// profile, a trigger monitor, and optionally a profile watcher.
type Application struct {
	cfg     config.Config
	logger  *logging.Logger
	logFile *os.File
	session string

	keyboard *state.Keyboard
	mouse    *state.Mouse
	joystick *state.Joystick
	devs     input.Set

	loader  *profile.Loader
	prof    *profile.Profile
	monitor *trigger.Monitor
	watcher *profile.Watcher

	// Inspector state.
	screen    tcell.Screen
	keySeen   map[string]time.Time
	prevMask  tcell.ButtonMask
	wheelSpun bool
	recent    []string
	status    string
}

// loadConfig reads the configuration file and applies command line
// overrides.
func loadConfig(opts Options) (config.Config, error) {
	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = DefaultConfigPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return config.Config{}, err
	}
	if opts.ProfilePath != "" {
		cfg.Profile.Path = opts.ProfilePath
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if opts.LayoutName != "" {
		cfg.Joystick.Layout = opts.LayoutName
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// New loads configuration, builds the device backends, and loads the
// profile. The terminal screen is not touched until Run.
func New(opts Options) (*Application, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	a := &Application{
		cfg:     cfg,
		session: uuid.New().String(),
		keySeen: make(map[string]time.Time),
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Log.Level)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		a.logFile = f
		logCfg.Output = f
	}
	a.logger = logging.New(logCfg).WithField("session", shortID(a.session))

	layout, err := resolveLayout(cfg.Joystick)
	if err != nil {
		a.closeLogFile()
		return nil, err
	}

	a.keyboard = state.NewKeyboard()
	a.mouse = state.NewMouse()
	a.joystick = state.NewJoystick(layout)
	a.devs = input.Set{Keyboard: a.keyboard, Mouse: a.mouse, Joystick: a.joystick}

	a.loader = profile.NewLoader(a.devs, a.logger)
	prof, err := a.loader.LoadFile(cfg.Profile.Path)
	if err != nil {
		a.closeLogFile()
		return nil, err
	}
	a.prof = prof
	a.monitor = trigger.NewMonitor(prof)

	if cfg.Profile.Watch {
		w, err := profile.NewWatcher(a.loader, cfg.Profile.Path, a.logger,
			profile.WithDebounce(cfg.Profile.Debounce()))
		if err != nil {
			a.closeLogFile()
			return nil, fmt.Errorf("watching profile: %w", err)
		}
		a.watcher = w
	}

	a.logger.Info("loaded %d actions from %s (layout %s)",
		prof.Len(), cfg.Profile.Path, layout.Name)
	return a, nil
}

// resolveLayout picks the configured joystick layout from the built-in
// catalog or a catalog file.
func resolveLayout(jc config.JoystickConfig) (state.Layout, error) {
	cat := state.DefaultCatalog()
	if jc.Catalog != "" {
		loaded, err := state.LoadCatalog(jc.Catalog)
		if err != nil {
			return state.Layout{}, err
		}
		cat = loaded
	}
	layout, ok := cat.Layout(jc.Layout)
	if !ok {
		return state.Layout{}, fmt.Errorf("unknown joystick layout %q (have %v)", jc.Layout, cat.Names())
	}
	return layout, nil
}

// Profile returns the currently loaded profile.
func (a *Application) Profile() *profile.Profile {
	return a.prof
}

// Devices returns the device backend set.
func (a *Application) Devices() input.Set {
	return a.devs
}

// Run drives the interactive inspector until the user quits, the
// context is canceled, or the terminal fails.
func (a *Application) Run(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	a.screen = screen
	screen.EnableMouse()
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.cfg.Inspector.Tick())
	defer ticker.Stop()

	var reloads <-chan profile.Reload
	if a.watcher != nil {
		reloads = a.watcher.Reloads()
	}

	a.logger.Info("inspector started")
	a.render()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if err := a.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					a.logger.Info("inspector quit")
					return ErrQuit
				}
				return err
			}

		case r, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			a.applyReload(r)

		case <-ticker.C:
			a.tick()
		}
	}
}

// handleEvent feeds one terminal event into the device backends.
func (a *Application) handleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC || e.Key() == tcell.KeyCtrlQ {
			return ErrQuit
		}
		if name := keyName(e); name != "" {
			a.keyboard.Press(name)
			a.keySeen[name] = time.Now()
		}

	case *tcell.EventMouse:
		a.feedMouse(e)

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

// feedMouse translates one mouse event: pointer position becomes the
// x and y axes normalized to [-1, 1] from the screen center, button
// transitions press and release, and wheel motion pulses the wheel
// buttons and axis.
func (a *Application) feedMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	w, h := a.screen.Size()
	a.mouse.SetAxis("x", normalize(x, w))
	a.mouse.SetAxis("y", normalize(y, h))

	mask := ev.Buttons()
	for _, bt := range buttonTable {
		now := mask&bt.mask != 0
		was := a.prevMask&bt.mask != 0
		switch {
		case now && !was:
			a.mouse.Press(bt.name)
		case !now && was:
			a.mouse.Release(bt.name)
		}
	}
	a.prevMask = mask &^ (tcell.WheelUp | tcell.WheelDown)

	// Wheel events are momentary: press the direction button and kick
	// the axis until the next tick.
	if mask&tcell.WheelUp != 0 {
		a.mouse.Press("wheelup")
		a.mouse.SetAxis("wheel", 1)
		a.wheelSpun = true
	}
	if mask&tcell.WheelDown != 0 {
		a.mouse.Press("wheeldown")
		a.mouse.SetAxis("wheel", -1)
		a.wheelSpun = true
	}
}

// applyReload swaps in a freshly loaded profile or records the load
// failure, keeping the previous profile.
func (a *Application) applyReload(r profile.Reload) {
	if r.Err != nil {
		a.status = fmt.Sprintf("reload failed: %v", r.Err)
		a.logger.Warn("profile reload failed: %v", r.Err)
		return
	}
	a.prof = r.Profile
	a.monitor.SetProfile(r.Profile)
	a.status = fmt.Sprintf("reloaded %d actions", r.Profile.Len())
	a.logger.Info("profile reloaded with %d actions", r.Profile.Len())
}

// tick expires held keys, polls the monitor, and redraws.
func (a *Application) tick() {
	now := time.Now()
	for name, seen := range a.keySeen {
		if now.Sub(seen) > keyHold {
			a.keyboard.Release(name)
			delete(a.keySeen, name)
		}
	}
	if a.wheelSpun {
		a.mouse.Release("wheelup")
		a.mouse.Release("wheeldown")
		a.mouse.SetAxis("wheel", 0)
		a.wheelSpun = false
	}

	for _, ev := range a.monitor.Poll(a.devs) {
		a.recordEvent(ev)
	}
	a.render()
}

// recordEvent keeps the most recent trigger events for display.
func (a *Application) recordEvent(ev trigger.Event) {
	line := fmt.Sprintf("%s %s %.2f", ev.Action, ev.Type, ev.Value)
	a.recent = append(a.recent, line)
	if len(a.recent) > recentEventCap {
		a.recent = a.recent[len(a.recent)-recentEventCap:]
	}
	a.logger.Debug("event: %s", line)
}

// Close releases resources held outside Run.
func (a *Application) Close() error {
	var err error
	if a.watcher != nil {
		err = a.watcher.Close()
	}
	a.closeLogFile()
	return err
}

func (a *Application) closeLogFile() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// shortID trims a session id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

package scene

import (
	"github.com/charmbracelet/log"
)

// Manager owns the registered scenes and the quit flag.
type Manager struct {
	scenes      map[Name]Scene
	current     Scene
	currentName Name
	quit        bool

	deps   Deps
	logger *log.Logger
}

// NewManager registers the start, main and death scenes and makes start current.
func NewManager(deps Deps) *Manager {
	deps = deps.withDefaults()
	m := &Manager{deps: deps, logger: deps.Logger}
	m.Initialize(map[Name]Scene{
		NameStart: NewStart(m, deps.Config.Prompts),
		NameMain:  NewMain(m, deps),
		NameDeath: NewDeath(m, deps.Config.Prompts),
	}, NameStart)
	return m
}

// Initialize replaces the registered scenes and switches to start.
func (m *Manager) Initialize(scenes map[Name]Scene, start Name) {
	m.scenes = scenes
	m.SetScene(start)
}

// SetScene makes the named scene current. It panics with *UnknownSceneError
// when no scene is registered under the name.
func (m *Manager) SetScene(name Name) {
	s, ok := m.scenes[name]
	if !ok {
		panic(&UnknownSceneError{Name: name})
	}
	if m.current != nil {
		m.logger.Debug("scene switch", "from", m.currentName, "to", name)
	}
	m.current = s
	m.currentName = name
}

// Current returns the current scene.
func (m *Manager) Current() Scene {
	return m.current
}

// CurrentName returns the name of the current scene.
func (m *Manager) CurrentName() Name {
	return m.currentName
}

// Scene returns the scene registered under the name.
func (m *Manager) Scene(name Name) (Scene, bool) {
	s, ok := m.scenes[name]
	return s, ok
}

// ResetMain registers a fresh main scene in place of the old one.
// The current scene is not changed.
func (m *Manager) ResetMain() {
	m.scenes[NameMain] = NewMain(m, m.deps)
	m.logger.Debug("main scene reset")
}

// Quit raises the quit flag. The frame loop stops after the current frame.
func (m *Manager) Quit() {
	if !m.quit {
		m.logger.Info("quit requested", "scene", m.currentName)
	}
	m.quit = true
}

// QuitRequested reports whether Quit was called.
func (m *Manager) QuitRequested() bool {
	return m.quit
}

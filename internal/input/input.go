package input

import "github.com/go-gl/glfw/v3.3/glfw"

// Action is a logical command, independent of the key bound to it.
type Action int

const (
	ActionQuit Action = iota
	ActionPause
	ActionRegenerate
	ActionProfile
	ActionCount // sentinel for array sizing
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionPause:
		return "pause"
	case ActionRegenerate:
		return "regenerate"
	case ActionProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// Manager maps keys to actions and tracks per-frame edges. GLFW delivers
// key events on the main thread during PollEvents, so no locking is needed.
type Manager struct {
	keyToActions map[glfw.Key][]Action

	current     [ActionCount]bool
	justPressed [ActionCount]bool
}

// NewManager returns a manager with the default bindings:
// Escape quits, Space pauses, R lays the skyline out again, P dumps timings.
func NewManager() *Manager {
	m := &Manager{keyToActions: make(map[glfw.Key][]Action)}
	m.Bind(glfw.KeyEscape, ActionQuit)
	m.Bind(glfw.KeySpace, ActionPause)
	m.Bind(glfw.KeyR, ActionRegenerate)
	m.Bind(glfw.KeyP, ActionProfile)
	return m
}

// Bind adds action to key. A key may trigger several actions.
func (m *Manager) Bind(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// Unbind removes every action bound to key.
func (m *Manager) Unbind(key glfw.Key) {
	delete(m.keyToActions, key)
}

// HandleKeyEvent records a key transition.
func (m *Manager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range m.keyToActions[key] {
		if pressed && !m.current[act] {
			m.justPressed[act] = true
		}
		m.current[act] = pressed
	}
}

// Attach installs the manager as window's key callback.
func (m *Manager) Attach(window *glfw.Window) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		m.HandleKeyEvent(key, action)
	})
}

// PostUpdate clears the per-frame edges. Call once at the end of a frame.
func (m *Manager) PostUpdate() {
	clear(m.justPressed[:])
}

// IsActive reports whether the action's key is held.
func (m *Manager) IsActive(action Action) bool {
	return action >= 0 && action < ActionCount && m.current[action]
}

// JustPressed reports whether the action was triggered this frame.
func (m *Manager) JustPressed(action Action) bool {
	return action >= 0 && action < ActionCount && m.justPressed[action]
}

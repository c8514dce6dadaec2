// Package shell tracks application chrome state: the active screen, the
// navigation drawer, and modal visibility. It carries no order logic.
package shell

import "sync"

// Screen identifies a top-level screen of the application.
type Screen string

const (
	ScreenOrders      Screen = "orders"
	ScreenOrderDetail Screen = "orderDetail"
	ScreenHome        Screen = "home"
	ScreenSettings    Screen = "settings"
)

// ModalKind names what a modal host should display. The shell describes the
// content as a tag; rendering it is entirely the presentation layer's job.
type ModalKind string

const (
	ModalNone         ModalKind = ""
	ModalNewOrderForm ModalKind = "newOrderForm"
)

// Shell is the UI chrome state container.
type Shell struct {
	mu           sync.Mutex
	activeScreen Screen
	drawerOpen   bool
	modal        ModalKind
}

// New creates a Shell showing the orders screen with drawer and modal closed.
func New() *Shell {
	return &Shell{activeScreen: ScreenOrders}
}

// ActiveScreen returns the currently active screen.
func (s *Shell) ActiveScreen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeScreen
}

// SetActiveScreen switches to the given screen.
func (s *Shell) SetActiveScreen(screen Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeScreen = screen
}

// DrawerOpen reports whether the navigation drawer is open.
func (s *Shell) DrawerOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawerOpen
}

// ToggleDrawer flips the drawer between open and closed.
func (s *Shell) ToggleDrawer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = !s.drawerOpen
}

// CloseDrawer closes the drawer. Idempotent.
func (s *Shell) CloseDrawer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drawerOpen = false
}

// Modal returns the currently requested modal content, ModalNone when no
// modal is shown.
func (s *Shell) Modal() ModalKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal
}

// ModalOpen reports whether a modal is currently shown.
func (s *Shell) ModalOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal != ModalNone
}

// OpenModal shows the modal identified by kind. Opening ModalNone closes
// any open modal.
func (s *Shell) OpenModal(kind ModalKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = kind
}

// CloseModal hides any open modal. Idempotent.
func (s *Shell) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = ModalNone
}

package shell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"orderdesk/internal/shell"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	s := shell.New()

	assert.Equal(t, shell.ScreenOrders, s.ActiveScreen())
	assert.False(t, s.DrawerOpen())
	assert.False(t, s.ModalOpen())
	assert.Equal(t, shell.ModalNone, s.Modal())
}

func TestScreenSwitching(t *testing.T) {
	t.Parallel()

	s := shell.New()

	s.SetActiveScreen(shell.ScreenSettings)
	assert.Equal(t, shell.ScreenSettings, s.ActiveScreen())

	s.SetActiveScreen(shell.ScreenOrderDetail)
	assert.Equal(t, shell.ScreenOrderDetail, s.ActiveScreen())
}

func TestDrawer(t *testing.T) {
	t.Parallel()

	s := shell.New()

	s.ToggleDrawer()
	assert.True(t, s.DrawerOpen())

	s.ToggleDrawer()
	assert.False(t, s.DrawerOpen())

	s.ToggleDrawer()
	s.CloseDrawer()
	assert.False(t, s.DrawerOpen())

	s.CloseDrawer()
	assert.False(t, s.DrawerOpen())
}

func TestModal(t *testing.T) {
	t.Parallel()

	s := shell.New()

	s.OpenModal(shell.ModalNewOrderForm)
	assert.True(t, s.ModalOpen())
	assert.Equal(t, shell.ModalNewOrderForm, s.Modal())

	s.CloseModal()
	assert.False(t, s.ModalOpen())
	assert.Equal(t, shell.ModalNone, s.Modal())

	s.CloseModal()
	assert.False(t, s.ModalOpen())

	s.OpenModal(shell.ModalNone)
	assert.False(t, s.ModalOpen())
}

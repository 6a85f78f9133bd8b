package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	if m.mouseDragging {
		return m.updateMouseDrag(msg), nil
	}

	if m.onToolbar(msg.Y) {
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.clickToolbar(msg.X), nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.mode == Previewing {
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
		return m, nil
	}
	off := m.offsetAt(msg.X, msg.Y)
	if msg.Shift {
		anchor, _ := m.buf.SelectionRaw()
		m.mouseAnchor = anchor
		m.buf.Select(anchor, off)
	} else {
		m.mouseAnchor = off
		m.buf.SetCursor(off)
	}
	m.mouseDragging = true
	return m, nil
}

func (m Model) updateMouseDrag(msg tea.MouseMsg) Model {
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionMotion:
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.buf.Select(m.mouseAnchor, m.offsetAt(x, y))
	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m
}

func (m Model) onToolbar(y int) bool {
	return m.toolbarHeight() > 0 && y == m.contentHeight()
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

const maxErrorWidth = 120

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := errorStyle.Render("Error") + "\n\n" + fitText(m.message, maxErrorWidth) + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}

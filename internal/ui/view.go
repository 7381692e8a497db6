package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kahvecikaan/product-admin/internal/domain"
	"github.com/kahvecikaan/product-admin/internal/form"
)

func (m Model) View() string {
	if m.modalOpen {
		return m.modalView()
	}
	return m.listingView()
}

func (m Model) listingView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Products"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.TableBorder.Render(m.table.View()))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("a add · e edit · d delete · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(m.noticeView())

	return b.String()
}

// modalView renders the add-product form as a centered overlay.
func (m Model) modalView() string {
	var b strings.Builder

	b.WriteString(m.styles.ModalTitle.Render("Add Product"))
	b.WriteString("\n\n")

	for i, f := range domain.Fields {
		b.WriteString(m.styles.Label.Render(f.Label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.ctrl.FieldError(f.ID); msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Disabled.Render(" Submitting..."))
	} else {
		b.WriteString(m.styles.Help.Render("enter submit · esc cancel · tab next field"))
	}
	b.WriteString("\n")
	b.WriteString(m.noticeView())

	box := m.styles.Modal.Render(b.String())
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) noticeView() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeLevel == form.LevelSuccess {
		return m.styles.NoticeSuccess.Render(m.notice)
	}
	return m.styles.NoticeError.Render(m.notice)
}

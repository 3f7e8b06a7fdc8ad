// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayvoy/kiosk-tui/internal/docs"
	"github.com/ayvoy/kiosk-tui/internal/nav"
	"github.com/ayvoy/kiosk-tui/internal/util"
)

// =============================================================================
// DOCUMENT CHECKLIST
// =============================================================================

// Documents walks a rider through the checklist for one card profile.
// Each label accepts a file path; uploads run as commands so the UI
// never blocks on the copy.
type Documents struct {
	ctx     *Context
	profile docs.Profile

	labels       []string
	reactivation []string
	selected     int

	entering  bool
	pathInput textinput.Model

	// status maps a label to what happened with it.
	status map[string]string
	errMsg string
}

// NewDocuments builds the checklist for profile.
func NewDocuments(ctx *Context, profile docs.Profile) *Documents {
	ti := textinput.New()
	ti.Placeholder = "/ruta/al/archivo.pdf"
	ti.CharLimit = 256
	ti.Width = 40

	return &Documents{
		ctx:          ctx,
		profile:      profile,
		labels:       docs.DocumentsFor(profile),
		reactivation: docs.ReactivationDocs(profile),
		pathInput:    ti,
		status:       make(map[string]string),
	}
}

func (d *Documents) Init() tea.Cmd { return nil }

// allLabels returns required labels followed by reactivation ones.
func (d *Documents) allLabels() []string {
	return append(append([]string{}, d.labels...), d.reactivation...)
}

func (d *Documents) currentLabel() string {
	all := d.allLabels()
	if len(all) == 0 {
		return ""
	}
	return all[d.selected]
}

func (d *Documents) uploadCmd(label, path string) tea.Cmd {
	uploader := d.ctx.Uploader
	return func() tea.Msg {
		dest, err := uploader.Upload(label, path)
		return UploadDoneMsg{Label: label, Dest: dest, Err: err}
	}
}

func (d *Documents) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UploadDoneMsg:
		if msg.Err != nil {
			d.status[msg.Label] = "error"
			d.errMsg = "No se pudo subir el documento. Verifica la ruta."
			d.ctx.Log.Warn("upload failed", "label", msg.Label, "error", msg.Err)
		} else {
			d.status[msg.Label] = "✓ " + filepath.Base(msg.Dest)
			d.errMsg = ""
		}
		return d, nil

	case tea.KeyMsg:
		if d.entering {
			switch msg.String() {
			case "esc":
				d.entering = false
				d.pathInput.Blur()
				return d, nil
			case "enter":
				path := strings.TrimSpace(d.pathInput.Value())
				d.entering = false
				d.pathInput.Blur()
				d.pathInput.SetValue("")
				if path == "" {
					return d, nil
				}
				return d, d.uploadCmd(d.currentLabel(), path)
			}
			var cmd tea.Cmd
			d.pathInput, cmd = d.pathInput.Update(msg)
			return d, cmd
		}

		switch msg.String() {
		case "esc":
			return d, func() tea.Msg { return GoMsg{Action: nav.ActionReturn} }
		case "up", "k":
			if d.selected > 0 {
				d.selected--
			}
		case "down", "j":
			if d.selected < len(d.allLabels())-1 {
				d.selected++
			}
		case "enter":
			if d.currentLabel() != "" {
				d.entering = true
				d.pathInput.Focus()
				return d, textinput.Blink
			}
		}
	}
	return d, nil
}

func (d *Documents) View() string {
	t := d.ctx.Theme
	var b strings.Builder

	b.WriteString(t.Title.Render(d.profile.DisplayName()))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render("Documentos Requeridos"))
	b.WriteString("\n\n")

	idx := 0
	renderRow := func(label string) {
		style := t.ListItem
		if idx == d.selected {
			style = t.ListSelected
		}
		row := util.PadWidth(label, 34)
		if s, ok := d.status[label]; ok {
			if s == "error" {
				row += t.ErrorText.Render(" ✗")
			} else {
				row += t.InfoText.Render(" " + s)
			}
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
		idx++
	}

	for _, label := range d.labels {
		renderRow(label)
	}
	if len(d.reactivation) > 0 {
		b.WriteString("\n")
		b.WriteString(t.NoticeText.Render("En caso de ser reactivación:"))
		b.WriteString("\n")
		for _, label := range d.reactivation {
			renderRow(label)
		}
	}

	if d.entering {
		b.WriteString("\n")
		b.WriteString(t.Label.Render("Archivo para \"" + d.currentLabel() + "\":"))
		b.WriteString("\n")
		b.WriteString(t.FieldBox.Render(d.pathInput.View()))
		b.WriteString("\n")
	}

	if d.errMsg != "" {
		b.WriteString("\n" + t.ErrorText.Render(d.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(t.ShortcutKey.Render("enter") + t.ShortcutDesc.Render(" subir  ") +
		t.ShortcutKey.Render("↑/↓") + t.ShortcutDesc.Render(" documento  ") +
		t.ShortcutKey.Render("esc") + t.ShortcutDesc.Render(" regresar"))

	return lipgloss.Place(d.ctx.Width, d.ctx.Height, lipgloss.Center, lipgloss.Center, b.String())
}

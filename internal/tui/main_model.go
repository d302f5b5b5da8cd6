// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"

	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"
	"github.com/noldarim/portfolio/internal/tui/components/menu"
	"github.com/noldarim/portfolio/internal/tui/components/tabbar"
	"github.com/noldarim/portfolio/internal/tui/layout"
	"github.com/noldarim/portfolio/internal/tui/messages"
	"github.com/noldarim/portfolio/internal/tui/screens/contactform"
	"github.com/noldarim/portfolio/internal/viewstate"
)

// tabBarHeight is the single row the tab bar occupies under the header.
const tabBarHeight = 1

type MainModel struct {
	store   *content.Store
	content *content.Content

	// Page-wide view state: theme and menu visibility
	view   *viewstate.State
	styles layout.Styles

	tabs     tabbar.Model
	menu     menu.Model
	viewport viewport.Model
	contact  contactform.Model
	sections *sectionRenderer

	// contactFocused routes keys to the form instead of page shortcuts.
	contactFocused bool

	width, height int
}

// NewMainModel creates the page model on the home section.
func NewMainModel(ctx context.Context, store *content.Store, sender contact.Sender, theme viewstate.Theme) MainModel {
	m := MainModel{
		store:    store,
		view:     viewstate.New(theme),
		styles:   layout.NewStyles(theme),
		viewport: viewport.New(80, 10),
		contact:  contactform.NewModel(ctx, sender, theme),
		width:    80,
		height:   24,
	}
	m.loadContent()
	m.resize()
	return m
}

// loadContent rebuilds the navigation widgets from the current snapshot,
// keeping the active section when it still exists.
func (m *MainModel) loadContent() {
	active := m.tabs.GetActiveTabID()
	m.content = m.store.Snapshot()

	m.tabs = tabbar.New(lo.Map(m.content.Navigation, func(n content.NavigationTarget, _ int) tabbar.Tab {
		return tabbar.Tab{ID: n.ID, Label: n.Label}
	}))
	m.menu = menu.New(lo.Map(m.content.Navigation, func(n content.NavigationTarget, _ int) menu.Item {
		return menu.Item{ID: n.ID, Label: n.Label}
	}))
	if active != "" {
		m.tabs.SetActiveID(active)
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.contact.Init()
}

// ActiveSection is the id of the section on screen.
func (m MainModel) ActiveSection() string {
	return m.tabs.GetActiveTabID()
}

// Theme is the current colour scheme.
func (m MainModel) Theme() viewstate.Theme {
	return m.view.Theme()
}

// MenuOpen reports whether the navigation overlay is shown.
func (m MainModel) MenuOpen() bool {
	return m.view.MenuOpen()
}

// ContactFocused reports whether keys go to the contact form.
func (m MainModel) ContactFocused() bool {
	return m.contactFocused
}

// Contact exposes the contact section model.
func (m MainModel) Contact() contactform.Model {
	return m.contact
}

func (m MainModel) layoutInfo() layout.LayoutInfo {
	help := []layout.HelpItem{
		{Key: "←/→", Description: "section"},
		{Key: "t", Description: "theme"},
		{Key: "m", Description: "menu"},
		{Key: "q", Description: "quit"},
	}
	switch {
	case m.view.MenuOpen():
		help = []layout.HelpItem{
			{Key: "↑/↓", Description: "move"},
			{Key: "enter", Description: "go"},
			{Key: "esc", Description: "close"},
		}
	case m.contactFocused:
		help = []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "submit"},
			{Key: "esc", Description: "leave form"},
		}
	case m.ActiveSection() == SectionContact:
		help = append([]layout.HelpItem{{Key: "enter", Description: "edit form"}}, help...)
	}
	return layout.LayoutInfo{
		Title:     m.content.Profile.Name,
		HelpItems: help,
	}
}

// contentTop is the first screen row below the header and tab bar.
func (m MainModel) contentTop() int {
	return layout.HeaderHeight(m.styles, m.layoutInfo(), m.width) + tabBarHeight
}

// menuButton is the rectangle of the header's menu button.
func (m MainModel) menuButton() menu.Rect {
	w := lipgloss.Width(layout.MenuButton)
	return menu.Rect{X: m.width - w, Y: 0, W: w, H: 1}
}

func (m MainModel) menuBounds() menu.Rect {
	return m.menu.Bounds(m.width, m.contentTop())
}

func (m *MainModel) resize() {
	m.tabs.SetWidth(m.width)
	m.contact.SetWidth(max(m.width-4, 20))

	dims := layout.GetContentArea(m.styles, m.layoutInfo(), m.width, m.height)
	m.viewport.Width = m.width
	m.viewport.Height = max(dims.Height-tabBarHeight, 1)
	m.sections = newSectionRenderer(m.view.Theme(), m.width)
	m.refreshSection()
}

// refreshSection re-renders the active section into the viewport.
func (m *MainModel) refreshSection() {
	id := m.ActiveSection()
	if id == SectionContact {
		return
	}
	m.viewport.SetContent(m.sections.Render(m.content, id))
}

// navigate shows section id and closes the menu.
func (m *MainModel) navigate(id string) {
	m.view.Navigate()
	if !m.tabs.SetActiveID(id) {
		getLog().Debug().Str("section", id).Msg("Unknown navigation target")
		return
	}
	m.contactFocused = false
	m.viewport.GotoTop()
	m.refreshSection()
}

func (m *MainModel) toggleTheme() tea.Cmd {
	theme := m.view.ToggleTheme()
	m.styles = layout.NewStyles(theme)
	m.sections = newSectionRenderer(theme, m.width)
	m.refreshSection()
	return m.contact.SetTheme(theme)
}

func navigateCmd(id string) tea.Cmd {
	return func() tea.Msg { return messages.NavigateMsg{Section: id} }
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case messages.NavigateMsg:
		m.navigate(msg.Section)
		return m, nil

	case messages.ToggleThemeMsg:
		return m, m.toggleTheme()

	case messages.ContentReloadedMsg:
		getLog().Info().Int("version", msg.Version).Msg("Content reloaded")
		m.loadContent()
		m.resize()
		return m, nil

	case messages.SubmitResultMsg, messages.SubmitRefusedMsg:
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.ActiveSection() == SectionContact {
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.view.MenuOpen() {
		switch key {
		case "up", "k":
			m.menu.Up()
		case "down", "j":
			m.menu.Down()
		case "enter":
			if item, ok := m.menu.Selected(); ok {
				return m, navigateCmd(item.ID)
			}
		case "esc", "m":
			m.view.CloseMenu()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	if m.contactFocused {
		if key == "esc" {
			m.contactFocused = false
			return m, nil
		}
		var cmd tea.Cmd
		m.contact, cmd = m.contact.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		return m, tea.Quit
	case "t":
		return m, m.toggleTheme()
	case "m":
		m.view.ToggleMenu()
		return m, nil
	case "right", "l", "tab":
		m.tabs.NextTab()
		return m, navigateCmd(m.tabs.GetActiveTabID())
	case "left", "h", "shift+tab":
		m.tabs.PrevTab()
		return m, navigateCmd(m.tabs.GetActiveTabID())
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(key)
		if tabs := m.tabs.Tabs(); n <= len(tabs) {
			return m, navigateCmd(tabs[n-1].ID)
		}
		return m, nil
	case "enter":
		if m.ActiveSection() == SectionContact {
			m.contactFocused = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// region classifies a press for the menu's outside-click rule.
func (m MainModel) region(x, y int) viewstate.Region {
	if m.view.MenuOpen() && m.menuBounds().Contains(x, y) {
		return viewstate.RegionMenu
	}
	if m.menuButton().Contains(x, y) {
		return viewstate.RegionMenuButton
	}
	return viewstate.RegionOutside
}

func (m MainModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	if tea.MouseEvent(msg).IsWheel() {
		if m.ActiveSection() == SectionContact || m.view.MenuOpen() {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	region := m.region(msg.X, msg.Y)
	if m.view.PointerDown(region) {
		getLog().Debug().Int("x", msg.X).Int("y", msg.Y).Msg("Menu closed by outside press")
	}

	switch region {
	case viewstate.RegionMenuButton:
		m.view.ToggleMenu()
		return m, nil
	case viewstate.RegionMenu:
		if item, ok := m.menu.ItemAt(m.menuBounds(), msg.X, msg.Y); ok {
			return m, navigateCmd(item.ID)
		}
		return m, nil
	}

	if msg.Y == m.contentTop()-tabBarHeight {
		if i, ok := m.tabs.TabAt(msg.X, m.styles.Palette); ok {
			return m, navigateCmd(m.tabs.Tabs()[i].ID)
		}
	}
	if m.ActiveSection() == SectionContact && msg.Y >= m.contentTop() {
		m.contactFocused = true
	}
	return m, nil
}

func (m MainModel) View() string {
	info := m.layoutInfo()
	dims := layout.GetContentArea(m.styles, info, m.width, m.height)
	if !dims.Valid {
		return layout.RenderLayout(m.styles, "", info, m.width, m.height)
	}
	bodyHeight := max(dims.Height-tabBarHeight, 1)

	var body string
	switch {
	case m.view.MenuOpen():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Right, lipgloss.Top, m.menu.View(m.styles.Palette))
	case m.ActiveSection() == SectionContact:
		body = m.contact.View(m.styles)
	default:
		body = m.viewport.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Left, m.tabs.View(m.styles.Palette), body)
	return layout.RenderLayout(m.styles, page, info, m.width, m.height)
}

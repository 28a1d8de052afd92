package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/forecourt/forecourt-cli/pkg/api"
	"github.com/forecourt/forecourt-cli/pkg/models"
	"github.com/forecourt/forecourt-cli/pkg/settings"
)

// generalFieldSpec binds one general-info text input to its document
// field. Order here is display order.
var generalFieldSpec = []struct {
	label       string
	placeholder string
	get         func(*models.GeneralInfo) string
	set         func(*models.GeneralInfo, string)
}{
	{"Pump Name:", "Highway Fuels", func(g *models.GeneralInfo) string { return g.PumpName },
		func(g *models.GeneralInfo, v string) { g.PumpName = v }},
	{"Dealer Name:", "", func(g *models.GeneralInfo) string { return g.DealerName },
		func(g *models.GeneralInfo, v string) { g.DealerName = v }},
	{"Address:", "", func(g *models.GeneralInfo) string { return g.Address },
		func(g *models.GeneralInfo, v string) { g.Address = v }},
	{"Phone:", "", func(g *models.GeneralInfo) string { return g.Phone },
		func(g *models.GeneralInfo, v string) { g.Phone = v }},
	{"Email:", "", func(g *models.GeneralInfo) string { return g.Email },
		func(g *models.GeneralInfo, v string) { g.Email = v }},
	{"GST Number:", "", func(g *models.GeneralInfo) string { return g.GSTNumber },
		func(g *models.GeneralInfo, v string) { g.GSTNumber = v }},
	{"Opening Date:", "YYYY-MM-DD", func(g *models.GeneralInfo) string { return g.OpeningDate },
		func(g *models.GeneralInfo, v string) { g.OpeningDate = v }},
}

// SettingsModel is the section browser and editor. At most one section
// is in edit mode at a time; the controller enforces that and the model
// mirrors it in editingID.
type SettingsModel struct {
	client     *api.Client
	controller *settings.Controller
	gate       *settings.Gate
	notifier   *statusNotifier
	relay      *confirmationRelay
	confirm    *ConfirmationModel
	viewport   viewport.Model

	width  int
	height int
	loaded bool

	sectionCursor int
	editingID     settings.SectionID
	fieldIndex    int

	generalInputs []textinput.Model

	editingPrice bool
	priceInput   textinput.Model

	addingFuel     bool
	fuelFormIndex  int
	fuelNameInput  textinput.Model
	fuelPriceInput textinput.Model
	fuelNozzInput  textinput.Model

	addingLabel bool
	quickLabel  bool
	labelInput  textinput.Model
}

func NewSettingsModel(client *api.Client) *SettingsModel {
	notifier := &statusNotifier{}
	relay := &confirmationRelay{}
	controller := settings.NewController(nil)

	m := &SettingsModel{
		client:     client,
		controller: controller,
		gate:       settings.NewGate(controller, client, notifier, relay),
		notifier:   notifier,
		relay:      relay,
		confirm:    NewConfirmation(),
		viewport:   viewport.New(80, 20),
	}

	m.generalInputs = make([]textinput.Model, len(generalFieldSpec))
	for i, f := range generalFieldSpec {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 120
		ti.Width = 40
		m.generalInputs[i] = ti
	}

	m.priceInput = textinput.New()
	m.priceInput.Placeholder = "0.00"
	m.priceInput.CharLimit = 12
	m.priceInput.Width = 12

	m.fuelNameInput = textinput.New()
	m.fuelNameInput.Placeholder = "High Speed Diesel"
	m.fuelNameInput.CharLimit = 60
	m.fuelNameInput.Width = 30

	m.fuelPriceInput = textinput.New()
	m.fuelPriceInput.Placeholder = "0.00"
	m.fuelPriceInput.CharLimit = 12
	m.fuelPriceInput.Width = 12

	m.fuelNozzInput = textinput.New()
	m.fuelNozzInput.Placeholder = "1"
	m.fuelNozzInput.CharLimit = 3
	m.fuelNozzInput.Width = 5

	m.labelInput = textinput.New()
	m.labelInput.CharLimit = 60
	m.labelInput.Width = 30

	return m
}

func (m *SettingsModel) Init() tea.Cmd {
	if m.loaded {
		return nil
	}
	return m.loadDocument()
}

func (m *SettingsModel) loadDocument() tea.Cmd {
	return func() tea.Msg {
		doc, err := m.client.FetchSettingsDocument(context.Background())
		if err != nil {
			return documentLoadedMsg{doc: models.DefaultDocument(), fetchErr: err}
		}
		return documentLoadedMsg{doc: doc}
	}
}

func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width == 0 || height == 0 {
		return
	}
	m.viewport.Width = width - 10
	m.viewport.Height = height - 10
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case documentLoadedMsg:
		m.loaded = true
		m.controller.ReplaceDocument(msg.doc)
		m.updateViewportContent()
		if msg.fetchErr != nil {
			return m, func() tea.Msg {
				return ErrorStatusMsg(fmt.Sprintf("Could not reach backend: %v. Showing empty settings.", msg.fetchErr))
			}
		}
		return m, nil

	case commitResultMsg:
		// The gate already routed the outcome through the notifier; on
		// success the session is gone and edit mode ends.
		if _, editing := m.controller.Editing(); !editing {
			m.leaveEditMode()
		}
		m.updateViewportContent()
		return m, m.drainStatus()

	case tea.KeyMsg:
		if m.confirm.Active() {
			cmd = m.confirm.Update(msg)
			m.updateViewportContent()
			return m, cmd
		}
		if m.editingID == "" {
			return m.updateBrowsing(msg)
		}
		return m.updateEditing(msg)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *SettingsModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quickLabel {
		return m.updateQuickLabel(msg)
	}

	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return SwitchViewMsg{view: dashboardView} }

	case "c":
		return m, func() tea.Msg { return SwitchViewMsg{view: creditorsView} }

	case "r":
		return m, m.loadDocument()

	case "up", "k":
		if m.sectionCursor > 0 {
			m.sectionCursor--
			m.updateViewportContent()
		}

	case "down", "j":
		if m.sectionCursor < len(settings.Sections)-1 {
			m.sectionCursor++
			m.updateViewportContent()
		}

	case "a":
		// Quick add for label sections: one item, confirmed
		// immediately, no edit session.
		if m.isLabelSection(settings.Sections[m.sectionCursor].ID()) {
			m.quickLabel = true
			m.labelInput.SetValue("")
			m.labelInput.Focus()
			m.updateViewportContent()
		}

	case "enter":
		return m, m.enterEditMode(settings.Sections[m.sectionCursor].ID())

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *SettingsModel) updateQuickLabel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quickLabel = false
		m.labelInput.Blur()
		m.updateViewportContent()
		return m, nil

	case "enter":
		label := strings.TrimSpace(m.labelInput.Value())
		m.quickLabel = false
		m.labelInput.Blur()
		if label == "" {
			m.updateViewportContent()
			return m, nil
		}
		section := settings.Sections[m.sectionCursor]
		set := m.labelSet(section.ID())
		if models.HasLabel(set, label) {
			m.updateViewportContent()
			return m, func() tea.Msg {
				return StatusMsg(fmt.Sprintf("%q is already present.", label))
			}
		}
		return m, m.requestQuickAdd(section, label)
	}

	var cmd tea.Cmd
	m.labelInput, cmd = m.labelInput.Update(msg)
	m.updateViewportContent()
	return m, cmd
}

// requestQuickAdd runs the abbreviated single-change flow for a label
// section: backend call first, local apply after, duplicate conflicts
// from the backend treated as success.
func (m *SettingsModel) requestQuickAdd(section settings.Section, label string) tea.Cmd {
	id := section.ID()
	qc := settings.QuickChange{
		Section:     section,
		Description: fmt.Sprintf("%s %q will be added.", m.labelNoun(id), label),
		Success:     fmt.Sprintf("%s %q added.", m.labelNoun(id), label),
		Apply: func(doc *models.SettingsDocument) error {
			m.setLabelSet(doc, id, mustAddLabel(m.labelSetOf(doc, id), label))
			return nil
		},
		Persist: func(ctx context.Context) error {
			err := m.persistLabel(ctx, id, label)
			if api.IsDuplicate(err) {
				// Another client added it first; the add still stands.
				return nil
			}
			return err
		},
	}
	if err := m.gate.RequestQuickChange(qc); err != nil {
		return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
	}
	return m.openConfirmation()
}

func (m *SettingsModel) persistLabel(ctx context.Context, id settings.SectionID, label string) error {
	switch id {
	case settings.SectionCreditTypes:
		return m.client.AddCreditType(ctx, label)
	case settings.SectionExpenseCategories:
		return m.client.AddExpenseCategory(ctx, label)
	default:
		return m.client.AddCashMode(ctx, label)
	}
}

func (m *SettingsModel) enterEditMode(id settings.SectionID) tea.Cmd {
	if err := m.controller.BeginEdit(id); err != nil {
		return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
	}
	m.editingID = id
	m.fieldIndex = 0
	m.editingPrice = false
	m.addingFuel = false
	m.addingLabel = false

	if id == settings.SectionGeneral {
		g := m.controller.Document().General
		for i, f := range generalFieldSpec {
			m.generalInputs[i].SetValue(f.get(&g))
			m.generalInputs[i].Blur()
		}
		m.generalInputs[0].Focus()
	}
	m.updateViewportContent()
	return nil
}

func (m *SettingsModel) leaveEditMode() {
	m.editingID = ""
	m.fieldIndex = 0
	m.editingPrice = false
	m.addingFuel = false
	m.addingLabel = false
	for i := range m.generalInputs {
		m.generalInputs[i].Blur()
	}
	m.priceInput.Blur()
	m.labelInput.Blur()
}

func (m *SettingsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A commit in flight owns the session; keystrokes wait for its
	// resolution.
	if m.gate.State() == settings.GateCommitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		if m.editingPrice || m.addingFuel || m.addingLabel {
			m.editingPrice = false
			m.addingFuel = false
			m.addingLabel = false
			m.priceInput.Blur()
			m.labelInput.Blur()
			m.updateViewportContent()
			return m, nil
		}
		// Reject: restore the snapshot, no network call. After a failed
		// commit the gate still holds the pending save, so it does the
		// restoring.
		if m.gate.State() != settings.GateIdle {
			m.gate.Cancel()
		} else {
			m.controller.CancelEdit(m.editingID)
		}
		m.leaveEditMode()
		m.updateViewportContent()
		return m, nil

	case "ctrl+s":
		if m.editingPrice || m.addingFuel || m.addingLabel {
			return m, nil
		}
		// Also the retry path after a failed commit: the gate re-runs
		// the diff so the dialog matches the current document.
		return m, m.requestSave()
	}

	switch m.editingID {
	case settings.SectionGeneral:
		return m.updateGeneralEdit(msg)
	case settings.SectionRates:
		return m.updateRatesEdit(msg)
	case settings.SectionNozzles:
		return m.updateNozzlesEdit(msg)
	default:
		return m.updateLabelEdit(msg)
	}
}

// requestSave runs the diff and, when changes exist, opens the
// confirmation dialog with the pending change list. An empty diff ends
// the session silently.
func (m *SettingsModel) requestSave() tea.Cmd {
	m.syncGeneralInputs()
	if err := m.gate.RequestSave(m.editingID); err != nil {
		return func() tea.Msg { return ErrorStatusMsg(err.Error()) }
	}
	if m.gate.State() == settings.GateAwaitingConfirmation {
		return m.openConfirmation()
	}
	// Nothing changed: edit mode exits with no banner.
	m.leaveEditMode()
	m.updateViewportContent()
	return nil
}

// openConfirmation moves the relay's pending request into the dialog.
// Confirming commits through the gate in a background command so the
// UI keeps rendering while the request is in flight.
func (m *SettingsModel) openConfirmation() tea.Cmd {
	req := m.relay.Take()
	if req == nil {
		return nil
	}
	m.confirm.Show(ConfirmationConfig{
		Title:   "CONFIRM CHANGES",
		Message: "Save these changes?",
		Changes: req.changes,
		Width:   min(m.width-8, 72),
	}, func() tea.Cmd {
		return func() tea.Msg {
			err := m.gate.Confirm(context.Background())
			return commitResultMsg{err: err}
		}
	}, func() tea.Cmd {
		m.gate.Cancel()
		if _, editing := m.controller.Editing(); !editing {
			m.leaveEditMode()
		}
		m.updateViewportContent()
		return func() tea.Msg { return StatusMsg("Changes discarded.") }
	})
	m.updateViewportContent()
	return nil
}

func (m *SettingsModel) syncGeneralInputs() {
	if m.editingID != settings.SectionGeneral {
		return
	}
	g := &m.controller.Document().General
	for i, f := range generalFieldSpec {
		f.set(g, m.generalInputs[i].Value())
	}
}

func (m *SettingsModel) updateGeneralEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if m.fieldIndex > 0 {
			m.generalInputs[m.fieldIndex].Blur()
			m.fieldIndex--
			m.generalInputs[m.fieldIndex].Focus()
			m.updateViewportContent()
		}
		return m, nil

	case "down", "tab", "enter":
		if m.fieldIndex < len(m.generalInputs)-1 {
			m.generalInputs[m.fieldIndex].Blur()
			m.fieldIndex++
			m.generalInputs[m.fieldIndex].Focus()
			m.updateViewportContent()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.generalInputs[m.fieldIndex], cmd = m.generalInputs[m.fieldIndex].Update(msg)
	m.syncGeneralInputs()
	m.updateViewportContent()
	return m, cmd
}

func (m *SettingsModel) updateRatesEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.controller.Document()

	if m.editingPrice {
		switch msg.String() {
		case "enter":
			price, err := strconv.ParseFloat(strings.TrimSpace(m.priceInput.Value()), 64)
			if err == nil && m.fieldIndex < len(doc.Fuels) {
				if err := doc.SetFuelPrice(doc.Fuels[m.fieldIndex].ID, price); err != nil {
					return m, func() tea.Msg { return ErrorStatusMsg(err.Error()) }
				}
			}
			m.editingPrice = false
			m.priceInput.Blur()
			m.updateViewportContent()
			return m, nil
		}
		var cmd tea.Cmd
		m.priceInput, cmd = m.priceInput.Update(msg)
		m.updateViewportContent()
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.fieldIndex > 0 {
			m.fieldIndex--
			m.updateViewportContent()
		}
	case "down", "j":
		if m.fieldIndex < len(doc.Fuels)-1 {
			m.fieldIndex++
			m.updateViewportContent()
		}
	case "enter":
		if m.fieldIndex < len(doc.Fuels) {
			m.editingPrice = true
			m.priceInput.SetValue(fmt.Sprintf("%.2f", doc.Fuels[m.fieldIndex].Price))
			m.priceInput.Focus()
			m.updateViewportContent()
		}
	}
	return m, nil
}

func (m *SettingsModel) updateNozzlesEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.controller.Document()

	if m.addingFuel {
		return m.updateFuelForm(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.fieldIndex > 0 {
			m.fieldIndex--
			m.updateViewportContent()
		}
	case "down", "j":
		if m.fieldIndex < len(doc.Fuels)-1 {
			m.fieldIndex++
			m.updateViewportContent()
		}
	case "+", "=":
		if m.fieldIndex < len(doc.Fuels) {
			_ = doc.IncrementNozzle(doc.Fuels[m.fieldIndex].ID)
			m.updateViewportContent()
		}
	case "-":
		if m.fieldIndex < len(doc.Fuels) {
			// Dropping the last nozzle removes the fuel itself.
			deleted, _ := doc.DecrementNozzle(doc.Fuels[m.fieldIndex].ID)
			if deleted && m.fieldIndex >= len(doc.Fuels) && m.fieldIndex > 0 {
				m.fieldIndex--
			}
			m.updateViewportContent()
		}
	case "d":
		if m.fieldIndex < len(doc.Fuels) {
			_ = doc.RemoveFuel(doc.Fuels[m.fieldIndex].ID)
			if m.fieldIndex >= len(doc.Fuels) && m.fieldIndex > 0 {
				m.fieldIndex--
			}
			m.updateViewportContent()
		}
	case "a":
		m.addingFuel = true
		m.fuelFormIndex = 0
		m.fuelNameInput.SetValue("")
		m.fuelPriceInput.SetValue("")
		m.fuelNozzInput.SetValue("")
		m.fuelNameInput.Focus()
		m.fuelPriceInput.Blur()
		m.fuelNozzInput.Blur()
		m.updateViewportContent()
	}
	return m, nil
}

func (m *SettingsModel) updateFuelForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := []*textinput.Model{&m.fuelNameInput, &m.fuelPriceInput, &m.fuelNozzInput}

	switch msg.String() {
	case "tab", "shift+tab":
		inputs[m.fuelFormIndex].Blur()
		if msg.String() == "tab" {
			m.fuelFormIndex = (m.fuelFormIndex + 1) % len(inputs)
		} else {
			m.fuelFormIndex = (m.fuelFormIndex + len(inputs) - 1) % len(inputs)
		}
		inputs[m.fuelFormIndex].Focus()
		m.updateViewportContent()
		return m, nil

	case "enter":
		name := m.fuelNameInput.Value()
		price, err := strconv.ParseFloat(strings.TrimSpace(m.fuelPriceInput.Value()), 64)
		if err != nil {
			return m, func() tea.Msg { return ErrorStatusMsg("Price must be a number.") }
		}
		nozzles, _ := strconv.Atoi(strings.TrimSpace(m.fuelNozzInput.Value()))
		if _, err := m.controller.Document().AddFuel(name, price, nozzles); err != nil {
			return m, func() tea.Msg { return ErrorStatusMsg(err.Error()) }
		}
		m.addingFuel = false
		for _, in := range inputs {
			in.Blur()
		}
		m.updateViewportContent()
		return m, nil
	}

	var cmd tea.Cmd
	*inputs[m.fuelFormIndex], cmd = inputs[m.fuelFormIndex].Update(msg)
	m.updateViewportContent()
	return m, cmd
}

func (m *SettingsModel) updateLabelEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	doc := m.controller.Document()
	set := m.labelSetOf(doc, m.editingID)

	if m.addingLabel {
		switch msg.String() {
		case "enter":
			label := m.labelInput.Value()
			m.setLabelSet(doc, m.editingID, mustAddLabel(set, label))
			m.addingLabel = false
			m.labelInput.Blur()
			m.updateViewportContent()
			return m, nil
		}
		var cmd tea.Cmd
		m.labelInput, cmd = m.labelInput.Update(msg)
		m.updateViewportContent()
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.fieldIndex > 0 {
			m.fieldIndex--
			m.updateViewportContent()
		}
	case "down", "j":
		if m.fieldIndex < len(set)-1 {
			m.fieldIndex++
			m.updateViewportContent()
		}
	case "a":
		m.addingLabel = true
		m.labelInput.SetValue("")
		m.labelInput.Focus()
		m.updateViewportContent()
	case "d":
		if m.fieldIndex < len(set) {
			next, _ := models.RemoveLabel(set, set[m.fieldIndex])
			m.setLabelSet(doc, m.editingID, next)
			if m.fieldIndex >= len(next) && m.fieldIndex > 0 {
				m.fieldIndex--
			}
			m.updateViewportContent()
		}
	}
	return m, nil
}

func (m *SettingsModel) drainStatus() tea.Cmd {
	entries := m.notifier.Drain()
	if len(entries) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, len(entries))
	for i, e := range entries {
		entry := e
		cmds[i] = func() tea.Msg {
			if entry.isError {
				return ErrorStatusMsg(entry.text)
			}
			return StatusMsg(entry.text)
		}
	}
	return tea.Batch(cmds...)
}

func (m *SettingsModel) isLabelSection(id settings.SectionID) bool {
	switch id {
	case settings.SectionCreditTypes, settings.SectionExpenseCategories, settings.SectionCashModes:
		return true
	}
	return false
}

func (m *SettingsModel) labelSet(id settings.SectionID) []string {
	return m.labelSetOf(m.controller.Document(), id)
}

func (m *SettingsModel) labelSetOf(doc *models.SettingsDocument, id settings.SectionID) []string {
	switch id {
	case settings.SectionCreditTypes:
		return doc.CreditTypes
	case settings.SectionExpenseCategories:
		return doc.ExpenseCategories
	default:
		return doc.CashModes
	}
}

func (m *SettingsModel) setLabelSet(doc *models.SettingsDocument, id settings.SectionID, set []string) {
	switch id {
	case settings.SectionCreditTypes:
		doc.CreditTypes = set
	case settings.SectionExpenseCategories:
		doc.ExpenseCategories = set
	default:
		doc.CashModes = set
	}
}

func (m *SettingsModel) labelNoun(id settings.SectionID) string {
	switch id {
	case settings.SectionCreditTypes:
		return "Credit type"
	case settings.SectionExpenseCategories:
		return "Expense category"
	default:
		return "Cash mode"
	}
}

func mustAddLabel(set []string, label string) []string {
	next, _ := models.AddLabel(set, label)
	return next
}

func (m *SettingsModel) View() string {
	if !m.loaded {
		return "Loading settings..."
	}

	if m.confirm.Active() {
		padding := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
		return padding.Render(m.confirm.View())
	}

	contentStyle := lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)
	borderStyle := activeBorderStyle.
		Width(m.width - 4).
		Height(m.height - 5)

	var content strings.Builder
	content.WriteString(paneHeading(m.headingTitle(), m.width-4))
	content.WriteString("\n\n")

	m.updateViewportContent()
	content.WriteString(contentStyle.Render(m.viewport.View()))

	var s strings.Builder
	s.WriteString(contentStyle.Render(borderStyle.Render(content.String())))
	s.WriteString("\n")
	s.WriteString(renderHelpBox(m.helpItems(), m.width))
	return s.String()
}

func (m *SettingsModel) headingTitle() string {
	if m.editingID == "" {
		return "SETTINGS"
	}
	section, _ := settings.ForID(m.editingID)
	return "EDIT " + strings.ToUpper(section.Title())
}

func (m *SettingsModel) helpItems() []string {
	if m.editingID == "" {
		if m.quickLabel {
			return []string{"enter add", "esc cancel"}
		}
		return []string{"↑↓ navigate", "enter edit", "a quick add", "r refresh", "c creditors", "esc back", "^c quit"}
	}
	switch m.editingID {
	case settings.SectionGeneral:
		return []string{"↑↓/tab navigate", "^s save", "esc cancel", "^c quit"}
	case settings.SectionRates:
		return []string{"↑↓ navigate", "enter edit price", "^s save", "esc cancel", "^c quit"}
	case settings.SectionNozzles:
		return []string{"↑↓ navigate", "+/- nozzles", "a add fuel", "d delete", "^s save", "esc cancel", "^c quit"}
	default:
		return []string{"↑↓ navigate", "a add", "d delete", "^s save", "esc cancel", "^c quit"}
	}
}

func (m *SettingsModel) updateViewportContent() {
	var content strings.Builder
	if m.editingID == "" {
		m.renderBrowser(&content)
	} else {
		switch m.editingID {
		case settings.SectionGeneral:
			m.renderGeneralEdit(&content)
		case settings.SectionRates:
			m.renderRatesEdit(&content)
		case settings.SectionNozzles:
			m.renderNozzlesEdit(&content)
		default:
			m.renderLabelEdit(&content)
		}
	}
	m.viewport.SetContent(content.String())
}

func (m *SettingsModel) renderBrowser(content *strings.Builder) {
	doc := m.controller.Document()

	content.WriteString(sectionTitleStyle.Render("SECTIONS"))
	content.WriteString("\n\n")

	for i, section := range settings.Sections {
		line := fmt.Sprintf("%-22s %s", section.Title(), m.sectionSummary(doc, section.ID()))
		if i == m.sectionCursor {
			content.WriteString(selectedStyle.Render(focusedStyle.Render("▸ " + line)))
		} else {
			content.WriteString(normalStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}

	if m.quickLabel {
		content.WriteString("\n")
		section := settings.Sections[m.sectionCursor]
		content.WriteString(focusedStyle.Render(fmt.Sprintf("Add %s: ", strings.ToLower(m.labelNoun(section.ID())))))
		content.WriteString(m.labelInput.View())
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(commentStyle.Render("  # Enter opens a section for editing; changes are reviewed before they are saved"))
	content.WriteString("\n")
}

func (m *SettingsModel) sectionSummary(doc *models.SettingsDocument, id settings.SectionID) string {
	switch id {
	case settings.SectionGeneral:
		if doc.General.PumpName == "" {
			return commentStyle.Render("not set")
		}
		return doc.General.PumpName
	case settings.SectionRates, settings.SectionNozzles:
		return fmt.Sprintf("%d fuels", len(doc.Fuels))
	default:
		return fmt.Sprintf("%d items", len(m.labelSetOf(doc, id)))
	}
}

func (m *SettingsModel) renderGeneralEdit(content *strings.Builder) {
	content.WriteString(sectionTitleStyle.Render("GENERAL INFORMATION"))
	content.WriteString("\n\n")
	for i, f := range generalFieldSpec {
		line := labelStyle.Render(f.label) + " " + m.generalInputs[i].View()
		if i == m.fieldIndex {
			content.WriteString(focusedStyle.Render("▸ " + line))
		} else {
			content.WriteString(normalStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}
}

func (m *SettingsModel) renderRatesEdit(content *strings.Builder) {
	doc := m.controller.Document()
	content.WriteString(sectionTitleStyle.Render("FUEL RATES"))
	content.WriteString("\n\n")

	if len(doc.Fuels) == 0 {
		content.WriteString(commentStyle.Render("  # No fuels configured; add them under Fuels & nozzles"))
		content.WriteString("\n")
		return
	}

	for i, f := range doc.Fuels {
		var line string
		if m.editingPrice && i == m.fieldIndex {
			line = fmt.Sprintf("%-24s %s", f.Name, m.priceInput.View())
		} else {
			line = fmt.Sprintf("%-24s %s", f.Name, settings.FormatCurrency(f.Price))
		}
		if i == m.fieldIndex {
			content.WriteString(focusedStyle.Render("▸ " + line))
		} else {
			content.WriteString(normalStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}
}

func (m *SettingsModel) renderNozzlesEdit(content *strings.Builder) {
	doc := m.controller.Document()
	content.WriteString(sectionTitleStyle.Render("FUELS & NOZZLES"))
	content.WriteString("\n\n")

	for i, f := range doc.Fuels {
		line := fmt.Sprintf("%-24s %d nozzles  %s", f.Name, f.NozzleCount, settings.FormatCurrency(f.Price))
		if i == m.fieldIndex && !m.addingFuel {
			content.WriteString(focusedStyle.Render("▸ " + line))
		} else {
			content.WriteString(normalStyle.Render("  " + line))
		}
		content.WriteString("\n")
	}
	if len(doc.Fuels) == 0 {
		content.WriteString(commentStyle.Render("  # No fuels configured"))
		content.WriteString("\n")
	}

	if m.addingFuel {
		formStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("170")).
			Padding(1).
			MarginLeft(2).
			MarginRight(2)
		form := fmt.Sprintf("NEW FUEL:\n\nName:    %s\nPrice:   %s\nNozzles: %s\n\n%s",
			m.fuelNameInput.View(),
			m.fuelPriceInput.View(),
			m.fuelNozzInput.View(),
			commentStyle.Render("Tab to switch fields • Enter to add • Esc to cancel"))
		content.WriteString("\n")
		content.WriteString(formStyle.Render(form))
		content.WriteString("\n")
	}
}

func (m *SettingsModel) renderLabelEdit(content *strings.Builder) {
	section, _ := settings.ForID(m.editingID)
	set := m.labelSet(m.editingID)

	content.WriteString(sectionTitleStyle.Render(strings.ToUpper(section.Title())))
	content.WriteString("\n\n")

	for i, label := range set {
		if i == m.fieldIndex && !m.addingLabel {
			content.WriteString(selectedStyle.Render(focusedStyle.Render("▸ " + label)))
		} else {
			content.WriteString(normalStyle.Render("  " + label))
		}
		content.WriteString("\n")
	}
	if len(set) == 0 {
		content.WriteString(commentStyle.Render("  # Empty; press 'a' to add"))
		content.WriteString("\n")
	}

	if m.addingLabel {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Add: "))
		content.WriteString(m.labelInput.View())
		content.WriteString("\n")
	}
}

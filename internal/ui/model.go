// Package ui renders the product admin panel: a listing table and the
// add-product modal, driven by the form controller.
package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-admin/internal/domain"
	"github.com/kahvecikaan/product-admin/internal/form"
)

// noticeTTL is how long a transient status notice stays visible.
const noticeTTL = 4 * time.Second

// ProductAPI is the slice of the API client the UI depends on.
type ProductAPI interface {
	ListProducts(ctx context.Context) ([]domain.ProductRecord, error)
	CreateProduct(ctx context.Context, payload *domain.NewProductPayload) error
}

// submitEvents collects controller callbacks fired during a submit so the
// update loop can apply them once the submitFinishedMsg arrives.
type submitEvents struct {
	notes  []form.Notification
	closed bool
}

// Model is the root Bubble Tea model for the admin panel.
type Model struct {
	api    ProductAPI
	ctrl   *form.Controller
	logger hclog.Logger
	styles Styles

	table  table.Model
	spin   spinner.Model
	inputs []textinput.Model
	focus  int

	modalOpen  bool
	submitting bool

	notice      string
	noticeLevel form.Level
	noticeSeq   int

	events *submitEvents

	width  int
	height int
}

// New wires the admin panel against the given product API.
func New(api ProductAPI, logger hclog.Logger) Model {
	styles := DefaultStyles()

	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Name", Width: 24},
		{Title: "Price", Width: 12},
		{Title: "In stock", Width: 10},
		{Title: "Low stock", Width: 10},
		{Title: "Category", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot

	events := &submitEvents{}
	ctrl := form.NewController(api, logger.Named("form"))
	ctrl.Notify = func(n form.Notification) {
		events.notes = append(events.notes, n)
	}
	ctrl.OnSuccess = func() {
		events.closed = true
	}

	return Model{
		api:    api,
		ctrl:   ctrl,
		logger: logger,
		styles: styles,
		table:  t,
		spin:   s,
		inputs: newFieldInputs(),
		events: events,
	}
}

// newFieldInputs builds one text input per field descriptor, in order.
func newFieldInputs() []textinput.Model {
	inputs := make([]textinput.Model, len(domain.Fields))
	for i, f := range domain.Fields {
		ti := textinput.New()
		ti.Placeholder = f.Placeholder
		ti.CharLimit = 64
		ti.Width = 28
		inputs[i] = ti
	}
	return inputs
}

func (m Model) Init() tea.Cmd {
	return m.loadProductsCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case productsLoadedMsg:
		if msg.err != nil {
			m.logger.Error("Unable to load products", "error", msg.err)
			return m.setNotice(form.LevelError, "Unable to load products")
		}
		m.table.SetRows(productRows(msg.products))
		return m, nil

	case submitFinishedMsg:
		return m.finishSubmit(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modalOpen {
			return m.updateModal(msg)
		}
		return m.updateListing(msg)
	}

	return m, nil
}

// updateListing handles keys while the product table has focus.
func (m Model) updateListing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "a":
		return m.openModal()

	case "r":
		return m, m.loadProductsCmd()

	case "e":
		// Placeholder affordance, no behavior attached yet.
		return m.setNotice(form.LevelError, "Edit is not implemented yet")

	case "d":
		// Placeholder affordance, no behavior attached yet.
		return m.setNotice(form.LevelError, "Delete is not implemented yet")
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// updateModal handles keys while the add-product form is open. Every
// control is inert while a submit is in flight.
func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m.closeModal(), nil

	case "enter":
		// Validation and coercion stay on the event loop; only the
		// network call runs inside the command.
		payload, err := m.ctrl.BeginSubmit()
		if err != nil {
			return m.applySubmitEvents(err)
		}
		m.submitting = true
		return m, tea.Batch(m.spin.Tick, m.submitCmd(payload))

	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.ctrl.SetField(domain.Fields[m.focus].ID, m.inputs[m.focus].Value())
	return m, cmd
}

// openModal resets the draft and focuses the first field.
func (m Model) openModal() (tea.Model, tea.Cmd) {
	m.ctrl.Reset()
	m.inputs = newFieldInputs()
	m.focus = 0
	m.modalOpen = true
	return m, m.inputs[0].Focus()
}

// closeModal discards the draft and returns to the listing.
func (m Model) closeModal() Model {
	m.ctrl.Reset()
	m.modalOpen = false
	return m
}

func (m Model) moveFocus(delta int) (Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	return m, m.inputs[m.focus].Focus()
}

// finishSubmit applies the outcome of the network call on the event loop.
func (m Model) finishSubmit(msg submitFinishedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	m.ctrl.FinishSubmit(msg.err)
	return m.applySubmitEvents(msg.err)
}

// applySubmitEvents drains the notices and close signal the controller
// emitted during a submit phase: modal close and a listing refresh on
// success, a transient notice otherwise.
func (m Model) applySubmitEvents(err error) (tea.Model, tea.Cmd) {
	notes := m.events.notes
	closed := m.events.closed
	m.events.notes = nil
	m.events.closed = false

	var cmds []tea.Cmd
	if closed {
		m.modalOpen = false
		m.inputs = newFieldInputs()
		m.focus = 0
		cmds = append(cmds, m.loadProductsCmd())
	}

	if len(notes) > 0 {
		last := notes[len(notes)-1]
		var cmd tea.Cmd
		m, cmd = m.setNotice(last.Level, last.Message)
		cmds = append(cmds, cmd)
	} else if err != nil {
		var cmd tea.Cmd
		m, cmd = m.setNotice(form.LevelError, "Unable to create the product")
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// setNotice shows a transient status message and arms its expiry timer.
func (m Model) setNotice(level form.Level, message string) (Model, tea.Cmd) {
	m.notice = message
	m.noticeLevel = level
	m.noticeSeq++
	seq := m.noticeSeq
	return m, tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m Model) loadProductsCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		products, err := api.ListProducts(context.Background())
		return productsLoadedMsg{products: products, err: err}
	}
}

// submitCmd performs only the network call; the controller is owned by
// the event loop and must not be touched from the command goroutine.
func (m Model) submitCmd(payload *domain.NewProductPayload) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		return submitFinishedMsg{err: api.CreateProduct(context.Background(), payload)}
	}
}

func productRows(products []domain.ProductRecord) []table.Row {
	rows := make([]table.Row, len(products))
	for i, p := range products {
		rows[i] = table.Row{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			fmt.Sprintf("%.2f", p.UnitPrice),
			fmt.Sprintf("%d", p.InStockCount),
			fmt.Sprintf("%d", p.LowStockCount),
			fmt.Sprintf("%d", p.CategoryID),
		}
	}
	return rows
}

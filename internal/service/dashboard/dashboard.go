// Package dashboard is the staff terminal UI for working through orders
// and service requests.
package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/internal/service/ui"
)

const listLimit = 100

type tab int

const (
	tabOrders tab = iota
	tabRequests
)

type ordersMsg []core.Order
type requestsMsg []core.ServiceRequest
type errMsg error
type statusUpdatedMsg struct{}

type model struct {
	ctx      context.Context
	orders   core.OrdersRepository
	requests core.RequestsRepository

	active        tab
	ordersTable   table.Model
	requestsTable table.Model

	orderRows   []core.Order
	requestRows []core.ServiceRequest

	err      error
	quitting bool
}

// Run blocks until the operator quits the dashboard.
func Run(ctx context.Context, orders core.OrdersRepository, requests core.RequestsRepository) error {
	m := newModel(ctx, orders, requests)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newModel(ctx context.Context, orders core.OrdersRepository, requests core.RequestsRepository) model {
	ordersTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Room", Width: 6},
			{Title: "Items", Width: 34},
			{Title: "Total", Width: 9},
			{Title: "Status", Width: 11},
			{Title: "Created", Width: 17},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	requestsTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 5},
			{Title: "Room", Width: 6},
			{Title: "Type", Width: 14},
			{Title: "Details", Width: 30},
			{Title: "Status", Width: 12},
			{Title: "Created", Width: 17},
		}),
		table.WithHeight(12),
	)

	return model{
		ctx:           ctx,
		orders:        orders,
		requests:      requests,
		ordersTable:   ordersTable,
		requestsTable: requestsTable,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.loadOrders(), m.loadRequests())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersMsg:
		m.orderRows = msg
		m.ordersTable.SetRows(orderRows(msg))
		return m, nil

	case requestsMsg:
		m.requestRows = msg
		m.requestsTable.SetRows(requestRows(msg))
		return m, nil

	case statusUpdatedMsg:
		return m, tea.Batch(m.loadOrders(), m.loadRequests())

	case errMsg:
		m.err = msg
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.switchTab()
			return m, nil
		case "r":
			m.err = nil
			return m, tea.Batch(m.loadOrders(), m.loadRequests())
		case "s":
			return m, m.advanceStatus()
		}
	}

	var cmd tea.Cmd
	if m.active == tabOrders {
		m.ordersTable, cmd = m.ordersTable.Update(msg)
	} else {
		m.requestsTable, cmd = m.requestsTable.Update(msg)
	}
	return m, cmd
}

func (m *model) switchTab() {
	if m.active == tabOrders {
		m.active = tabRequests
		m.ordersTable.Blur()
		m.requestsTable.Focus()
	} else {
		m.active = tabOrders
		m.requestsTable.Blur()
		m.ordersTable.Focus()
	}
}

// advanceStatus cycles the selected row through its status enum.
func (m model) advanceStatus() tea.Cmd {
	if m.active == tabOrders {
		idx := m.ordersTable.Cursor()
		if idx < 0 || idx >= len(m.orderRows) {
			return nil
		}
		order := m.orderRows[idx]
		next := nextStatus(order.Status, core.OrderStatuses)
		return func() tea.Msg {
			if err := m.orders.UpdateStatus(m.ctx, order.ID, next); err != nil {
				return errMsg(err)
			}
			return statusUpdatedMsg{}
		}
	}

	idx := m.requestsTable.Cursor()
	if idx < 0 || idx >= len(m.requestRows) {
		return nil
	}
	req := m.requestRows[idx]
	next := nextStatus(req.Status, core.RequestStatuses)
	return func() tea.Msg {
		if err := m.requests.UpdateStatus(m.ctx, req.ID, next); err != nil {
			return errMsg(err)
		}
		return statusUpdatedMsg{}
	}
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(core.ResortName + " Staff Dashboard"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.active == tabOrders {
		b.WriteString(ui.TableBorderStyle.Render(m.ordersTable.View()))
	} else {
		b.WriteString(ui.TableBorderStyle.Render(m.requestsTable.View()))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ui.FlagStyle.Render("error: " + m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(ui.StatusBarStyle.Render("tab: switch  •  s: advance status  •  r: refresh  •  q: quit"))
	return b.String()
}

func (m model) renderTabs() string {
	ordersLabel := fmt.Sprintf("Orders (%d)", len(m.orderRows))
	requestsLabel := fmt.Sprintf("Requests (%d)", len(m.requestRows))

	if m.active == tabOrders {
		return ui.TabActiveStyle.Render(ordersLabel) + ui.TabInactiveStyle.Render(requestsLabel)
	}
	return ui.TabInactiveStyle.Render(ordersLabel) + ui.TabActiveStyle.Render(requestsLabel)
}

func (m model) loadOrders() tea.Cmd {
	return func() tea.Msg {
		orders, err := m.orders.List(m.ctx, core.ListFilter{Limit: listLimit})
		if err != nil {
			return errMsg(err)
		}
		return ordersMsg(orders)
	}
}

func (m model) loadRequests() tea.Cmd {
	return func() tea.Msg {
		requests, err := m.requests.List(m.ctx, core.ListFilter{Limit: listLimit})
		if err != nil {
			return errMsg(err)
		}
		return requestsMsg(requests)
	}
}

func orderRows(orders []core.Order) []table.Row {
	rows := make([]table.Row, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, table.Row{
			strconv.FormatInt(o.ID, 10),
			o.RoomNumber,
			truncate(itemSummary(o.Items), 34),
			fmt.Sprintf("₹%.0f", o.TotalAmount),
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func requestRows(requests []core.ServiceRequest) []table.Row {
	rows := make([]table.Row, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, table.Row{
			strconv.FormatInt(r.ID, 10),
			r.RoomNumber,
			r.RequestType,
			truncate(r.Details, 30),
			r.Status,
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return rows
}

func itemSummary(items []core.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

func nextStatus(current string, statuses []string) string {
	for i, s := range statuses {
		if s == current {
			return statuses[(i+1)%len(statuses)]
		}
	}
	return statuses[0]
}

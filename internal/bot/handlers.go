package bot

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/jarviz/jarvizbot/core/telegram/callbacks"
	"github.com/jarviz/jarvizbot/core/telegram/format"
	tghelpers "github.com/jarviz/jarvizbot/core/telegram/helpers"
	"github.com/jarviz/jarvizbot/core/telegram/keyboard"
	"github.com/jarviz/jarvizbot/core/telegram/state"
	"github.com/jarviz/jarvizbot/internal/model"
	"github.com/jarviz/jarvizbot/internal/service"
)

const helpText = `Hi! I'm your Expense Tracker Bot.

Commands:
/add - interactive add
/quick <category> <amount> [free text] --desc "your description"
/list [n] - last n items
/summary [today|week|month|all]
/export - get CSV
/help - this message`

const listDateLayout = "2006-01-02"

// Handlers binds Telegram updates to the expense services.
type Handlers struct {
	transactions *service.Transactions
	reports      *service.Reports
	export       *service.Export
	fsm          state.Manager
}

// NewHandlers wires the services and the conversation state manager.
func NewHandlers(transactions *service.Transactions, reports *service.Reports, export *service.Export, fsm state.Manager) *Handlers {
	return &Handlers{
		transactions: transactions,
		reports:      reports,
		export:       export,
		fsm:          fsm,
	}
}

// Start handles /start and /help.
func (h *Handlers) Start(c tele.Context) error {
	return tghelpers.SendText(c, helpText)
}

// Add begins the interactive add conversation.
func (h *Handlers) Add(c tele.Context) error {
	userID := c.Sender().ID
	h.fsm.Clear(userID)
	h.fsm.SetState(userID, StateAddCategory)
	return h.prompt(c, "Enter category (e.g. food, petrol, creditcard, emi):")
}

// Cancel aborts any in-progress conversation.
func (h *Handlers) Cancel(c tele.Context) error {
	userID := c.Sender().ID
	if !h.fsm.InProgress(userID) {
		return tghelpers.SendText(c, "Nothing to cancel.")
	}
	h.fsm.Clear(userID)
	return tghelpers.SendText(c, "Cancelled.")
}

func (h *Handlers) addCategory(c tele.Context) error {
	userID := c.Sender().ID
	category := strings.TrimSpace(c.Text())
	if category == "" {
		return tghelpers.SendText(c, "Category cannot be empty. Enter category:")
	}
	h.fsm.SetTemp(userID, tempCategory, category)
	h.fsm.SetState(userID, StateAddAmount)
	return h.prompt(c, "Enter amount (numbers):")
}

func (h *Handlers) addAmount(c tele.Context) error {
	userID := c.Sender().ID
	amount, err := service.ParseAmount(c.Text())
	if err != nil {
		return tghelpers.SendText(c, "Couldn't parse amount. Enter numeric amount:")
	}
	h.fsm.SetTemp(userID, tempAmount, amount)
	h.fsm.SetState(userID, StateAddDate)
	return h.prompt(c, "Enter date (YYYY-MM-DD) or 'today':")
}

func (h *Handlers) addDate(c tele.Context) error {
	userID := c.Sender().ID
	date, err := service.ParseDate(c.Text(), time.Now().UTC())
	if err != nil {
		return tghelpers.SendText(c, "Couldn't parse date. Please try again:")
	}
	h.fsm.SetTemp(userID, tempDate, date)
	h.fsm.SetState(userID, StateAddDescription)
	return h.prompt(c, "Enter description (or '-' to skip):")
}

func (h *Handlers) addDescription(c tele.Context) error {
	userID := c.Sender().ID
	defer h.fsm.Clear(userID)

	category, _ := h.fsm.GetTemp(userID, tempCategory)
	amount, _ := h.fsm.GetTemp(userID, tempAmount)
	date, _ := h.fsm.GetTemp(userID, tempDate)

	cat, ok := category.(string)
	if !ok {
		return tghelpers.SendText(c, "Something went wrong, start over with /add.")
	}
	amt, ok := amount.(float64)
	if !ok {
		return tghelpers.SendText(c, "Something went wrong, start over with /add.")
	}
	day, ok := date.(time.Time)
	if !ok {
		return tghelpers.SendText(c, "Something went wrong, start over with /add.")
	}

	tx := &model.Transaction{
		UserID:   userID,
		Category: cat,
		Amount:   amt,
		Date:     day,
	}
	if desc := normalizeDescription(c.Text()); desc != "" {
		tx.Description = &desc
	}

	ctx := tghelpers.BuildContext(c)
	if _, err := h.transactions.Add(ctx, tx); err != nil {
		return tghelpers.SendText(c, "Could not save the transaction, try again later.")
	}
	return tghelpers.SendText(c, "Saved ✅")
}

// Quick handles the one-shot /quick command.
func (h *Handlers) Quick(c tele.Context) error {
	payload := strings.TrimSpace(c.Message().Payload)
	entry, err := service.ParseQuick(payload, time.Now().UTC())
	if err != nil {
		return tghelpers.SendText(c, `Use: /quick <category> <amount> [free text] --desc "..."`)
	}

	tx := &model.Transaction{
		UserID:   c.Sender().ID,
		Category: entry.Category,
		Amount:   entry.Amount,
		Date:     entry.Date,
	}
	if entry.Description != "" {
		tx.Description = &entry.Description
	}

	ctx := tghelpers.BuildContext(c)
	if _, err := h.transactions.Add(ctx, tx); err != nil {
		return tghelpers.SendText(c, "Could not save the transaction, try again later.")
	}
	return tghelpers.SendText(c,
		fmt.Sprintf("Saved: %s %.2f on %s ✅", tx.Category, tx.Amount, tx.Date.Format(listDateLayout)))
}

// List handles /list [n].
func (h *Handlers) List(c tele.Context) error {
	limit := 10
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		if n, err := strconv.Atoi(strings.Fields(payload)[0]); err == nil && n > 0 {
			limit = n
		}
	}

	ctx := tghelpers.BuildContext(c)
	rows, err := h.transactions.Recent(ctx, c.Sender().ID, limit)
	if err != nil {
		return tghelpers.SendText(c, "Could not load transactions, try again later.")
	}
	if len(rows) == 0 {
		return tghelpers.SendText(c, "No transactions yet.")
	}

	lines := make([]string, 0, len(rows))
	for _, tx := range rows {
		lines = append(lines, fmt.Sprintf("%s | %s | %.2f | %s (id:%d)",
			tx.Date.Format(listDateLayout), tx.Category, tx.Amount,
			format.DerefString(tx.Description, ""), tx.ID))
	}
	return tghelpers.SendText(c, strings.Join(lines, "\n"))
}

// Summary handles /summary [period]. The reply carries inline buttons to
// switch between periods in place.
func (h *Handlers) Summary(c tele.Context) error {
	period := service.PeriodMonth
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		period = strings.ToLower(strings.Fields(payload)[0])
	}

	text, err := h.summaryText(c, period)
	if err != nil {
		return tghelpers.SendText(c, "Could not build the summary, try again later.")
	}
	return tghelpers.SendText(c, text, &tele.SendOptions{
		ReplyMarkup: summaryPeriodMarkup(),
	})
}

// summaryPeriod re-renders an existing summary message for the tapped period.
func (h *Handlers) summaryPeriod(c tele.Context) error {
	period := callbacks.CallbackPayload(c)
	text, err := h.summaryText(c, period)
	if err != nil {
		return tghelpers.EditText(c, "Could not build the summary, try again later.")
	}
	return tghelpers.EditText(c, text, summaryPeriodMarkup())
}

func (h *Handlers) summaryText(c tele.Context, period string) (string, error) {
	ctx := tghelpers.BuildContext(c)
	rows, err := h.reports.Summary(ctx, c.Sender().ID, period)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "No transactions for the selected period.", nil
	}
	return service.FormatSummary(rows), nil
}

func summaryPeriodMarkup() *tele.ReplyMarkup {
	return keyboard.InlineButtonsNPerRow([]keyboard.InlineBtn{
		{Text: "Today", Unique: summaryPeriodAction, Data: service.PeriodToday},
		{Text: "Week", Unique: summaryPeriodAction, Data: service.PeriodWeek},
		{Text: "Month", Unique: summaryPeriodAction, Data: service.PeriodMonth},
		{Text: "All", Unique: summaryPeriodAction, Data: service.PeriodAll},
	}, 2)
}

// Export handles /export and replies with a CSV document.
func (h *Handlers) Export(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	data, rows, err := h.export.CSV(ctx, c.Sender().ID)
	if err != nil {
		return tghelpers.SendText(c, "Could not build the export, try again later.")
	}
	if rows == 0 {
		return tghelpers.SendText(c, "No data to export.")
	}

	doc := &tele.Document{
		File:     tele.FromReader(bytes.NewReader(data)),
		FileName: "expenses.csv",
		MIME:     "text/csv",
	}
	return tghelpers.SendDocument(c, doc)
}

// Stats replies with table-wide usage counters. Admin only.
func (h *Handlers) Stats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	stats, err := h.reports.Stats(ctx)
	if err != nil {
		return tghelpers.SendText(c, "Could not load stats, try again later.")
	}
	return tghelpers.SendText(c,
		fmt.Sprintf("transactions: %d\nusers: %d", stats.Transactions, stats.Users))
}

// cancelAdd handles the inline cancel button shown during /add.
func (h *Handlers) cancelAdd(c tele.Context) error {
	h.fsm.Clear(c.Sender().ID)
	return tghelpers.EditText(c, "Cancelled.")
}

func (h *Handlers) prompt(c tele.Context, text string) error {
	return tghelpers.SendText(c, text, &tele.SendOptions{
		ReplyMarkup: keyboard.SingleCancelMarkup(cancelAddAction),
	})
}

// UnknownText nudges users who type outside a conversation.
func (h *Handlers) UnknownText(c tele.Context) error {
	return tghelpers.SendText(c, "I didn't get that. Use /add to record an expense or /help for commands.")
}

func normalizeDescription(text string) string {
	desc := strings.TrimSpace(text)
	switch strings.ToLower(desc) {
	case "", "-", "skip":
		return ""
	}
	return desc
}

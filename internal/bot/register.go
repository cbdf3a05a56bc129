package bot

import (
	tg "github.com/jarviz/jarvizbot/core/telegram"
	"github.com/jarviz/jarvizbot/core/telegram/commands"
	"github.com/jarviz/jarvizbot/core/telegram/state"
)

// Register wires commands, conversation states, and the text fallback.
func (h *Handlers) Register(reg *tg.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     h.Start,
		Description: "Show what the bot can do",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     h.Start,
		Description: "Show available commands",
		Hidden:      true,
	})
	reg.RegisterCommand("/add", commands.Command{
		Handler:     h.Add,
		Description: "Record an expense step by step",
	})
	reg.RegisterCommand("/quick", commands.Command{
		Handler:     h.Quick,
		Description: "Record an expense in one message",
	})
	reg.RegisterCommand("/list", commands.Command{
		Handler:     h.List,
		Description: "Show the latest transactions",
	})
	reg.RegisterCommand("/summary", commands.Command{
		Handler:     h.Summary,
		Description: "Totals by category for a period",
	})
	reg.RegisterCommand("/export", commands.Command{
		Handler:     h.Export,
		Description: "Download all transactions as CSV",
	})
	reg.RegisterCommand("/cancel", commands.Command{
		Handler:     h.Cancel,
		Description: "Abort the current conversation",
		Hidden:      true,
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     h.Stats,
		Description: "Bot-wide usage counters",
		AdminOnly:   true,
		Hidden:      true,
	})

	_ = reg.RegisterCallback(cancelAddAction, h.cancelAdd)
	_ = reg.RegisterCallback(summaryPeriodAction, h.summaryPeriod)

	state.RegisterHandler(StateAddCategory, h.addCategory)
	state.RegisterHandler(StateAddAmount, h.addAmount)
	state.RegisterHandler(StateAddDate, h.addDate)
	state.RegisterHandler(StateAddDescription, h.addDescription)

	reg.SetTextFallback(h.UnknownText)
}

package helpers

import (
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/jarviz/jarvizbot/core/logger"
	"github.com/jarviz/jarvizbot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

var globalDispatcher atomic.Pointer[sender.Dispatcher]

// SetDispatcher wires the asynchronous sender used by helper functions.
func SetDispatcher(d *sender.Dispatcher) {
	globalDispatcher.Store(d)
}

func currentDispatcher() *sender.Dispatcher {
	return globalDispatcher.Load()
}

func sendAsync(c tele.Context, action, endpoint string, run func() error) error {
	disp := currentDispatcher()
	if disp == nil {
		return run()
	}

	ctx := BuildContext(c)
	if err := disp.Enqueue(ctx, action, endpoint, run); err != nil {
		if errors.Is(err, sender.ErrQueueFull) || errors.Is(err, sender.ErrQueueClosed) {
			logger.Warn(ctx, "tg.sender", "queue.fallback",
				slog.String("action", action),
				slog.String("endpoint", endpoint),
				slog.String("err", err.Error()),
			)
			return run()
		}
		return err
	}
	return nil
}

// SendText sends raw text (no parse mode) to the current recipient.
func SendText(c tele.Context, text string, opts ...*tele.SendOptions) error {
	var sendOpts *tele.SendOptions
	if len(opts) > 0 {
		sendOpts = opts[0]
	}
	return sendAsync(c, "send.text", "sendMessage", func() error {
		if sendOpts != nil {
			return c.Send(text, sendOpts)
		}
		return c.Send(text)
	})
}

// EditText edits the current message in place with optional reply markup.
func EditText(c tele.Context, text string, markup ...*tele.ReplyMarkup) error {
	return sendAsync(c, "edit.text", "editMessageText", func() error {
		if len(markup) > 0 && markup[0] != nil {
			return c.Edit(text, markup[0])
		}
		return c.Edit(text)
	})
}

// SendDocument sends a file to the current recipient.
func SendDocument(c tele.Context, doc *tele.Document) error {
	return sendAsync(c, "send.document", "sendDocument", func() error {
		return c.Send(doc)
	})
}

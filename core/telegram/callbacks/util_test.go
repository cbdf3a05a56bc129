package callbacks

import (
	"testing"

	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	// Telebot prefixes callback data with a form-feed byte.
	unique, payload := ParseCallbackData(&tele.Callback{Data: "\fsummary_period|week"})
	require.Equal(t, "summary_period", unique)
	require.Equal(t, "week", payload)

	unique, payload = ParseCallbackData(&tele.Callback{Data: "\fadd_cancel"})
	require.Equal(t, "add_cancel", unique)
	require.Empty(t, payload)

	// Data without the prefix still parses.
	unique, payload = ParseCallbackData(&tele.Callback{Data: "summary_period|all"})
	require.Equal(t, "summary_period", unique)
	require.Equal(t, "all", payload)

	unique, payload = ParseCallbackData(nil)
	require.Empty(t, unique)
	require.Empty(t, payload)
}

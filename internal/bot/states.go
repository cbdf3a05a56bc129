package bot

import "github.com/jarviz/jarvizbot/core/telegram/state"

// Conversation states for the /add flow.
const (
	StateAddCategory    state.State = "add_category"
	StateAddAmount      state.State = "add_amount"
	StateAddDate        state.State = "add_date"
	StateAddDescription state.State = "add_description"
)

// Temp-data keys carried across /add steps.
const (
	tempCategory = "add.category"
	tempAmount   = "add.amount"
	tempDate     = "add.date"
)

// Callback keys for inline buttons.
const (
	cancelAddAction     = "add_cancel"
	summaryPeriodAction = "summary_period"
)

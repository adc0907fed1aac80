package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wakadash/wakadash/internal/models"
	"github.com/wakadash/wakadash/internal/services"
)

// TickMsg is sent periodically to trigger state housekeeping.
type TickMsg struct {
	Time time.Time
}

// ActivityLoadedMsg carries a freshly built activity view model.
type ActivityLoadedMsg struct {
	View *models.ActivityViewModel
}

// ActivityFailedMsg signals that an aggregation run failed fatally.
type ActivityFailedMsg struct {
	Error error
}

// RefreshMsg requests a new aggregation run.
type RefreshMsg struct{}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// OpenURLMsg requests opening a URL in the browser.
type OpenURLMsg struct {
	URL string
}

// OpenURLResultMsg contains the result of opening a URL.
type OpenURLResultMsg struct {
	URL     string
	Success bool
	Error   error
}

// DelayedMsg wraps a message to be sent after a delay.
type DelayedMsg struct {
	Delay time.Duration
	Msg   tea.Msg
}

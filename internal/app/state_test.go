package app

import (
	"errors"
	"testing"
	"time"

	"github.com/wakadash/wakadash/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if !s.IsLoading() {
		t.Error("new state should start in loading")
	}
	if s.GetView() != nil {
		t.Error("new state should have no view")
	}
	if s.BuildError() != nil {
		t.Error("new state should have no build error")
	}
}

func TestState_ViewLifecycle(t *testing.T) {
	s := NewState()
	view := &models.ActivityViewModel{TotalTimeText: "106 hrs"}

	s.SetView(view)
	if s.GetView() != view {
		t.Error("GetView should return the stored view")
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("SetView should stamp lastUpdated")
	}
	if s.TimeSinceUpdate() < 0 {
		t.Error("TimeSinceUpdate should be non-negative")
	}
}

func TestState_BuildErrorClearedBySuccess(t *testing.T) {
	s := NewState()

	s.SetBuildError(errors.New("boom"))
	if s.BuildError() == nil {
		t.Fatal("build error not stored")
	}

	s.SetView(&models.ActivityViewModel{})
	if s.BuildError() != nil {
		t.Error("successful view should clear the build error")
	}
}

func TestState_Loading(t *testing.T) {
	s := NewState()
	s.SetLoading(false)
	if s.IsLoading() {
		t.Error("loading should be false")
	}
	s.SetLoading(true)
	if !s.IsLoading() {
		t.Error("loading should be true")
	}
}

func TestState_TimeSinceUpdateZero(t *testing.T) {
	s := NewState()
	if s.TimeSinceUpdate() != 0 {
		t.Error("TimeSinceUpdate should be zero before the first view")
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationSuccess, "done", time.Minute)
	if id == "" {
		t.Fatal("AddNotification returned empty ID")
	}

	notifications := s.GetNotifications()
	if len(notifications) != 1 {
		t.Fatalf("notification count = %d, want 1", len(notifications))
	}
	if notifications[0].Message != "done" {
		t.Errorf("message = %q, want done", notifications[0].Message)
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("notification not removed")
	}
}

func TestState_NotificationExpiry(t *testing.T) {
	s := NewState()

	s.AddNotification(NotificationInfo, "short lived", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if len(s.GetNotifications()) != 0 {
		t.Error("expired notification still visible")
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState()

	for i := 0; i < 15; i++ {
		s.AddNotification(NotificationInfo, "n", 0)
	}

	if got := len(s.GetNotifications()); got > 10 {
		t.Errorf("notification count = %d, want at most 10", got)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("Loading...")
	notifications := s.GetNotifications()
	if len(notifications) != 1 || notifications[0].ID != LoadingNotificationID {
		t.Fatalf("loading notification missing: %+v", notifications)
	}

	// Updating replaces the message in place.
	s.SetLoadingNotification("Refreshing...")
	notifications = s.GetNotifications()
	if len(notifications) != 1 || notifications[0].Message != "Refreshing..." {
		t.Errorf("loading notification not updated: %+v", notifications)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification not cleared")
	}
}

func TestState_ClearAllNotifications(t *testing.T) {
	s := NewState()
	s.AddNotification(NotificationInfo, "a", 0)
	s.AddNotification(NotificationError, "b", 0)

	s.ClearAllNotifications()
	if len(s.GetNotifications()) != 0 {
		t.Error("notifications not cleared")
	}
}

func TestNotificationTypeString(t *testing.T) {
	tests := []struct {
		typ  NotificationType
		want string
	}{
		{NotificationSuccess, "success"},
		{NotificationError, "error"},
		{NotificationWarning, "warning"},
		{NotificationInfo, "info"},
		{NotificationType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("NotificationType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

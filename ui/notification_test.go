package ui

import (
	"testing"
	"time"
)

func TestNotificationVisibility(t *testing.T) {
	n := NewNotification()

	if n.IsVisible() {
		t.Error("new notification should not be visible")
	}

	n.Show("saved", 50*time.Millisecond)
	if !n.IsVisible() {
		t.Error("notification should be visible after Show")
	}

	time.Sleep(80 * time.Millisecond)
	if n.IsVisible() {
		t.Error("notification should expire after its duration")
	}
}

func TestNotificationClear(t *testing.T) {
	n := NewNotification()
	n.Show("message", time.Minute)
	n.Clear()
	if n.IsVisible() {
		t.Error("cleared notification should not be visible")
	}
}

func TestNotificationRectNilFace(t *testing.T) {
	if _, _, _, _, ok := notificationRect(nil, "message", 640, 480); ok {
		t.Error("nil face must report not ok instead of measuring")
	}
}

func TestNotificationShowReplacesMessage(t *testing.T) {
	n := NewNotification()
	n.Show("first", time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	n.ShowDefault("second")
	if !n.IsVisible() {
		t.Error("new Show should restart visibility")
	}
}

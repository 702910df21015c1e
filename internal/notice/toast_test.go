package notice

import (
	"testing"
	"time"
)

func run(t *Toast, ticks int) {
	for i := 0; i < ticks; i++ {
		t.Update()
	}
}

func TestToastLifecycle(t *testing.T) {
	toast := New(60, 2*time.Second, 400)
	if toast.Visible() {
		t.Fatal("New toast should be idle")
	}

	toast.Show("Sounds OFF")
	if !toast.Visible() || toast.Text() != "Sounds OFF" {
		t.Fatalf("Show did not activate: visible=%v text=%q", toast.Visible(), toast.Text())
	}
	if toast.Alpha() != 0 {
		t.Errorf("Banner should start off-screen, alpha=%f", toast.Alpha())
	}

	// slid in well before the hold ends
	run(toast, 60)
	if toast.Offset() > 5 {
		t.Errorf("Offset after 1s = %f, want near 0", toast.Offset())
	}
	if toast.Alpha() < 0.98 {
		t.Errorf("Alpha after 1s = %f", toast.Alpha())
	}

	run(toast, 60)
	if !toast.Visible() {
		t.Fatal("Toast hidden before sliding out")
	}

	run(toast, 120)
	if toast.Visible() {
		t.Errorf("Toast still visible 2s after hold, offset=%f", toast.Offset())
	}
}

func TestToastShowRestartsHold(t *testing.T) {
	toast := New(60, 2*time.Second, 400)
	toast.Show("Sounds OFF")
	run(toast, 100)

	toast.Show("Sounds ON")
	run(toast, 100)
	if !toast.Visible() || toast.Text() != "Sounds ON" {
		t.Errorf("Second Show should extend the hold: visible=%v text=%q", toast.Visible(), toast.Text())
	}
	if toast.Offset() > 5 {
		t.Errorf("Banner jumped out on re-show, offset=%f", toast.Offset())
	}
}

func TestToastUpdateIdle(t *testing.T) {
	toast := New(60, time.Second, 400)
	run(toast, 10)
	if toast.Visible() || toast.Offset() != 400 {
		t.Errorf("Idle toast moved: visible=%v offset=%f", toast.Visible(), toast.Offset())
	}
}

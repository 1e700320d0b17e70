package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMissionIsExpired(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	m := Mission{ExpiresAt: &past}
	if !m.IsExpired(now) {
		t.Error("past deadline: want expired")
	}
	m.ExpiresAt = &future
	if m.IsExpired(now) {
		t.Error("future deadline: want not expired")
	}
	m.ExpiresAt = nil
	if m.IsExpired(now) {
		t.Error("no deadline: want not expired")
	}
}

func TestCompletionRatio(t *testing.T) {
	m := Mission{Progress: decimal.NewFromInt(5), Target: decimal.NewFromInt(10)}
	if got := m.CompletionRatio(); !got.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("ratio = %s, want 0.5", got)
	}

	// Overshoot clamps to 1.
	m.Progress = decimal.NewFromInt(25)
	if got := m.CompletionRatio(); !got.Equal(decimal.NewFromInt(1)) {
		t.Errorf("ratio = %s, want 1", got)
	}

	// Degenerate target is never a division.
	m.Target = decimal.Zero
	if got := m.CompletionRatio(); !got.IsZero() {
		t.Errorf("ratio = %s, want 0 for zero target", got)
	}
}

func TestEndOfDay(t *testing.T) {
	now := time.Date(2023, 6, 15, 3, 24, 11, 0, time.UTC)
	got := EndOfDay(now)

	if got.Year() != 2023 || got.Month() != time.June || got.Day() != 15 {
		t.Fatalf("end of day on wrong date: %v", got)
	}
	if got.Hour() != 23 || got.Minute() != 59 || got.Second() != 59 {
		t.Errorf("end of day at wrong time: %v", got)
	}
	if !got.After(now) {
		t.Error("end of day must be after any moment of that day")
	}
}

package domain

import (
	"fmt"
	"time"
)

const (
	MinWeekday = 0
	MaxWeekday = 6
	MinHour    = 0
	MaxHour    = 23
)

// ChannelTask is a recurring match definition for one channel. Weekday counts
// from Monday (0) to Sunday (6). Tasks are keyed by (Weekday, Hour) within a channel.
type ChannelTask struct {
	MembersMin int
	Weekday    int
	Hour       int
}

func (t ChannelTask) Validate() error {
	if t.MembersMin < 1 {
		return fmt.Errorf("members_min must be at least 1, got %d", t.MembersMin)
	}
	if t.Weekday < MinWeekday || t.Weekday > MaxWeekday {
		return fmt.Errorf("weekday must be in [%d, %d], got %d", MinWeekday, MaxWeekday, t.Weekday)
	}
	if t.Hour < MinHour || t.Hour > MaxHour {
		return fmt.Errorf("hour must be in [%d, %d], got %d", MinHour, MaxHour, t.Hour)
	}
	return nil
}

func (t ChannelTask) SameSlot(other ChannelTask) bool {
	return t.Weekday == other.Weekday && t.Hour == other.Hour
}

// DueTask is a task that fires at a given hour.
type DueTask struct {
	Channel    ChannelID
	MembersMin int
}

// WeekdayOf maps t onto the Monday-first weekday numbering used by tasks.
func WeekdayOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// NextOccurrence returns the first top-of-hour instant strictly after now that
// falls on weekday and hour, in UTC.
func NextOccurrence(weekday, hour int, now time.Time) time.Time {
	now = now.UTC()
	days := (weekday - WeekdayOf(now) + 7) % 7
	if days == 0 && now.Hour() >= hour {
		days = 7
	}
	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), hour, 0, 0, 0, time.UTC)
}

package groups

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/bnema/matchy/internal/application"
	"github.com/bnema/matchy/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type GroupOptions struct {
	Channel domain.ChannelID
	DryRun  bool
	// ShowRoles lists each member's role ids next to the id.
	ShowRoles bool
}

func RenderGroups(groups []domain.Group, opts GroupOptions) (string, error) {
	return run(func(s styles) string {
		return groupsView(groups, opts, s)
	})
}

func RenderSchedule(channel domain.ChannelID, runs []application.ScheduledRun, now time.Time) (string, error) {
	return run(func(s styles) string {
		return scheduleView(channel, runs, now, s)
	})
}

func RenderHistory(user domain.MemberID, matches map[domain.MemberID]time.Time, now time.Time) (string, error) {
	return run(func(s styles) string {
		return historyView(user, matches, now, s)
	})
}

func RenderRoster(roster application.ChannelRoster, now time.Time) (string, error) {
	return run(func(s styles) string {
		return rosterView(roster, now, s)
	})
}

func groupsView(groups []domain.Group, opts GroupOptions, s styles) string {
	title := "Matched groups"
	if opts.DryRun {
		title = "Proposed groups"
	}
	lines := []string{s.title.Render(title)}

	header := fmt.Sprintf("groups: %d", len(groups))
	if opts.Channel != "" {
		header = fmt.Sprintf("channel: %s · %s", opts.Channel, header)
	}
	lines = append(lines, s.header.Render(header))

	if len(groups) == 0 {
		lines = append(lines, s.empty.Render("Nobody to match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, group := range groups {
		lines = append(lines, s.section.Render(renderGroup(i+1, group, opts, s)))
	}
	if opts.DryRun {
		lines = append(lines, s.section.Render(s.warning.Render("[dry run] nothing recorded")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderGroup(n int, group domain.Group, opts GroupOptions, s styles) string {
	names := make([]string, 0, len(group))
	for _, member := range group {
		name := string(member.MemberID())
		if opts.ShowRoles && len(member.RoleIDs()) > 0 {
			roles := make([]string, 0, len(member.RoleIDs()))
			for _, role := range member.RoleIDs() {
				roles = append(roles, string(role))
			}
			name += " " + s.role.Render("("+strings.Join(roles, ", ")+")")
		}
		names = append(names, name)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.group.Render(fmt.Sprintf("Group %d (%d)", n, len(group))),
		s.detail.Render(formatList(names)),
	)
}

func scheduleView(channel domain.ChannelID, runs []application.ScheduledRun, now time.Time, s styles) string {
	lines := []string{
		s.title.Render("Scheduled matches"),
		s.header.Render(fmt.Sprintf("channel: %s · tasks: %d", channel, len(runs))),
	}

	if len(runs) == 0 {
		lines = append(lines, s.empty.Render("No scheduled matches."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, scheduled := range runs {
		lines = append(lines, scheduleLine(scheduled, now, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func scheduleLine(scheduled application.ScheduledRun, now time.Time, s styles) string {
	task := scheduled.Task
	slot := s.slotKey.Render(fmt.Sprintf("%s %02d:00 UTC", weekdayLabel(task.Weekday), task.Hour))
	meta := s.meta.Render(fmt.Sprintf("min %d per group", task.MembersMin))
	nextStyle := lipgloss.NewStyle().Foreground(nextRunColor(scheduled.Next, now))
	next := nextStyle.Render(fmt.Sprintf("(%s)", formatNextRelative(scheduled.Next, now)))

	return lipgloss.JoinHorizontal(lipgloss.Top, slot, " ", meta, " ", next)
}

func historyView(user domain.MemberID, matches map[domain.MemberID]time.Time, now time.Time, s styles) string {
	lines := []string{
		s.title.Render(fmt.Sprintf("Match history for %s", user)),
		s.header.Render(fmt.Sprintf("partners: %d", len(matches))),
	}

	if len(matches) == 0 {
		lines = append(lines, s.empty.Render("No matches recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	partners := slices.SortedFunc(maps.Keys(matches), func(a, b domain.MemberID) int {
		if c := matches[b].Compare(matches[a]); c != 0 {
			return c
		}
		return strings.Compare(string(a), string(b))
	})
	for _, partner := range partners {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			s.detail.Render(string(partner)),
			" ",
			s.meta.Render(formatAgo(matches[partner], now)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func rosterView(roster application.ChannelRoster, now time.Time, s styles) string {
	lines := []string{
		s.title.Render("Channel members"),
		s.header.Render(fmt.Sprintf("channel: %s · active: %d · paused: %d",
			roster.Channel, len(roster.Active), len(roster.Paused))),
	}

	active := make([]string, 0, len(roster.Active))
	for _, member := range roster.Active {
		active = append(active, string(member.MemberID()))
	}
	if len(active) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("Nobody active.")))
	} else {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.group.Render("Active"),
			s.detail.Render(formatList(active)),
		)))
	}

	if len(roster.Paused) > 0 {
		paused := []string{s.group.Render("Paused")}
		for _, member := range roster.Paused {
			paused = append(paused, lipgloss.JoinHorizontal(lipgloss.Top,
				s.detail.Render(string(member.Member.MemberID())),
				" ",
				s.meta.Render(formatUntil(member.Until, now)),
			))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, paused...)))
	}

	if len(roster.Schedule) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No scheduled matches.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}
	scheduled := []string{s.group.Render("Scheduled")}
	for _, next := range roster.Schedule {
		scheduled = append(scheduled, scheduleLine(next, now, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, scheduled...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formatUntil(until, now time.Time) string {
	if !now.IsZero() && !until.After(now) {
		return "back at the next match"
	}
	return "paused until " + until.Format("15:04 on 02 Jan")
}

// formatList joins items as "a, b and c".
func formatList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func weekdayLabel(weekday int) string {
	// Tasks count from Monday.
	return time.Weekday((weekday + 1) % 7).String()
}

func formatNextRelative(next, now time.Time) string {
	if now.IsZero() {
		return "next " + next.Format("15:04 on 02 Jan")
	}

	remaining := next.Sub(now)
	if remaining < 24*time.Hour {
		hours := max(int(math.Ceil(remaining.Hours())), 1)
		return fmt.Sprintf("next in %d %s (%s)", hours, plural(hours, "hour"), next.Format("15:04"))
	}

	days := max(int(math.Ceil(remaining.Hours()/24)), 1)
	return fmt.Sprintf("next in %d %s (%s)", days, plural(days, "day"), next.Format("15:04 on 02 Jan"))
}

func formatAgo(at, now time.Time) string {
	if now.IsZero() || at.After(now) {
		return at.Format("02 Jan 2006 15:04")
	}

	days := int(now.Sub(at).Hours() / 24)
	switch days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from 240 (faded) to 255 (bright white).
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

// nextRunColor brightens as a run approaches, over one week.
func nextRunColor(next, now time.Time) lipgloss.Color {
	if now.IsZero() || next.Before(now) {
		return lipgloss.Color("255")
	}

	week := (7 * 24 * time.Hour).Seconds()
	return interpolateColor(week-next.Sub(now).Seconds(), 0, week)
}

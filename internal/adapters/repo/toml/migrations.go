package toml

import (
	"fmt"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/ports"
)

// Raw document keys. Some only exist in old versions.
const (
	keyVersion      = "version"
	keyUsers        = "users"
	keyMatches      = "matches"
	keyChannels     = "channels"
	keyTasks        = "tasks"
	keyMatchTasks   = "match_tasks"
	keyReactivateAt = "reactivate_at"
	keyWeekday      = "weekday"
	keyHour         = "hour"

	legacyKeyMatchees   = "matchees"
	legacyKeyHistory    = "history"
	legacyKeyReactivate = "reactivate"
	legacyKeyWeekdays   = "weekdays"
	legacyKeyHours      = "hours"
)

const legacyTimestampLayout = "Mon Jan _2 15:04:05 2006"

type migration func(raw map[string]any) error

// stateMigrations[i] upgrades a raw document from version i to i+1.
// Entries are never removed or reordered.
var stateMigrations = []migration{
	migrateRenameMatchees,
	migrateTimestampFormat,
	migrateAddTasks,
	migrateDropHistory,
	migrateSnakeCaseFields,
}

func init() {
	if len(stateMigrations) != domain.CurrentStateVersion {
		panic(fmt.Sprintf("state migrations cover %d versions, current version is %d",
			len(stateMigrations), domain.CurrentStateVersion))
	}
}

// migrate upgrades raw in place and reports whether any step ran.
func migrate(raw map[string]any, logger ports.Logger) (bool, error) {
	version, err := rawVersion(raw)
	if err != nil {
		return false, err
	}
	if version > domain.CurrentStateVersion {
		return false, fmt.Errorf("unsupported state schema version %d (current %d): %w",
			version, domain.CurrentStateVersion, domain.ErrSchemaValidation)
	}

	for v := version; v < domain.CurrentStateVersion; v++ {
		logger.Info("migrating state document", "from", v, "to", v+1)
		if err := stateMigrations[v](raw); err != nil {
			return false, fmt.Errorf("migrate state v%d to v%d: %w", v, v+1, err)
		}
		raw[keyVersion] = int64(v + 1)
	}

	return version < domain.CurrentStateVersion, nil
}

func rawVersion(raw map[string]any) (int, error) {
	value, ok := raw[keyVersion]
	if !ok {
		return 0, nil
	}

	switch v := value.(type) {
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("negative state version %d: %w", v, domain.ErrSchemaValidation)
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("state version has type %T: %w", value, domain.ErrSchemaValidation)
	}
}

func migrateRenameMatchees(raw map[string]any) error {
	if matchees, ok := raw[legacyKeyMatchees]; ok {
		raw[keyUsers] = matchees
		delete(raw, legacyKeyMatchees)
	}
	if _, ok := raw[keyUsers]; !ok {
		raw[keyUsers] = map[string]any{}
	}
	return nil
}

func migrateTimestampFormat(raw map[string]any) error {
	if history, ok := raw[legacyKeyHistory]; ok {
		table, err := asTable(history, legacyKeyHistory)
		if err != nil {
			return err
		}
		converted := make(map[string]any, len(table))
		for ts, entry := range table {
			newTS, err := convertLegacyTimestamp(ts)
			if err != nil {
				return err
			}
			converted[newTS] = entry
		}
		raw[legacyKeyHistory] = converted
	}

	return eachUser(raw, func(id string, user map[string]any) error {
		if matches, ok := user[keyMatches]; ok {
			table, err := asTable(matches, "users."+id+".matches")
			if err != nil {
				return err
			}
			for other, ts := range table {
				converted, err := convertLegacyValue(ts)
				if err != nil {
					return fmt.Errorf("user %s match with %s: %w", id, other, err)
				}
				table[other] = converted
			}
		}

		return eachChannel(id, user, func(channelID string, channel map[string]any) error {
			ts, ok := channel[legacyKeyReactivate]
			if !ok {
				return nil
			}
			if s, isString := ts.(string); isString && s == "" {
				delete(channel, legacyKeyReactivate)
				return nil
			}
			converted, err := convertLegacyValue(ts)
			if err != nil {
				return fmt.Errorf("user %s channel %s: %w", id, channelID, err)
			}
			channel[legacyKeyReactivate] = converted
			return nil
		})
	})
}

func migrateAddTasks(raw map[string]any) error {
	raw[keyTasks] = map[string]any{}
	return nil
}

func migrateDropHistory(raw map[string]any) error {
	delete(raw, legacyKeyHistory)
	return nil
}

func migrateSnakeCaseFields(raw map[string]any) error {
	err := eachUser(raw, func(id string, user map[string]any) error {
		return eachChannel(id, user, func(_ string, channel map[string]any) error {
			renameKey(channel, legacyKeyReactivate, keyReactivateAt)
			return nil
		})
	})
	if err != nil {
		return err
	}

	tasksValue, ok := raw[keyTasks]
	if !ok {
		raw[keyTasks] = map[string]any{}
		return nil
	}
	tasks, err := asTable(tasksValue, keyTasks)
	if err != nil {
		return err
	}
	for channelID, value := range tasks {
		channel, err := asTable(value, "tasks."+channelID)
		if err != nil {
			return err
		}
		list, ok := channel[keyMatchTasks]
		if !ok {
			continue
		}
		entries, ok := list.([]any)
		if !ok {
			return fmt.Errorf("tasks.%s.match_tasks has type %T: %w", channelID, list, domain.ErrMigrationFailure)
		}
		for i, entry := range entries {
			task, err := asTable(entry, fmt.Sprintf("tasks.%s.match_tasks[%d]", channelID, i))
			if err != nil {
				return err
			}
			renameKey(task, legacyKeyWeekdays, keyWeekday)
			renameKey(task, legacyKeyHours, keyHour)
		}
	}

	return nil
}

func eachUser(raw map[string]any, fn func(id string, user map[string]any) error) error {
	usersValue, ok := raw[keyUsers]
	if !ok {
		return nil
	}
	users, err := asTable(usersValue, keyUsers)
	if err != nil {
		return err
	}
	for id, value := range users {
		user, err := asTable(value, "users."+id)
		if err != nil {
			return err
		}
		if err := fn(id, user); err != nil {
			return err
		}
	}
	return nil
}

func eachChannel(userID string, user map[string]any, fn func(id string, channel map[string]any) error) error {
	channelsValue, ok := user[keyChannels]
	if !ok {
		return nil
	}
	channels, err := asTable(channelsValue, "users."+userID+".channels")
	if err != nil {
		return err
	}
	for id, value := range channels {
		channel, err := asTable(value, "users."+userID+".channels."+id)
		if err != nil {
			return err
		}
		if err := fn(id, channel); err != nil {
			return err
		}
	}
	return nil
}

func asTable(value any, path string) (map[string]any, error) {
	table, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s has type %T, want table: %w", path, value, domain.ErrMigrationFailure)
	}
	return table, nil
}

func renameKey(table map[string]any, from, to string) {
	value, ok := table[from]
	if !ok {
		return
	}
	table[to] = value
	delete(table, from)
}

func convertLegacyValue(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("timestamp has type %T: %w", value, domain.ErrMigrationFailure)
	}
	return convertLegacyTimestamp(s)
}

func convertLegacyTimestamp(ts string) (string, error) {
	parsed, err := time.Parse(legacyTimestampLayout, ts)
	if err != nil {
		return "", fmt.Errorf("parse legacy timestamp %q: %w: %w", ts, domain.ErrMigrationFailure, err)
	}
	return domain.FormatTimestamp(parsed), nil
}

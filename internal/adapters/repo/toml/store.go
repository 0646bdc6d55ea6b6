package toml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/logging"
	"github.com/bnema/matchy/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	StatePathKey    = "state.path"
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	stateConfigDir  = ".matchy"
	stateConfigFile = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
)

// Store is the transactional state document. The live document is replaced
// wholesale by each successful mutation and written to disk before it becomes
// visible.
type Store struct {
	path   string
	logger ports.Logger

	mu    sync.RWMutex
	state domain.State
}

var _ ports.StateStore = (*Store)(nil)

type Option func(*Store)

func WithLogger(logger ports.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// errUnchanged lets a mutation skip the write when it found nothing to do.
var errUnchanged = errors.New("state unchanged")

// DefaultStatePath is ~/.matchy/state.toml.
func DefaultStatePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, stateConfigDir, stateConfigFile), nil
}

// NewStore loads the document at the path configured under state.path.
func NewStore(ctx context.Context, cfg *viper.Viper, opts ...Option) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	defaultPath, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	cfg.SetDefault(StatePathKey, defaultPath)

	path := cfg.GetString(StatePathKey)
	if path == "" {
		return nil, errors.New("state path is empty")
	}

	return Load(ctx, path, opts...)
}

// Load reads and migrates the document at path. A missing or stale document
// is written back once at the current version.
func Load(ctx context.Context, path string, opts ...Option) (*Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := normalizeStatePath(path)
	if err != nil {
		return nil, err
	}

	s := &Store{path: path, logger: logging.Nop{}}
	for _, opt := range opts {
		opt(s)
	}

	state, dirty, err := s.readState()
	if err != nil {
		return nil, err
	}

	if dirty {
		if err := writeTOMLFile(s.path, toSchema(state)); err != nil {
			return nil, err
		}
		s.logger.Info("state document written", "path", s.path, "version", state.Version)
	}

	s.state = state
	return s, nil
}

func (s *Store) Path() string {
	return s.path
}

// Snapshot returns a deep copy of the live document.
func (s *Store) Snapshot() domain.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// update runs mutate against a copy of the live document. The copy is
// validated and persisted before it replaces the live document; on any error
// neither memory nor disk change.
func (s *Store) update(ctx context.Context, mutate func(*domain.State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.Clone()
	if err := mutate(&draft); err != nil {
		if errors.Is(err, errUnchanged) {
			return nil
		}
		return err
	}

	draft.Normalize()
	if err := draft.Validate(); err != nil {
		return err
	}

	if err := writeTOMLFile(s.path, toSchema(draft)); err != nil {
		return err
	}

	s.state = draft
	return nil
}

// readState returns the typed document and whether it needs writing back.
func (s *Store) readState() (domain.State, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewState(), true, nil
		}
		return domain.State{}, false, fmt.Errorf("read state file: %w: %w", domain.ErrStorageIO, err)
	}

	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return domain.State{}, false, fmt.Errorf("decode state file: %w: %w", domain.ErrSchemaValidation, err)
	}

	migrated, err := migrate(raw, s.logger)
	if err != nil {
		return domain.State{}, false, err
	}

	state, err := decodeState(raw)
	if err != nil {
		return domain.State{}, false, err
	}

	return state, migrated, nil
}

// decodeState converts a fully migrated raw document into the typed model.
// Keys the current schema does not know are rejected.
func decodeState(raw map[string]any) (domain.State, error) {
	data, err := toml.Marshal(raw)
	if err != nil {
		return domain.State{}, fmt.Errorf("re-encode state document: %w: %w", domain.ErrSchemaValidation, err)
	}

	var file stateFileSchema
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return domain.State{}, fmt.Errorf("decode state document: %w: %w", domain.ErrSchemaValidation, err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.State{}, err
	}

	state, err := fromSchema(file)
	if err != nil {
		return domain.State{}, err
	}
	if err := state.Validate(); err != nil {
		return domain.State{}, err
	}

	return state, nil
}

func normalizeStatePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("state path is empty: %w", domain.ErrInvalidArgument)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

package config

import (
	"log/slog"
	"time"

	"github.com/halcyon-editor/halcyon/internal/config/loader"
	"github.com/halcyon-editor/halcyon/internal/config/notify"
	"github.com/halcyon-editor/halcyon/internal/config/watcher"
)

// Service keeps a live configuration snapshot, reloading when the config
// files change. Each reload runs the full load pipeline from scratch and
// publishes the result with one atomic swap; a failed reload keeps the
// previous snapshot and notifies observers of the error.
type Service struct {
	fsys          loader.FileSystem
	globalPath    string
	workspacePath string

	store    *Store
	notifier *notify.Notifier
	watcher  *watcher.Watcher
	logger   *slog.Logger
	debounce time.Duration
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFileSystem overrides the file system used for loads. Watching still
// observes the real file system; this is intended for tests that drive
// Reload directly.
func WithFileSystem(fsys loader.FileSystem) ServiceOption {
	return func(s *Service) {
		s.fsys = fsys
	}
}

// WithReloadDebounce sets the watch debounce window.
func WithReloadDebounce(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.debounce = d
	}
}

// NewService creates a service for the given config paths. workspacePath
// may be empty when not inside a workspace.
func NewService(globalPath, workspacePath string, opts ...ServiceOption) *Service {
	s := &Service{
		fsys:          loader.DefaultFS(),
		globalPath:    globalPath,
		workspacePath: workspacePath,
		notifier:      notify.New(),
		logger:        slog.Default(),
		debounce:      200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start performs the initial load and begins watching the config files.
// The initial load is mandatory: if it fails, Start returns the error and
// the caller decides whether to fall back to Default().
func (s *Service) Start() error {
	cfg, err := LoadWithFS(s.fsys, s.globalPath, s.workspacePath)
	if err != nil {
		return err
	}
	s.store = NewStore(cfg)

	w, err := watcher.New(watcher.WithDebounce(s.debounce))
	if err != nil {
		return err
	}
	s.watcher = w
	w.OnChange(s.handleChange)

	if err := w.Watch(s.globalPath); err != nil {
		s.logger.Warn("cannot watch global config", "path", s.globalPath, "error", err)
	}
	if s.workspacePath != "" {
		if err := w.Watch(s.workspacePath); err != nil {
			s.logger.Warn("cannot watch workspace config", "path", s.workspacePath, "error", err)
		}
	}

	return nil
}

// Config returns the current snapshot.
func (s *Service) Config() *Config {
	return s.store.Config()
}

// Subscribe registers an observer for reload events.
func (s *Service) Subscribe(observer notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(observer)
}

// Reload runs the full pipeline and publishes the result. On failure the
// previous snapshot stays current and the error is both notified and
// returned.
func (s *Service) Reload() error {
	return s.reload("")
}

func (s *Service) reload(triggerPath string) error {
	cfg, err := LoadWithFS(s.fsys, s.globalPath, s.workspacePath)
	if err != nil {
		s.logger.Warn("config reload failed, keeping previous configuration",
			"path", triggerPath, "error", err)
		s.notifier.NotifyError(triggerPath, err)
		return err
	}

	s.store.Swap(cfg)
	s.logger.Info("configuration reloaded", "path", triggerPath)
	s.notifier.NotifyReload(triggerPath)
	return nil
}

func (s *Service) handleChange(event watcher.Event) {
	_ = s.reload(event.Path)
}

// Close stops watching and drops all subscriptions.
func (s *Service) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	s.notifier.Close()
}

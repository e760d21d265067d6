package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/farm"
	"github.com/vovakirdan/tui-farm/internal/loop"
	"github.com/vovakirdan/tui-farm/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.farm/host_key.
	HostKeyPath string

	// DBPath is the path to the journal database.
	DBPath string

	// SaveDir holds one inventory file per SSH user.
	SaveDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Farm is the game configuration every session plays with.
	Farm config.FarmConfig

	// Level is the log level for the server logger.
	Level log.Level
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.farm/journal.db",
		SaveDir:     "~/.farm/saves",
		IdleTimeout: 30 * time.Minute,
		Farm:        config.DefaultFarmConfig(),
		Level:       log.InfoLevel,
	}
}

// farmSession is the live farm of one connected user.
type farmSession struct {
	runtime *Runtime
	game    *farm.Game
}

// SSHServer wraps a Wish SSH server for the farm.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu     sync.Mutex
	active map[string]*farmSession // Keyed by sanitised user, the save file name
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "farm-ssh",
		Level:           cfg.Level,
	})

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open journal database", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
		active: make(map[string]*farmSession),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".farm", "host_key")
	}
	hostKeyPath = config.ExpandHome(hostKeyPath)

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	// The last middleware runs first: log, then claim the user's farm,
	// then run the game.
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.claimMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// SavePathFor returns the inventory file used for an SSH user.
func (s *SSHServer) SavePathFor(user string) string {
	return filepath.Join(config.ExpandHome(s.config.SaveDir), sanitizeUser(user)+".txt")
}

// sanitizeUser makes a user name safe to use as a file name.
func sanitizeUser(user string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, user)
	clean = strings.Trim(clean, ".")
	if clean == "" {
		return "anonymous"
	}
	return clean
}

// claim reserves the user's farm. Only one session may play a farm at once.
// Users whose names map to the same save file share one claim.
func (s *SSHServer) claim(user string) (*farmSession, bool) {
	user = sanitizeUser(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.active[user]; busy {
		return nil, false
	}
	fs := &farmSession{}
	s.active[user] = fs
	return fs, true
}

func (s *SSHServer) release(user string) *farmSession {
	user = sanitizeUser(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	fs := s.active[user]
	delete(s.active, user)
	return fs
}

func (s *SSHServer) session(user string) *farmSession {
	user = sanitizeUser(user)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[user]
}

// claimMiddleware holds the user's farm for the length of the session and
// saves it once the game has stopped.
func (s *SSHServer) claimMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		user := sshSession.User()
		if _, ok := s.claim(user); !ok {
			s.logger.Warn("farm already in use", "user", user)
			wish.Fatalln(sshSession, "Your farm is already open in another session.")
			return
		}

		next(sshSession)

		if fs := s.release(user); fs != nil && fs.game != nil {
			//nolint:errcheck // Failures are logged by the runtime
			fs.runtime.Close(fs.game, time.Now())
		}
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	user := sshSession.User()
	rt := NewRuntime(RuntimeOptions{
		SavePath: s.SavePathFor(user),
		Store:    s.store,
		Player:   user,
		Logger:   s.logger.With("user", user),
	})
	model := NewModel(ModelOptions{
		Config:  s.config.Farm,
		Runtime: rt,
		Clock:   loop.SystemClock{},
		Width:   pty.Window.Width,
		Height:  pty.Window.Height,
	})

	if fs := s.session(user); fs != nil {
		fs.runtime = rt
		fs.game = model.Game()
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)

	if s.store != nil {
		s.store.Close()
	}

	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

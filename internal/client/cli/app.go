package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/smartfridge/internal/client/api"
	"github.com/dmitrijs2005/smartfridge/internal/client/config"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Client is the server API the commands use.
type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*api.SessionInfo, error)
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	LoggedIn() bool
}

type App struct {
	config   *config.Config
	client   Client
	reader   *bufio.Reader
	out      io.Writer
	userName string

	mu   sync.Mutex
	mode Mode
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerURL, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

func (a *App) getStatus() string {
	a.mu.Lock()
	mode := a.mode
	a.mu.Unlock()

	s := ""
	if a.isLoggedIn() && a.userName != "" {
		s = a.userName + " "
	}
	s += string(mode)
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// checkOnline pings the server once and updates the mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	defer cancel()
	if err := a.client.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Run starts the REPL on stdin. On exit an active session is logged out.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to SmartFridge CLI (type 'help' for commands)")

	a.checkOnline(ctx)
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))

	if a.isLoggedIn() {
		_ = a.Logout(ctx)
	}
}

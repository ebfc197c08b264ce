package app

import (
	"bearer-auth-api/internal/app/config"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/oklog/run"
	log "github.com/sirupsen/logrus"
)

type MultiHTTPServer struct {
	cfg          config.HttpServerConfig
	handler      http.Handler
	tcp          *http.Server
	tcpListener  net.Listener
	unix         *http.Server
	unixListener net.Listener
}

func NewMultiHTTPServer(cfg config.HttpServerConfig, handler http.Handler) (*MultiHTTPServer, error) {
	s := &MultiHTTPServer{
		cfg:     cfg,
		handler: handler,
	}
	if cfg.ListenAddress != "" {
		if err := s.initTCP(); err != nil {
			return nil, err
		}
	}
	if cfg.UnixSocketPath != "" {
		if err := s.initUnix(); err != nil {
			s.closeListeners()
			return nil, err
		}
	}
	if s.tcp == nil && s.unix == nil {
		return nil, fmt.Errorf("no listeners configured")
	}
	return s, nil
}

func newHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
	}
}

func (s *MultiHTTPServer) initTCP() error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen tcp %s: %w", s.cfg.ListenAddress, err)
	}
	s.tcpListener = ln
	s.tcp = newHTTPServer(s.handler)
	return nil
}

func (s *MultiHTTPServer) initUnix() error {
	p := s.cfg.UnixSocketPath

	if err := os.MkdirAll(filepath.Dir(p), 0o775); err != nil {
		return fmt.Errorf("failed to mkdir %s: %w", filepath.Dir(p), err)
	}

	// Remove stale socket if present.
	_ = os.Remove(p)

	ua := &net.UnixAddr{Name: p, Net: "unix"}
	ln, err := net.ListenUnix("unix", ua)
	if err != nil {
		return fmt.Errorf("failed to listen unix %s: %w", p, err)
	}
	ln.SetUnlinkOnClose(true)

	if err := os.Chmod(p, 0o660); err != nil {
		_ = ln.Close()
		_ = os.Remove(p)
		return fmt.Errorf("failed to chmod %s: %w", p, err)
	}

	if fi, err := os.Lstat(p); err != nil {
		_ = ln.Close()
		return fmt.Errorf("failed to stat %s (was it removed by something?): %w", p, err)
	} else if fi.Mode()&os.ModeSocket == 0 {
		_ = ln.Close()
		return fmt.Errorf("%s exists but is not a socket (mode=%v)", p, fi.Mode())
	}

	s.unixListener = ln
	s.unix = newHTTPServer(s.handler)
	return nil
}

// Addr returns the bound TCP address, or nil without a TCP listener.
func (s *MultiHTTPServer) Addr() net.Addr {
	if s.tcpListener == nil {
		return nil
	}
	return s.tcpListener.Addr()
}

// Run serves on every listener until ctx is done, SIGINT/SIGTERM arrives or a
// listener fails, then shuts all of them down.
func (s *MultiHTTPServer) Run(ctx context.Context) error {
	log.Infof("Starting HTTP server '%s'", s.cfg.Banner)
	var g run.Group

	if s.tcp != nil {
		g.Add(func() error {
			log.Infof("listening on TCP %s", s.tcpListener.Addr())
			return serve("tcp", s.tcp, s.tcpListener)
		}, func(error) {
			shutdown("TCP", s.tcp)
		})
	}
	if s.unix != nil {
		g.Add(func() error {
			log.Infof("listening on Unix socket %s", s.cfg.UnixSocketPath)
			return serve("unix", s.unix, s.unixListener)
		}, func(error) {
			shutdown("Unix", s.unix)
			_ = os.Remove(s.cfg.UnixSocketPath)
		})
	}
	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	err := g.Run()
	log.Infof("Shutdown HTTP server '%s'", s.cfg.Banner)

	var sig run.SignalError
	if errors.As(err, &sig) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func serve(name string, srv *http.Server, ln net.Listener) error {
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func shutdown(name string, srv *http.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warnf("%s shutdown error", name)
		return
	}
	log.Infof("%s connection was gracefully shut down", name)
}

func (s *MultiHTTPServer) closeListeners() {
	if s.tcpListener != nil {
		_ = s.tcpListener.Close()
	}
	if s.unixListener != nil {
		_ = s.unixListener.Close()
	}
}

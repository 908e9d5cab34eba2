package cli

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kartoza/kinetics-lab/internal/server"
	"github.com/spf13/cobra"
	webview "github.com/webview/webview_go"
	"go.uber.org/zap"
)

type serveOptions struct {
	port     int
	headless bool
}

func addServeFlags(cmd *cobra.Command, o *serveOptions) {
	cmd.Flags().IntVarP(&o.port, "port", "p", 8080, "HTTP server port")
	cmd.Flags().BoolVar(&o.headless, "headless", false, "Run in headless mode (no GUI window)")
}

func newServeCommand(g *globalOptions) *cobra.Command {
	o := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the app server and open its window",
		Long: `Start the local app server.

Examples:
  kinetics-lab serve                      # Open the app window on port 8080
  kinetics-lab serve --headless -p 3000   # Serve only, on port 3000
  kinetics-lab serve --catalog lab.yaml   # Use a custom reaction catalog`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, g, o)
		},
	}
	addServeFlags(cmd, o)
	return cmd
}

func runServe(cmd *cobra.Command, g *globalOptions, o *serveOptions) error {
	cfg, err := resolveConfig(cmd, g)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = o.port
	}
	if cmd.Flags().Changed("headless") {
		cfg.Headless = o.headless
	}

	cfg, logger, cat, err := load(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	// Find an available port (try up to 10 ports starting from the requested one)
	availablePort, err := findAvailablePort(cfg.Port, 10)
	if err != nil {
		return fmt.Errorf("failed to find available port: %w", err)
	}
	if availablePort != cfg.Port {
		logger.Info("Port in use, using another", zap.Int("requested", cfg.Port), zap.Int("port", availablePort))
	}
	cfg.Port = availablePort

	logger.Info("Kinetics Lab starting",
		zap.String("version", cfg.Version),
		zap.Int("port", cfg.Port),
		zap.String("catalog", cat.Source()),
	)

	srv, err := server.New(cfg, cat, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Start server in background
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	serverURL := fmt.Sprintf("http://localhost:%d", cfg.Port)
	waitForServer(logger, serverURL, 10*time.Second)

	if cfg.Headless {
		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case sig := <-stop:
			logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
			return srv.Stop()
		}
	}

	// GUI mode: open embedded WebView window
	logger.Info("Opening application window")
	w := webview.New(false)
	defer w.Destroy()

	w.SetTitle("Kinetics Lab")
	w.SetSize(1100, 820, webview.HintNone)
	w.Navigate(serverURL)

	// When the server fails or a signal arrives, close the window
	go func() {
		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return
			}
			logger.Error("Server error", zap.Error(err))
		case sig := <-stop:
			logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		}
		w.Dispatch(w.Terminate)
	}()

	// Run blocks until the window is closed
	w.Run()

	logger.Info("Window closed, shutting down server")
	return srv.Stop()
}

// waitForServer polls until the server is accepting connections
func waitForServer(logger *zap.Logger, url string, timeout time.Duration) {
	addr := url[len("http://"):]
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 500*time.Millisecond)
		if err == nil {
			conn.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
	logger.Warn("Server may not be ready", zap.String("url", url))
}

// findAvailablePort finds an available port, starting from the given port.
// If the port is in use, it tries subsequent ports up to maxAttempts times.
func findAvailablePort(startPort int, maxAttempts int) (int, error) {
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		addr := fmt.Sprintf(":%d", port)
		listener, err := net.Listen("tcp", addr)
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port found after %d attempts starting from %d", maxAttempts, startPort)
}

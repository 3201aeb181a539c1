package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solanki.dev/portfolio/internal/config"
	"solanki.dev/portfolio/internal/contact"
	"solanki.dev/portfolio/internal/content"
	"solanki.dev/portfolio/internal/handlers"
	"solanki.dev/portfolio/internal/httpserver"
	"solanki.dev/portfolio/internal/metrics"
	"solanki.dev/portfolio/internal/observability"
	"solanki.dev/portfolio/internal/route"
	"solanki.dev/portfolio/internal/view"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "web",
		Short:         "Portfolio web server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(serveCmd(), routesCmd())
	return cmd
}

type serveOptions struct {
	addr         string
	templatesDir string
	publicDir    string
	contentDir   string
	dev          bool
}

func serveCmd() *cobra.Command {
	var opts serveOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			addr := opts.apply(&cfg, cmd)

			logger, err := observability.NewLogger(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, addr, logger)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :$PORTFOLIO_WEB_PORT)")
	cmd.Flags().StringVar(&opts.templatesDir, "templates", "", "read templates from this directory instead of the embedded copy")
	cmd.Flags().StringVar(&opts.publicDir, "public", "", "serve /assets from this directory instead of the embedded copy")
	cmd.Flags().StringVar(&opts.contentDir, "content", "", "read content YAML from this directory instead of the embedded copy")
	cmd.Flags().BoolVar(&opts.dev, "dev", false, "reparse templates per request and disable asset caching")
	return cmd
}

// apply lets explicitly set flags override the environment and returns the listen address.
func (o serveOptions) apply(cfg *config.Config, cmd *cobra.Command) string {
	flags := cmd.Flags()
	if flags.Changed("templates") {
		cfg.Content.TemplatesDir = o.templatesDir
	}
	if flags.Changed("public") {
		cfg.Content.PublicDir = o.publicDir
	}
	if flags.Changed("content") {
		cfg.Content.DataDir = o.contentDir
	}
	if flags.Changed("dev") {
		cfg.Dev = o.dev
	}
	if flags.Changed("addr") && o.addr != "" {
		return o.addr
	}
	return cfg.Server.Addr()
}

// newServer loads content and templates and assembles the HTTP server.
func newServer(cfg config.Config, addr string, logger *zap.Logger) (*http.Server, error) {
	site, err := content.LoadDir(cfg.Content.DataDir)
	if err != nil {
		return nil, err
	}
	renderer, err := view.New(dirFS(cfg.Content.TemplatesDir), cfg.Dev)
	if err != nil {
		return nil, err
	}
	rec := metrics.New()
	h, err := handlers.New(handlers.Dependencies{
		Content:  site,
		Renderer: renderer,
		Contact:  contact.NewSimulator(contact.WithDelay(cfg.Contact.Delay)),
		Metrics:  rec,
		BaseURL:  cfg.Site.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	return httpserver.New(httpserver.Config{
		Address:      addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Logger:       logger,
		Handlers:     h,
		Metrics:      rec,
		Static:       dirFS(cfg.Content.PublicDir),
		Dev:          cfg.Dev,
	})
}

// serve runs the server until ctx is done, then shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, addr string, logger *zap.Logger) error {
	srv, err := newServer(cfg, addr, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	logger.Info("web listening", zap.String("addr", addr), zap.Bool("dev", cfg.Dev))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("web stopped")
	return nil
}

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout(), route.NewTable())
		},
	}
}

func printRoutes(out io.Writer, table *route.Table) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tPATH\tPAGE")
	for _, rt := range table.Routes() {
		fmt.Fprintf(tw, "GET\t%s\t%s\n", rt.Path, rt.Page.Name())
	}
	fmt.Fprintf(tw, "POST\t%s\t%s\n", route.Contact.Path(), route.Contact.Name())
	fmt.Fprintln(tw, "*\t*\tredirect 301 /")
	return tw.Flush()
}

func dirFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

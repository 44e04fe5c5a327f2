package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/calculation"
	"github.com/rgehrsitz/lifegrid/internal/domain"
	"github.com/rgehrsitz/lifegrid/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [profile-file]",
		Short: "Serve the life grid over HTTP",
		Long: "Serve the grid as HTML, SVG, CSV, JSON and an iCalendar milestone feed.\n" +
			"The grid is recomputed on the --refresh schedule so today keeps moving.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			host, _ := cmd.Flags().GetString("host")
			schedule, _ := cmd.Flags().GetString("refresh")
			if err := server.ValidateSchedule(schedule); err != nil {
				return err
			}

			clock, err := clockFromFlags(cmd)
			if err != nil {
				return err
			}
			profile, err := resolveProfile(cmd, args, clock, false)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cmd, clock, net.JoinHostPort(host, strconv.Itoa(port)), schedule, profile)
		},
	}
	addProfileFlags(cmd)
	cmd.Flags().Int("port", 8080, "Port to listen on")
	cmd.Flags().String("host", "", "Interface to bind (default all)")
	cmd.Flags().String("refresh", server.DefaultSchedule, "Cron schedule for recomputing the grid")
	return cmd
}

// serve runs the HTTP server and the refresher until ctx is cancelled or
// either of them fails.
func serve(ctx context.Context, cmd *cobra.Command, clock calculation.Clock, addr, schedule string, profile domain.Profile) error {
	debug, _ := cmd.Flags().GetBool("debug")
	logger := stderrLogger(debug)
	engine := newEngine(cmd, clock)

	srv := server.NewRenderServer(addr)
	srv.Logger = logger

	refresher := server.NewRefresher(engine, profile, srv)
	refresher.Schedule = schedule
	refresher.Logger = logger

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	refreshErr := make(chan error, 1)
	go func() {
		refreshErr <- refresher.Start(ctx)
	}()

	if next, err := refresher.Next(time.Now()); err == nil {
		logger.Infof("next refresh at %s", next.Format(time.RFC3339))
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(ctx)
	}()

	// Whichever side stops first takes the other down with it.
	var err error
	select {
	case err = <-serverErr:
		cancel()
		if rerr := <-refreshErr; err == nil {
			err = rerr
		}
	case err = <-refreshErr:
		if err != nil {
			logger.Errorf("refresher: %v", err)
		}
		cancel()
		if serr := <-serverErr; err == nil {
			err = serr
		}
	}
	if err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

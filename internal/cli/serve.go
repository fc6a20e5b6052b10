package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/emiliopalmerini/housefit/internal/pipeline"
	"github.com/emiliopalmerini/housefit/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Train once and serve the report",
	Long: `Train the model once, then serve the HTML report, both plots and the
training history as JSON.

Examples:
  housefit serve              # Start on default port 8080
  housefit serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var (
	serveFlags runFlags
	servePort  int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveFlags.register(serveCmd.Flags())
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext(cmd.Context())
	defer stop()

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close(context.Background()) }()

	p := pipeline.New(app.Loader(serveFlags.hyper.Label), serveFlags.hyper, serveFlags.rand(), app.Metrics)
	a, err := p.Run(ctx)
	if err != nil {
		return err
	}
	printDiagnostics(a)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			fmt.Println("\nShutting down...")
		}
		return nil
	})
	g.Go(func() error {
		return web.NewServer(fmt.Sprintf(":%d", servePort), a).Start(gctx)
	})
	return g.Wait()
}

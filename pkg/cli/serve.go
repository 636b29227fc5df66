package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/cli/config"
	httpctrl "github.com/secmon-lab/themis/pkg/controller/http"
	"github.com/secmon-lab/themis/pkg/repository/memory"
	"github.com/secmon-lab/themis/pkg/usecase"
	"github.com/secmon-lab/themis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var seedCfg config.Seed

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("THEMIS_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, seedCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			seed, err := seedCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load seed data")
			}

			repo := memory.New()
			if err := applySeed(ctx, repo, seed); err != nil {
				return goerr.Wrap(err, "failed to apply seed data")
			}

			uc := usecase.New(repo)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr,
					"templates", len(seed.Templates),
					"rules", len(seed.Rules),
					"cases", len(seed.Cases),
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// applySeed loads validated seed data into the repository. Rules are created
// in reverse file order because the rule store prepends on create, so the
// file order ends up as the evaluation order.
func applySeed(ctx context.Context, repo *memory.Memory, seed *config.SeedData) error {
	for _, tpl := range seed.Templates {
		if _, err := repo.Template().Put(ctx, tpl); err != nil {
			return goerr.Wrap(err, "failed to seed template", goerr.V("id", tpl.ID))
		}
	}

	for i := len(seed.Rules) - 1; i >= 0; i-- {
		if _, err := repo.Rule().Create(ctx, seed.Rules[i]); err != nil {
			return goerr.Wrap(err, "failed to seed rule", goerr.V("name", seed.Rules[i].Name))
		}
	}

	for _, c := range seed.Cases {
		if _, err := repo.Case().Put(ctx, c); err != nil {
			return goerr.Wrap(err, "failed to seed case", goerr.V("id", c.ID))
		}
	}

	return nil
}

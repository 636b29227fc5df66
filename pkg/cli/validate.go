package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/themis/pkg/cli/config"
	"github.com/secmon-lab/themis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var seedCfg config.Seed

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate seed data files",
		Flags:   seedCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			seed, err := seedCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "seed validation failed")
			}

			logger.Info("Seed validation passed",
				"template_count", len(seed.Templates),
				"rule_count", len(seed.Rules),
				"case_count", len(seed.Cases),
			)
			for _, tpl := range seed.Templates {
				logger.Info("Template validated",
					"id", tpl.ID,
					"name", tpl.Name,
					"step_count", len(tpl.Steps),
				)
			}
			for _, rule := range seed.Rules {
				logger.Info("Rule validated",
					"name", rule.Name,
					"fact_key", rule.If.FactKey,
					"target", rule.Then.Status,
				)
			}

			return nil
		},
	}
}

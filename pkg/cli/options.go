/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/astfn/as-enum/pkg/enum"
)

func optionsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "options",
		EnableShellCompletion: true,
		Usage:                 "Generate the option list of an enum preset",
		Description: `Generate one record per preset entry, in preset order:

  {label: <label>, value: <value>, ...extra}

The field names default to "label" and "value" and can be renamed with
--label-alias and --value-alias. Extra fields win on name collisions.`,
		Flags: commonFlags(
			&cli.StringFlag{
				Name:  "label-alias",
				Usage: "Field name for labels",
				Value: enum.DefaultLabelAlias,
			},
			&cli.StringFlag{
				Name:  "value-alias",
				Usage: "Field name for values",
				Value: enum.DefaultValueAlias,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			item, err := loadItem(ctx, cmd)
			if err != nil {
				return err
			}

			doc := item.Options(version,
				enum.WithLabelAlias(cmd.String("label-alias")),
				enum.WithValueAlias(cmd.String("value-alias")),
			)
			return writeOutput(ctx, cmd, format, doc)
		},
	}
}

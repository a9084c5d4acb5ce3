/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func describeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "describe",
		EnableShellCompletion: true,
		Usage:                 "Print keys, values, labels and resolved entries of a preset",
		Flags:                 commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			item, err := loadItem(ctx, cmd)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, format, item.Describe(version))
		},
	}
}

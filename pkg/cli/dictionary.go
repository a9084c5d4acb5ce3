/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func dictionaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "dictionary",
		Aliases:               []string{"dic"},
		EnableShellCompletion: true,
		Usage:                 "Print the direct-access dictionary of a preset",
		Description: `Print {value, label, ...extra} for every entry whose key is a string or a
number, keyed by the key's text. Other keys are left out.`,
		Flags: commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			item, err := loadItem(ctx, cmd)
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, format, item.Dictionary(version))
		},
	}
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/astfn/as-enum/pkg/catalog"
)

func lookupCmd() *cli.Command {
	return &cli.Command{
		Name:                  "lookup",
		EnableShellCompletion: true,
		Usage:                 "Look up an entry by key or by value",
		Description: `Resolve exactly one of --key or --value against the preset.

The argument is text, so it is matched as the raw string first, then as an
integer, a float and a bool. A value lookup returns the first entry whose
value matches; entries without a value use their key.`,
		Flags: commonFlags(
			&cli.StringFlag{
				Name:  "key",
				Usage: "Key to look up",
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Value to look up",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			hasKey, hasValue := cmd.IsSet("key"), cmd.IsSet("value")
			if hasKey == hasValue {
				return fmt.Errorf("exactly one of --key or --value is required")
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			item, err := loadItem(ctx, cmd)
			if err != nil {
				return err
			}

			var result *catalog.LookupResult
			if hasKey {
				result, err = item.LookupKey(cmd.String("key"), version)
			} else {
				result, err = item.LookupValue(cmd.String("value"), version)
			}
			if err != nil {
				return err
			}

			return writeOutput(ctx, cmd, format, result)
		},
	}
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/astfn/as-enum/pkg/header"
	"github.com/astfn/as-enum/pkg/preset"
)

func publishCmd() *cli.Command {
	return &cli.Command{
		Name:                  "publish",
		EnableShellCompletion: true,
		Usage:                 "Write the resolved preset to a file, ConfigMap or OCI registry",
		Description: `Loads a preset, resolves every entry and writes it back as an EnumPreset
document. Label styles are applied, so the published preset needs none.

  asenum publish -f state.yaml -o oci://ghcr.io/org/state:v1
  asenum options -f oci://ghcr.io/org/state:v1`,
		Flags: commonFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			source := strings.TrimSpace(cmd.String("preset"))
			if source == "" {
				return fmt.Errorf("a preset is required: use --preset or set %s", EnvPreset)
			}

			p, err := preset.LoadWithKubeconfig(ctx, source, cmd.String("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to load preset from %q: %w", source, err)
			}

			return writeOutput(ctx, cmd, format, resolvedPreset(p))
		},
	}
}

// resolvedPreset returns p with defaults and label styles applied, keeping
// its description and custom metadata.
func resolvedPreset(p *preset.Preset) *preset.Preset {
	out := preset.FromEnum(p.Name, p.Build())
	out.Description = p.Description
	out.Init(header.KindEnumPreset, header.APIVersionV1, version)
	for k, v := range p.Metadata {
		if _, reserved := out.Metadata[k]; !reserved {
			out.Metadata[k] = v
		}
	}
	return out
}

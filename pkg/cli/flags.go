/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/astfn/as-enum/pkg/catalog"
	"github.com/astfn/as-enum/pkg/preset"
	"github.com/astfn/as-enum/pkg/serializer"
)

// Flags are built per command; urfave flags hold parsed state.

func presetFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "preset",
		Aliases: []string{"f"},
		Usage: `Path/URI of the enum preset.
	Supports: file paths, HTTP/HTTPS URLs, ConfigMap URIs (cm://namespace/name)
	or OCI references (oci://registry/repository:tag).`,
		Sources: cli.EnvVars(EnvPreset),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output destination: file path, ConfigMap URI (cm://namespace/name) or OCI reference (oci://registry/repository:tag) (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig for ConfigMap sources and outputs (default: KUBECONFIG, ~/.kube/config, in-cluster)",
	}
}

func commonFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{presetFlag()}, append(extra, outputFlag(), formatFlag(), kubeconfigFlag())...)
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(strings.ToLower(strings.TrimSpace(cmd.String("format"))))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %v", cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}

// loadItem loads the preset named by --preset.
func loadItem(ctx context.Context, cmd *cli.Command) (*catalog.Item, error) {
	source := strings.TrimSpace(cmd.String("preset"))
	if source == "" {
		return nil, fmt.Errorf("a preset is required: use --preset or set %s", EnvPreset)
	}

	p, err := preset.LoadWithKubeconfig(ctx, source, cmd.String("kubeconfig"))
	if err != nil {
		return nil, fmt.Errorf("failed to load preset from %q: %w", source, err)
	}
	return catalog.ItemFromPreset(p, source), nil
}

// writeOutput serializes v to --output, or to the root command's writer.
func writeOutput(ctx context.Context, cmd *cli.Command, format serializer.Format, v any) error {
	var ser serializer.Serializer
	if out := strings.TrimSpace(cmd.String("output")); out != "" {
		ser = serializer.NewFileWriterOrStdoutWithKubeconfig(format, out, cmd.String("kubeconfig"))
	} else {
		ser = serializer.NewWriter(format, cmd.Root().Writer)
	}

	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, v)
}

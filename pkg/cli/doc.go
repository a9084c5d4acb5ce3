// Package cli implements the asenum command-line interface.
//
// # Overview
//
// asenum loads an enum preset and prints what an application would derive
// from it: option lists for selects, lookups by key or value, a direct-access
// dictionary and a full description. It is meant for checking presets before
// they are served by asenumd or shipped with a UI.
//
// # Commands
//
// options - Generate option records:
//
//	asenum options -f state.yaml [--label-alias text] [--value-alias id]
//
// lookup - Resolve one entry by key or by value:
//
//	asenum lookup -f state.yaml --key 2
//	asenum lookup -f state.yaml --value Active
//
// Keys and values are given as text; they are matched as the raw string, then
// as an integer, a float and a bool.
//
// dictionary (dic) - Print the dictionary of string and number keys:
//
//	asenum dictionary -f state.yaml
//
// describe - Print keys, values, labels and entries:
//
//	asenum describe -f state.yaml -t json
//
// # Flags
//
//	--preset, -f      Preset source (path, URL, cm://namespace/name, oci://registry/repo:tag)
//	--output, -o      Output destination (default: stdout)
//	--format, -t      Output format: yaml, json, table (default: yaml)
//	--kubeconfig, -k  Kubeconfig for ConfigMap sources and destinations
//	--log-level       Logging verbosity (debug, info, warn, error)
//
// publish - Write the resolved preset to a file, ConfigMap or OCI registry:
//
//	asenum publish -f state.yaml -o oci://ghcr.io/org/state:v1
//	asenum options -f oci://ghcr.io/org/state:v1
//
// Every command accepts an oci:// destination. Only published presets can be
// read back with --preset.
//
// # Environment Variables
//
//	ASENUM_PRESET  Default for --preset
//	LOG_LEVEL      Default for --log-level
//	KUBECONFIG     Kubeconfig when --kubeconfig is not set
package cli

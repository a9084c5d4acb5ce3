// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package serializer reads and writes asenum documents.
//
// # Formats
//
// JSON and YAML are supported in both directions. Table output flattens a
// document into sorted FIELD/VALUE rows and is write-only.
//
// # Sources
//
// FromFile loads a document into any type from:
//   - a local path: ./presets/state.yaml
//   - an HTTP(S) URL: https://example.com/presets/state.json
//   - a ConfigMap URI: cm://namespace/name
//   - an OCI reference: oci://ghcr.io/org/presets:v1
//
// The format comes from the extension; paths without a known extension are
// read as YAML. ConfigMaps store the document under "enum.<ext>" next to a
// "format" field. OCI artifacts carry the format in the layer media type.
//
//	p, err := serializer.FromFile[preset.Preset]("cm://ui/state-enum")
//
// # Destinations
//
// NewFileWriterOrStdout picks a file, a ConfigMap (server-side apply), an
// OCI registry or stdout for the given path:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, output)
//	if c, ok := w.(serializer.Closer); ok {
//	    defer c.Close()
//	}
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// HTTP handlers use RespondJSON, which encodes before writing headers so a
// failed encode never yields a partial response.
package serializer

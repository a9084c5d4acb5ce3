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

// Package header provides the common header of asenum documents.
//
// Preset files and every document the CLI or API writes start with the same
// Kubernetes-style fields:
//
//	kind: EnumPreset
//	apiVersion: asenum.dev/v1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//
// Types embed Header inline so the fields sit at the top level:
//
//	type Preset struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Name string   `json:"name" yaml:"name"`
//	}
//
// Build one with functional options:
//
//	h := header.New(
//	    header.WithKind(header.KindEnumOptions),
//	    header.WithAPIVersion(header.APIVersionV1),
//	    header.WithMetadata("enum", "state"),
//	)
//
// or initialize an existing value with Init, which also stamps the current
// time and tool version into Metadata.
package header

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

// Package defaults provides centralized configuration constants for asenum.
//
// This package defines timeout values used across the codebase. Centralizing
// these values ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
//   - Preset timeouts: loading preset documents from files, URLs and ConfigMaps
//   - Handler timeouts: HTTP request processing
//   - Server timeouts: HTTP server configuration
//   - HTTP client timeouts: outbound HTTP requests
//   - ConfigMap timeouts: Kubernetes API calls
//
// # Usage
//
//	import "github.com/astfn/as-enum/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.PresetLoadTimeout)
//	defer cancel()
package defaults

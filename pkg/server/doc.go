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

// Package server provides the HTTP server used by asenumd.
//
// Handlers are registered by pattern and wrapped in a middleware chain:
//
//   - Prometheus RED metrics (asenum_http_*)
//   - API version negotiation via Accept: application/vnd.asenum.v1+json
//   - Request ID propagation (X-Request-Id, UUID)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging at debug level
//
// System endpoints bypass the chain:
//
//	GET /health   liveness, always 200
//	GET /ready    readiness, 503 until the server is listening
//	GET /metrics  Prometheus exposition
//
// A root handler listing the registered routes is added unless one is
// supplied for "/".
//
// # Usage
//
//	s := server.New(
//	    server.WithName("asenumd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/enums": h.List,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run blocks until SIGINT or SIGTERM and shuts down gracefully within
// Config.ShutdownTimeout. PORT and SHUTDOWN_TIMEOUT_SECONDS override the
// defaults.
//
// # Errors
//
// Errors are written as JSON:
//
//	{
//	  "code": "NOT_FOUND",
//	  "message": "enum not found",
//	  "details": {"name": "state"},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps pkg/errors codes to HTTP statuses.
package server

// Package api exposes a catalog of enums over HTTP.
//
// It is a thin layer over pkg/server: Serve configures logging, loads the
// presets listed in ASENUM_PRESETS into a sealed catalog and registers the
// handlers below. Server lifecycle, middleware, health checks and metrics
// live in pkg/server.
//
// # Usage
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/astfn/as-enum/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
//   - GET /v1/enums                      - registered enums with sizes
//   - GET /v1/enums/{name}               - keys, values, labels and entries
//   - GET /v1/enums/{name}/options       - generated options
//   - GET /v1/enums/{name}/dictionary    - dictionary of string and number keys
//   - GET /v1/enums/{name}/lookup        - lookup by ?key= or ?value=
//
// Options accept labelAlias and valueAlias query parameters. Lookup query
// values are text, so they are matched as the raw string first, then as an
// integer, a float and a bool.
//
// Enum names are matched case-insensitively. Unknown names and keys return
// 404 with the standard error body.
//
// # Configuration
//
//   - ASENUM_PRESETS: comma-separated preset sources (paths, http(s) URLs,
//     cm://namespace/name, oci://registry/repository:tag)
//   - PORT: listen port (default 8080)
//   - SHUTDOWN_TIMEOUT_SECONDS: graceful shutdown timeout (default 30)
//   - LOG_LEVEL: debug, info, warn, error
//
// Build metadata is injected with ldflags:
//
//	go build -ldflags "-X github.com/astfn/as-enum/pkg/api.version=1.0.0"
package api

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

package oci

import (
	"fmt"
	"net"
	"strings"

	"github.com/distribution/reference"

	aserrors "github.com/astfn/as-enum/pkg/errors"
)

const (
	// URIScheme prefixes OCI preset sources and destinations
	// (e.g., "oci://ghcr.io/org/presets:v1").
	URIScheme = "oci://"

	// DefaultTag is used when a reference carries no tag.
	DefaultTag = "latest"
)

// Reference is a parsed oci:// URI.
type Reference struct {
	// Registry is the registry host (e.g., "ghcr.io", "localhost:5000").
	Registry string
	// Repository is the repository path (e.g., "org/presets").
	Repository string
	// Tag is the artifact tag, DefaultTag when the URI has none.
	Tag string
}

// IsReference reports whether s uses the oci:// scheme.
func IsReference(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), URIScheme)
}

// ParseReference parses oci://registry/repository[:tag]. Digest references
// are rejected since artifacts are pushed and pulled by tag.
func ParseReference(uri string) (*Reference, error) {
	uri = strings.TrimSpace(uri)
	if !strings.HasPrefix(uri, URIScheme) {
		return nil, aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
			"OCI reference must start with "+URIScheme, map[string]any{"reference": uri})
	}

	named, err := reference.ParseNormalizedNamed(strings.TrimPrefix(uri, URIScheme))
	if err != nil {
		return nil, aserrors.WrapWithContext(aserrors.ErrCodeInvalidRequest, "invalid OCI reference", err,
			map[string]any{"reference": uri})
	}
	if _, ok := named.(reference.Digested); ok {
		return nil, aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
			"digest references are not supported", map[string]any{"reference": uri})
	}

	tag := DefaultTag
	if tagged, ok := named.(reference.Tagged); ok {
		tag = tagged.Tag()
	}

	return &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
		Tag:        tag,
	}, nil
}

// String returns the oci:// form of the reference.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns registry/repository:tag.
func (r *Reference) ImageReference() string {
	return fmt.Sprintf("%s:%s", r.Repo(), r.Tag)
}

// Repo returns registry/repository.
func (r *Reference) Repo() string {
	return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
}

// WithTag returns a copy of the reference with tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}

// IsLocal reports whether the registry runs on the loopback interface,
// where plain HTTP is used.
func (r *Reference) IsLocal() bool {
	host := r.Registry
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

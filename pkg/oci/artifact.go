/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	aserrors "github.com/astfn/as-enum/pkg/errors"
)

const (
	// ArtifactType is the OCI artifact type of asenum documents.
	ArtifactType = "application/vnd.asenum.preset"

	// MediaTypeYAML is the layer media type of YAML documents.
	MediaTypeYAML = "application/vnd.asenum.preset.v1+yaml"

	// MediaTypeJSON is the layer media type of JSON documents.
	MediaTypeJSON = "application/vnd.asenum.preset.v1+json"
)

// Options configures the registry connection.
type Options struct {
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
	// Annotations are added to the pushed manifest.
	Annotations map[string]string
}

// PushResult contains the result of a successful push.
type PushResult struct {
	// Digest is the digest of the pushed manifest.
	Digest string
	// Reference is registry/repository:tag.
	Reference string
}

// Push stores data as a single-layer artifact at ref.
func Push(ctx context.Context, ref *Reference, mediaType string, data []byte, opts Options) (*PushResult, error) {
	repo, err := newRepository(ref, opts)
	if err != nil {
		return nil, err
	}

	desc, err := PushTo(ctx, repo, ref.Tag, mediaType, data, opts.Annotations)
	if err != nil {
		return nil, err
	}

	slog.Debug("pushed artifact",
		"reference", ref.ImageReference(),
		"digest", desc.Digest.String(),
		"size", len(data))

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: ref.ImageReference(),
	}, nil
}

// PushTo packs data into a manifest in a memory store, tags it and copies
// it into dst under tag.
func PushTo(ctx context.Context, dst oras.Target, tag, mediaType string, data []byte, annotations map[string]string) (ociv1.Descriptor, error) {
	if tag == "" {
		return ociv1.Descriptor{}, aserrors.New(aserrors.ErrCodeInvalidRequest, "tag is required to push OCI artifact")
	}
	if !isPresetMediaType(mediaType) {
		return ociv1.Descriptor{}, aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest,
			"unsupported layer media type", map[string]any{"mediaType": mediaType})
	}

	store := memory.New()

	layer, err := oras.PushBytes(ctx, store, mediaType, data)
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to add layer to store: %w", err)
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType, oras.PackManifestOptions{
		Layers:              []ociv1.Descriptor{layer},
		ManifestAnnotations: annotations,
	})
	if err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to pack manifest: %w", err)
	}

	if err := store.Tag(ctx, manifest, tag); err != nil {
		return ociv1.Descriptor{}, fmt.Errorf("failed to tag manifest in local store: %w", err)
	}

	desc, err := oras.Copy(ctx, store, tag, dst, tag, oras.DefaultCopyOptions)
	if err != nil {
		return ociv1.Descriptor{}, aserrors.Wrap(aserrors.ErrCodeUnavailable, "failed to push artifact", err)
	}
	return desc, nil
}

// Pull fetches the document stored at ref and its layer media type.
func Pull(ctx context.Context, ref *Reference, opts Options) ([]byte, string, error) {
	repo, err := newRepository(ref, opts)
	if err != nil {
		return nil, "", err
	}
	return PullFrom(ctx, repo, ref.Tag)
}

// PullFrom resolves tag in src and returns the first preset layer.
func PullFrom(ctx context.Context, src oras.ReadOnlyTarget, tag string) ([]byte, string, error) {
	desc, raw, err := oras.FetchBytes(ctx, src, tag, oras.DefaultFetchBytesOptions)
	if err != nil {
		return nil, "", aserrors.WrapWithContext(aserrors.ErrCodeNotFound, "failed to fetch manifest", err,
			map[string]any{"tag": tag})
	}

	var manifest ociv1.Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return nil, "", fmt.Errorf("failed to decode manifest %s: %w", desc.Digest, err)
	}
	if manifest.ArtifactType != ArtifactType {
		return nil, "", aserrors.NewWithContext(aserrors.ErrCodeInvalidRequest, "not an asenum artifact",
			map[string]any{"tag": tag, "artifactType": manifest.ArtifactType})
	}

	for _, layer := range manifest.Layers {
		if !isPresetMediaType(layer.MediaType) {
			continue
		}
		data, err := content.FetchAll(ctx, src, layer)
		if err != nil {
			return nil, "", fmt.Errorf("failed to fetch layer %s: %w", layer.Digest, err)
		}
		return data, layer.MediaType, nil
	}

	return nil, "", aserrors.NewWithContext(aserrors.ErrCodeNotFound, "artifact has no preset layer",
		map[string]any{"tag": tag, "layers": len(manifest.Layers)})
}

func isPresetMediaType(mediaType string) bool {
	return mediaType == MediaTypeYAML || mediaType == MediaTypeJSON
}

func newRepository(ref *Reference, opts Options) (*remote.Repository, error) {
	repo, err := remote.NewRepository(ref.Repo())
	if err != nil {
		return nil, aserrors.Wrap(aserrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP || ref.IsLocal()
	repo.Client = createAuthClient(repo.PlainHTTP, opts.InsecureTLS)
	return repo, nil
}

// createAuthClient creates an HTTP client with optional TLS configuration
// and Docker credential support.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credentials unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	c := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		c.Credential = credentials.Credential(credStore)
	}
	return c
}

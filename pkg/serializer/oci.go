package serializer

import (
	"context"
	"fmt"
	"log/slog"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/astfn/as-enum/pkg/defaults"
	"github.com/astfn/as-enum/pkg/oci"
)

// AnnotationKind records the document kind on pushed manifests.
const AnnotationKind = "dev.asenum.kind"

// swapped in tests
var (
	pushArtifact = oci.Push
	pullArtifact = oci.Pull
)

// OCIWriter pushes serialized documents to an OCI registry as
// single-layer artifacts.
type OCIWriter struct {
	ref    *oci.Reference
	format Format
	opts   oci.Options
}

// NewOCIWriter creates a writer pushing to ref in the given format.
func NewOCIWriter(ref *oci.Reference, format Format) *OCIWriter {
	return &OCIWriter{
		ref:    ref,
		format: normalizeFormat(format),
	}
}

// Serialize marshals v and pushes it. The document timestamp becomes the
// manifest creation time, so pushing the same document twice yields the
// same digest.
func (w *OCIWriter) Serialize(ctx context.Context, v any) error {
	mediaType, err := mediaTypeForFormat(w.format)
	if err != nil {
		return err
	}

	data, err := Marshal(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kind, version, timestamp := documentInfo(v)

	opts := w.opts
	opts.Annotations = map[string]string{
		ociv1.AnnotationCreated: timestamp,
		ociv1.AnnotationVersion: version,
		ociv1.AnnotationTitle:   w.ref.Repository,
		AnnotationKind:          kind,
	}

	pushCtx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	res, err := pushArtifact(pushCtx, w.ref, mediaType, data, opts)
	if err != nil {
		return fmt.Errorf("failed to push %s: %w", w.ref, err)
	}

	slog.Info("pushed OCI artifact",
		"reference", res.Reference,
		"digest", res.Digest,
		"kind", kind,
		"format", w.format)
	return nil
}

// Close is a no-op; OCIWriter holds no resources.
func (w *OCIWriter) Close() error {
	return nil
}

// fromOCI reads a document pushed by OCIWriter.
func fromOCI[T any](ctx context.Context, uri string) (*T, error) {
	ref, err := oci.ParseReference(uri)
	if err != nil {
		return nil, err
	}

	pullCtx, cancel := context.WithTimeout(ctx, defaults.OCIPullTimeout)
	defer cancel()

	data, mediaType, err := pullArtifact(pullCtx, ref, oci.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to pull %s: %w", ref, err)
	}

	format := FormatYAML
	if mediaType == oci.MediaTypeJSON {
		format = FormatJSON
	}

	slog.Debug("reading from OCI artifact",
		"reference", ref.ImageReference(),
		"mediaType", mediaType,
		"size", len(data))

	result, err := FromBytes[T](format, data)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize %s: %w", ref, err)
	}
	return result, nil
}

func mediaTypeForFormat(format Format) (string, error) {
	switch format {
	case FormatYAML:
		return oci.MediaTypeYAML, nil
	case FormatJSON:
		return oci.MediaTypeJSON, nil
	default:
		return "", fmt.Errorf("format %s cannot be stored as an OCI artifact", format)
	}
}

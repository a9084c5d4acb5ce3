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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/astfn/as-enum/pkg/defaults"
	"github.com/astfn/as-enum/pkg/header"
	"github.com/astfn/as-enum/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
	"k8s.io/utils/ptr"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap sources and destinations.
	ConfigMapURIScheme = "cm://"

	// ConfigMapDataPrefix is the data key stem; the document lives under
	// "enum.<ext>".
	ConfigMapDataPrefix = "enum"

	fieldManager = "asenum"
)

// kubeClient is swapped in tests.
var kubeClient = client.ForKubeconfig

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap using
// server-side apply, creating it when missing.
type ConfigMapWriter struct {
	namespace  string
	name       string
	format     Format
	kubeconfig string
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    normalizeFormat(format),
	}
}

// Serialize writes v to the ConfigMap. The data holds:
//   - enum.{yaml|json|txt}: the serialized document
//   - format: the format used
//   - timestamp: the document timestamp or the current time
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	c, cfg, err := kubeClient(w.kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	content, err := Marshal(w.format, v)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	kind, version, timestamp := documentInfo(v)

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"auth_method", client.AuthMethod(cfg),
		"kind", kind,
		"format", w.format)

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "asenum",
			"app.kubernetes.io/component": kind,
			"app.kubernetes.io/version":   version,
		}).
		WithData(map[string]string{
			dataKey(w.format): string(content),
			"format":          string(w.format),
			"timestamp":       timestamp,
		})

	_, err = c.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, configMap, metav1.ApplyOptions{
		FieldManager: fieldManager,
		Force:        true,
	})
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op; ConfigMapWriter holds no resources.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// fromConfigMap reads the document stored by ConfigMapWriter, or any
// ConfigMap holding an "enum.<ext>" data key.
func fromConfigMap[T any](ctx context.Context, namespace, name, kubeconfig string) (*T, error) {
	c, _, err := kubeClient(kubeconfig)
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := c.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	format := FormatYAML
	if f, ok := cm.Data["format"]; ok && !Format(f).IsUnknown() {
		format = Format(f)
	}

	content, ok := cm.Data[dataKey(format)]
	if !ok {
		found := false
		for _, candidate := range []Format{FormatYAML, FormatJSON} {
			if data, exists := cm.Data[dataKey(candidate)]; exists {
				content, format, found = data, candidate, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("ConfigMap %s/%s has no %s.yaml or %s.json data",
				namespace, name, ConfigMapDataPrefix, ConfigMapDataPrefix)
		}
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"immutable", ptr.Deref(cm.Immutable, false),
		"size", len(content))

	result, err := FromBytes[T](format, []byte(content))
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize ConfigMap %s/%s: %w", namespace, name, err)
	}
	return result, nil
}

func dataKey(format Format) string {
	return fmt.Sprintf("%s.%s", ConfigMapDataPrefix, format.Extension())
}

// documentInfo extracts kind, version and timestamp from documents carrying
// a header, with defaults for everything else.
func documentInfo(v any) (kind, version, timestamp string) {
	kind, version = "document", "unknown"
	timestamp = time.Now().UTC().Format(time.RFC3339)

	h, ok := v.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	})
	if !ok {
		return kind, version, timestamp
	}
	if k := h.GetKind(); k != "" {
		kind = k.String()
	}
	md := h.GetMetadata()
	if s := md["version"]; s != "" {
		version = s
	}
	if s := md["timestamp"]; s != "" {
		timestamp = s
	}
	return kind, version, timestamp
}

// parseConfigMapURI splits cm://namespace/name into its parts.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}

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

// Package client provides the shared Kubernetes client used for ConfigMap
// preset sources and outputs (cm://namespace/name).
//
// GetKubeClient builds one client per process with sync.Once and returns it on
// every call. ForKubeconfig is the entry point for callers that accept an
// optional --kubeconfig flag: an empty path yields the shared client, any other
// path a dedicated one.
//
//	c, cfg, err := client.ForKubeconfig(kubeconfig)
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	slog.Debug("kubernetes client ready", "auth", client.AuthMethod(cfg))
//	cm, err := c.CoreV1().ConfigMaps(ns).Get(ctx, name, metav1.GetOptions{})
//
// Discovery order for an empty path: KUBECONFIG, ~/.kube/config, then the
// in-cluster service account.
package client

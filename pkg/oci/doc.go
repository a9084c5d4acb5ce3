// Package oci stores asenum documents as OCI artifacts.
//
// A document is a single layer of media type MediaTypeYAML or MediaTypeJSON
// under an OCI 1.1 manifest of type ArtifactType. References use the
// oci:// scheme:
//
//	oci://ghcr.io/org/presets:v1
//	oci://localhost:5000/presets/state      (tag "latest", plain HTTP)
//
// Push and Pull talk to a remote registry using Docker credentials.
// PushTo and PullFrom accept any oras target, such as a memory store.
package oci

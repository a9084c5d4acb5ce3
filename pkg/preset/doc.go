// Package preset loads declarative enum presets and builds enums from them.
//
// A preset document carries the common header, a name and an ordered list of
// entries, each either a tuple or a mapping:
//
//	kind: EnumPreset
//	apiVersion: asenum.dev/v1
//	name: state
//	labelStyle: title
//	entries:
//	  - [pending]
//	  - [active, 1, Active, {color: green}]
//	  - key: closed
//	    value: 2
//	    extra: {color: grey}
//
// Load reads a document from a path, an http(s) URL, a cm://namespace/name
// ConfigMap or an oci://registry/repository:tag artifact and validates it. Build turns it into an *enum.Enum.
package preset

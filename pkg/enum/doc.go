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

// Package enum turns an ordered list of preset entries into a queryable
// enumeration.
//
// # Overview
//
// Every entry carries a key, a value, a display label and optional extra
// attributes. Value and label default to the key when omitted. The resulting
// Enum answers lookups in both directions, lists keys/values/labels in preset
// order, produces option records for UI consumption and exposes a dictionary
// for keys of a simple kind (strings and numbers).
//
// # Usage
//
//	states := enum.New(
//	    enum.T("pending"),
//	    enum.T("active", 1, "Active", enum.Extra{"color": "green"}),
//	    enum.Entry{Key: "closed", Value: 2, Extra: enum.Extra{"color": "grey"}},
//	)
//
//	v, _ := states.ValueByKey("active")   // 1
//	k, _ := states.KeyByValue(2)          // "closed"
//	l, _ := states.LabelByKey("pending")  // "pending"
//	rec, _ := states.Get("active")        // {"value": 1, "label": "Active", "color": "green"}
//
//	opts := states.GenOptions(enum.WithLabelAlias("text"))
//	// [{"text": "pending", "value": "pending"}, ...]
//
// # Keys
//
// Keys may be of any type. Comparable keys are matched with ==, so pointer
// keys match by reference. Funcs, maps and slices are matched by identity
// (same underlying pointer). Only string and number keys are reachable
// through Get and Dic.
//
// # Missing entries
//
// Lookups never fail loudly: a miss returns the zero value and false.
// Construction never fails either; duplicate keys silently overwrite the
// earlier entry while keeping its position.
//
// # Concurrency
//
// An Enum is read-only after New, except for the options cache maintained by
// GenOptions, which is guarded by a mutex. A single Enum may be shared across
// goroutines.
package enum

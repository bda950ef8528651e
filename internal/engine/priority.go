// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

// Priority is one of the fixed merge precedence tiers. The set is a small,
// closed, totally ordered enumeration, not a numeric score: providers at a
// higher tier always win over providers at a lower one.
//
// The relative order below is a compatibility contract. An operator's
// environment beats launch parameters, which beat override documents, which
// beat packaged base documents; any change to this order is a breaking
// change and is pinned by tests.
type Priority int

// Priority tiers, lowest to highest.
const (
	// PriorityScanned holds classpath-discovered base documents.
	PriorityScanned Priority = iota

	// PriorityScannedOverride holds classpath-discovered documents whose
	// filename follows the override convention.
	PriorityScannedOverride

	// PriorityLaunchParameters holds values derived from launch-time
	// parameters carrying the external-config prefix.
	PriorityLaunchParameters

	// PriorityEnvironment holds values derived from the process
	// environment carrying the external-config prefix.
	PriorityEnvironment
)

// String returns the tier's diagnostic name.
func (p Priority) String() string {
	switch p {
	case PriorityScanned:
		return "scanned"
	case PriorityScannedOverride:
		return "scanned-override"
	case PriorityLaunchParameters:
		return "launch-parameters"
	case PriorityEnvironment:
		return "environment"
	default:
		return "unknown"
	}
}

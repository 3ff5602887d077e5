// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the attack-layers pipeline:
// STIX knowledge-base objects, the Navigator layer document, stage
// configuration, and stage error kinds.
package types

import "strings"

// STIX object type tags used by the pipeline.
const (
	TypeIntrusionSet  = "intrusion-set"
	TypeAttackPattern = "attack-pattern"
	TypeRelationship  = "relationship"
	TypeMalware       = "malware"
	TypeTool          = "tool"
)

// IsSoftwareType reports whether typ is one of the ATT&CK software types.
func IsSoftwareType(typ string) bool {
	return typ == TypeMalware || typ == TypeTool
}

// Bundle is the top-level STIX document. Objects is a pointer so that a
// missing "objects" key can be told apart from an empty array.
type Bundle struct {
	Type    string    `json:"type"`
	ID      string    `json:"id"`
	Objects *[]Object `json:"objects"`
}

// Object is a generic STIX object. Only the fields the pipeline reads are
// decoded; everything else in the bundle is ignored.
type Object struct {
	Type    string   `json:"type"`
	ID      string   `json:"id"`
	Name    string   `json:"name,omitempty"`
	Aliases []string `json:"aliases,omitempty"`

	Deprecated bool `json:"x_mitre_deprecated,omitempty"`
	Revoked    bool `json:"revoked,omitempty"`

	ExternalReferences []ExternalReference `json:"external_references,omitempty"`

	// Relationship fields.
	RelationshipType string `json:"relationship_type,omitempty"`
	SourceRef        string `json:"source_ref,omitempty"`
	TargetRef        string `json:"target_ref,omitempty"`
}

// ExternalReference points at a catalog entry. For ATT&CK objects the first
// reference carries the stable external ID (e.g. "T1001", "G0007").
type ExternalReference struct {
	SourceName string `json:"source_name"`
	ExternalID string `json:"external_id,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Excluded reports whether the object is flagged deprecated or revoked.
func (o Object) Excluded() bool {
	return o.Deprecated || o.Revoked
}

// RefType returns the type prefix of a STIX identifier
// ("attack-pattern--1234" → "attack-pattern").
func RefType(ref string) string {
	t, _, ok := strings.Cut(ref, "--")
	if !ok {
		return ""
	}
	return t
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	"fmt"

	"github.com/pdiddy/attack-layers/internal/attack"
	"github.com/pdiddy/attack-layers/pkg/types"
)

// Usage maps technique external IDs to the display names of the actors that
// use them. Both technique order and name order follow insertion.
type Usage struct {
	ids   []string
	names map[string][]string
	seen  map[string]map[string]bool // technique ID → actor STIX ID
}

// NewUsage returns an empty Usage.
func NewUsage() *Usage {
	return &Usage{
		names: make(map[string][]string),
		seen:  make(map[string]map[string]bool),
	}
}

// Add records that actorID, shown as name, uses techniqueID. Repeated calls
// for the same actor and technique are ignored.
func (u *Usage) Add(techniqueID, actorID, name string) {
	actors, ok := u.seen[techniqueID]
	if !ok {
		actors = make(map[string]bool)
		u.seen[techniqueID] = actors
		u.ids = append(u.ids, techniqueID)
	}
	if actors[actorID] {
		return
	}
	actors[actorID] = true
	u.names[techniqueID] = append(u.names[techniqueID], name)
}

// TechniqueIDs returns technique IDs in first-seen order.
func (u *Usage) TechniqueIDs() []string {
	return u.ids
}

// Names returns the display names recorded for techniqueID.
func (u *Usage) Names(techniqueID string) []string {
	return u.names[techniqueID]
}

// Len returns the number of distinct techniques.
func (u *Usage) Len() int {
	return len(u.ids)
}

// TechniquesUsed follows each actor's outgoing relationships to
// attack-pattern objects and records the technique's external ID against the
// actor's display name. With followSoftware set, relationships to malware and
// tool objects are followed one step further and the software's techniques
// are credited to the actor as well. Dangling targets and excluded objects
// are skipped. A technique with no usable external ID is a KindSchema error.
func TechniquesUsed(kb *attack.KnowledgeBase, actors []Actor, followSoftware bool) (*Usage, error) {
	u := NewUsage()
	for _, actor := range actors {
		name := actor.DisplayName()
		record := func(ref string) error {
			technique, ok := kb.Get(ref)
			if !ok || technique.Excluded() {
				return nil
			}
			id, err := externalID(technique)
			if err != nil {
				return types.NewStageError("traverse", types.KindSchema, err)
			}
			u.Add(id, actor.Object.ID, name)
			return nil
		}

		for _, rel := range kb.RelationshipsFrom(actor.Object.ID) {
			if rel.Excluded() {
				continue
			}
			switch target := types.RefType(rel.TargetRef); {
			case target == types.TypeAttackPattern:
				if err := record(rel.TargetRef); err != nil {
					return nil, err
				}
			case followSoftware && types.IsSoftwareType(target):
				for _, ref := range softwareTechniques(kb, rel.TargetRef) {
					if err := record(ref); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	return u, nil
}

// softwareTechniques returns the attack-pattern refs used by the software
// object id, or nothing when the software is missing or excluded.
func softwareTechniques(kb *attack.KnowledgeBase, id string) []string {
	software, ok := kb.Get(id)
	if !ok || software.Excluded() {
		return nil
	}
	var refs []string
	for _, rel := range kb.RelationshipsFrom(software.ID) {
		if rel.Excluded() || types.RefType(rel.TargetRef) != types.TypeAttackPattern {
			continue
		}
		refs = append(refs, rel.TargetRef)
	}
	return refs
}

func externalID(o types.Object) (string, error) {
	if len(o.ExternalReferences) == 0 {
		return "", fmt.Errorf("technique %s has no external references", o.ID)
	}
	id := o.ExternalReferences[0].ExternalID
	if id == "" {
		return "", fmt.Errorf("technique %s has an empty external_id in its first external reference", o.ID)
	}
	return id, nil
}

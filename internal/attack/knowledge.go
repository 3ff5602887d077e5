// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package attack fetches the ATT&CK STIX bundle and indexes it in memory.
package attack

import (
	"github.com/pdiddy/attack-layers/pkg/types"
)

// KnowledgeBase is an in-memory index over a STIX bundle: objects by id and
// relationship objects by source id. It is built once and not modified.
type KnowledgeBase struct {
	objects       map[string]types.Object
	relationships map[string][]types.Object
	order         []string
}

// NewKnowledgeBase indexes objects. Relationships keep bundle order under
// their source id; other objects keep bundle order for ObjectsOfType. A
// later object with an id already seen replaces the earlier one.
func NewKnowledgeBase(objects []types.Object) *KnowledgeBase {
	kb := &KnowledgeBase{
		objects:       make(map[string]types.Object, len(objects)),
		relationships: make(map[string][]types.Object),
	}
	for _, o := range objects {
		if o.Type == types.TypeRelationship {
			kb.relationships[o.SourceRef] = append(kb.relationships[o.SourceRef], o)
		}
		if _, seen := kb.objects[o.ID]; !seen {
			kb.order = append(kb.order, o.ID)
		}
		kb.objects[o.ID] = o
	}
	return kb
}

// Get returns the object with the given id.
func (kb *KnowledgeBase) Get(id string) (types.Object, bool) {
	o, ok := kb.objects[id]
	return o, ok
}

// RelationshipsFrom returns the relationship objects whose source_ref is id.
func (kb *KnowledgeBase) RelationshipsFrom(id string) []types.Object {
	return kb.relationships[id]
}

// ObjectsOfType returns every object whose type tag is typ, in bundle order.
func (kb *KnowledgeBase) ObjectsOfType(typ string) []types.Object {
	var out []types.Object
	for _, id := range kb.order {
		if o := kb.objects[id]; o.Type == typ {
			out = append(out, o)
		}
	}
	return out
}

// Len returns the number of indexed objects.
func (kb *KnowledgeBase) Len() int {
	return len(kb.objects)
}

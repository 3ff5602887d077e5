// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	"github.com/pdiddy/attack-layers/internal/attack"
	"github.com/pdiddy/attack-layers/pkg/types"
)

func group(id string, aliases ...string) types.Object {
	return types.Object{Type: types.TypeIntrusionSet, ID: id, Name: aliases[0], Aliases: aliases}
}

func technique(id, externalID string) types.Object {
	return types.Object{
		Type: types.TypeAttackPattern,
		ID:   id,
		ExternalReferences: []types.ExternalReference{
			{SourceName: "mitre-attack", ExternalID: externalID},
			{SourceName: "capec", ExternalID: "CAPEC-000"},
		},
	}
}

func software(typ, id, name string) types.Object {
	return types.Object{Type: typ, ID: id, Name: name}
}

func uses(id, source, target string) types.Object {
	return types.Object{
		Type:             types.TypeRelationship,
		ID:               id,
		RelationshipType: "uses",
		SourceRef:        source,
		TargetRef:        target,
	}
}

func deprecated(o types.Object) types.Object {
	o.Deprecated = true
	return o
}

func revoked(o types.Object) types.Object {
	o.Revoked = true
	return o
}

// bearKB mirrors the shape of the enterprise bundle: two bear groups sharing
// T1001, one unrelated group, a deprecated bear group, and assorted edges that
// must be skipped.
func bearKB() *attack.KnowledgeBase {
	return attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--apt28", "APT28", "Fancy Bear", "Sofacy"),
		group("intrusion-set--apt29", "APT29", "Cozy Bear", "Dancing Bear"),
		group("intrusion-set--apt3", "APT3", "Gothic Panda"),
		deprecated(group("intrusion-set--old", "Old Bear")),
		revoked(group("intrusion-set--gone", "Gone Bear")),

		technique("attack-pattern--t1001", "T1001"),
		technique("attack-pattern--t1059", "T1059"),
		technique("attack-pattern--t1566", "T1566"),
		deprecated(technique("attack-pattern--t1000", "T1000")),
		revoked(technique("attack-pattern--t1002", "T1002")),

		uses("relationship--1", "intrusion-set--apt28", "attack-pattern--t1001"),
		uses("relationship--2", "intrusion-set--apt28", "attack-pattern--t1059"),
		uses("relationship--3", "intrusion-set--apt28", "attack-pattern--t1000"),
		uses("relationship--4", "intrusion-set--apt28", "malware--xagent"),
		uses("relationship--5", "intrusion-set--apt29", "attack-pattern--t1001"),
		uses("relationship--6", "intrusion-set--apt29", "attack-pattern--t1002"),
		uses("relationship--7", "intrusion-set--apt29", "attack-pattern--dangling"),
		uses("relationship--8", "intrusion-set--apt3", "attack-pattern--t1566"),
		uses("relationship--9", "intrusion-set--old", "attack-pattern--t1566"),
		uses("relationship--10", "intrusion-set--gone", "attack-pattern--t1566"),
	})
}

// softwareKB has one bear group that uses T1001 directly and reaches T1059
// and T1105 only through its malware and tool, plus excluded software and a
// technique used both directly and through software.
func softwareKB() *attack.KnowledgeBase {
	return attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--apt28", "APT28", "Fancy Bear"),

		software(types.TypeMalware, "malware--xagent", "X-Agent"),
		software(types.TypeTool, "tool--mimikatz", "Mimikatz"),
		revoked(software(types.TypeMalware, "malware--old", "Old Implant")),

		technique("attack-pattern--t1001", "T1001"),
		technique("attack-pattern--t1059", "T1059"),
		technique("attack-pattern--t1105", "T1105"),
		technique("attack-pattern--t1566", "T1566"),

		uses("relationship--1", "intrusion-set--apt28", "attack-pattern--t1001"),
		uses("relationship--2", "intrusion-set--apt28", "malware--xagent"),
		uses("relationship--3", "intrusion-set--apt28", "tool--mimikatz"),
		uses("relationship--4", "intrusion-set--apt28", "malware--old"),
		uses("relationship--5", "intrusion-set--apt28", "malware--dangling"),
		uses("relationship--6", "malware--xagent", "attack-pattern--t1059"),
		uses("relationship--7", "malware--xagent", "attack-pattern--t1001"),
		uses("relationship--8", "tool--mimikatz", "attack-pattern--t1105"),
		uses("relationship--9", "malware--old", "attack-pattern--t1566"),
	})
}

package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "classes": [
    {"name": "6A", "target": 2, "lv2_quota": {"ESP": 10}, "opt_quota": {}},
    {"name": "6B", "target": 2, "lv2_quota": {"ESP": 10}, "opt_quota": {}}
  ],
  "students": [
    {"id": "s1", "last_name": "Martin", "gender": "F", "com": 3, "tra": 3, "part": 3,
     "lv2": "ESP", "has_antinomy_attr": true, "class": "6A"},
    {"id": "s2", "last_name": "Dupont", "gender": "M", "com": 2, "tra": 2, "part": 2,
     "lv2": "ESP", "has_antinomy_attr": true, "class": "6B"}
  ]
}`

func TestFromJSON_BuildsSnapshot(t *testing.T) {
	snap, err := FromJSON(sampleDoc)
	require.NoError(t, err)
	require.Len(t, snap.Students, 2)
	require.Len(t, snap.Classes, 2)

	s1 := snap.Students["s1"]
	require.NotNil(t, s1)
	require.Equal(t, 3.0, s1.COM)
	require.Equal(t, "Martin", s1.LastName)
}

func TestFromJSON_RejectsInvalidJSON(t *testing.T) {
	_, err := FromJSON("not json")
	require.Error(t, err)
}

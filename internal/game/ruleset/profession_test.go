package ruleset_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
)

func TestLoadProfessions_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "fighter.yaml"), `
id: fighter
name: "Fighter"
description: "Master of weapons."
primary_properties: [strength, agility]
`)
	professions, err := ruleset.LoadProfessions(dir)
	require.NoError(t, err)
	require.Len(t, professions, 1)
	assert.Equal(t, "fighter", professions[0].ID)
	assert.Equal(t, []string{"strength", "agility"}, professions[0].PrimaryProperties)
}

func TestLoadProfessions_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yml"), `{{{ not yaml`)
	_, err := ruleset.LoadProfessions(dir)
	require.Error(t, err)
}

func TestLoadProfessions_RequiresIDAndName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "anon.yaml"), "description: nobody\n")
	_, err := ruleset.LoadProfessions(dir)
	require.Error(t, err)
}

func TestLoadProfessions_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), "# not content")
	professions, err := ruleset.LoadProfessions(dir)
	require.NoError(t, err)
	assert.Empty(t, professions)
}

func TestLoadProfessions_ActualContent(t *testing.T) {
	professions, err := ruleset.LoadProfessions("../../../content/professions")
	require.NoError(t, err)
	assert.Len(t, professions, 7, "expected 7 professions")
	for _, p := range professions {
		if p.ID == "commoner" {
			assert.Empty(t, p.PrimaryProperties)
			continue
		}
		assert.Len(t, p.PrimaryProperties, 2, "profession %s", p.ID)
	}
}

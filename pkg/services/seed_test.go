package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms/pkg/models"
)

const yamlSeed = `
hero:
  - id: "1"
    key: heroTitle
    type: text
    value: Hi there
    label: Hero Title
    section: hero
`

const tomlSeed = `
[[hero]]
id = "1"
key = "heroTitle"
type = "text"
value = "Hi there"
label = "Hero Title"
section = "hero"
`

const jsonSeed = `{
  "hero": [
    {"id": "1", "key": "heroTitle", "type": "text", "value": "Hi there", "label": "Hero Title", "section": "hero"}
  ]
}`

func TestParseSeed_Formats(t *testing.T) {
	for name, doc := range map[string]string{"yaml": yamlSeed, "toml": tomlSeed, "json": jsonSeed} {
		t.Run(name, func(t *testing.T) {
			snap, err := ParseSeed([]byte(doc))
			require.NoError(t, err)
			require.Len(t, snap["hero"], 1)
			assert.Equal(t, "Hi there", snap["hero"][0].Value)
			assert.Equal(t, models.FieldText, snap["hero"][0].Type)
		})
	}
}

func TestParseSeed_RejectsInvalidContent(t *testing.T) {
	// Unknown field type
	_, err := ParseSeed([]byte(`{"hero":[{"id":"1","key":"k","type":"video","section":"hero"}]}`))
	assert.Error(t, err)

	// Duplicate key across sections
	_, err = ParseSeed([]byte(`{
		"hero":  [{"id":"1","key":"k","type":"text","section":"hero"}],
		"about": [{"id":"2","key":"k","type":"text","section":"about"}]
	}`))
	assert.Error(t, err)

	// Garbage
	_, err = ParseSeed([]byte("::: not a document :::"))
	assert.Error(t, err)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlSeed), 0644))

	snap, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hi there", snap["hero"][0].Value)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

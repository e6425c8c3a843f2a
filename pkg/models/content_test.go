package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotClone_DeepCopy(t *testing.T) {
	original := DefaultSnapshot()
	clone := original.Clone()

	clone["hero"][0].Value = "mutated"
	clone["extra"] = []ContentField{{ID: "x", Key: "extraKey", Type: FieldText, Section: "extra"}}

	assert.Equal(t, "Hello, I'm a Designer & Developer", original["hero"][0].Value)
	assert.NotContains(t, original, "extra")
}

func TestFieldValidate(t *testing.T) {
	valid := ContentField{ID: "1", Key: "heroTitle", Type: FieldText, Section: "hero"}
	require.NoError(t, valid.Validate())

	missingKey := valid
	missingKey.Key = ""
	assert.Error(t, missingKey.Validate())

	missingSection := valid
	missingSection.Section = ""
	assert.Error(t, missingSection.Validate())

	badType := valid
	badType.Type = "video"
	assert.Error(t, badType.Validate())
}

func TestFieldTypeWidget(t *testing.T) {
	assert.Equal(t, "input", FieldText.Widget())
	assert.Equal(t, "textarea", FieldRichText.Widget())
	assert.Equal(t, "image-url", FieldImage.Widget())
	assert.Empty(t, FieldType("video").Widget())
}

func TestSnapshotValidate(t *testing.T) {
	require.NoError(t, DefaultSnapshot().Validate())

	duplicate := Snapshot{
		"hero":  {{ID: "1", Key: "title", Type: FieldText, Section: "hero"}},
		"about": {{ID: "2", Key: "title", Type: FieldText, Section: "about"}},
	}
	assert.Error(t, duplicate.Validate())

	mismatched := Snapshot{
		"hero": {{ID: "1", Key: "title", Type: FieldText, Section: "about"}},
	}
	assert.Error(t, mismatched.Validate())
}

func TestKeyOwner(t *testing.T) {
	snap := DefaultSnapshot()

	owner, ok := snap.KeyOwner("heroTitle")
	require.True(t, ok)
	assert.Equal(t, "1", owner)

	_, ok = snap.KeyOwner("missing")
	assert.False(t, ok)
}

func TestSections_SortedOrder(t *testing.T) {
	assert.Equal(t, []string{"about", "contact", "hero", "projects"}, DefaultSnapshot().Sections())
}

package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchBuilder_Empty(t *testing.T) {
	t.Parallel()
	b := &patchBuilder{}
	assert.True(t, b.empty())
}

func TestPatchBuilder_PlaceholdersNumberInOrder(t *testing.T) {
	t.Parallel()
	b := &patchBuilder{}
	b.set("title", "Engineer")
	b.set("company", "Acme")

	assert.False(t, b.empty())
	assert.Equal(t, "title = $1, company = $2", b.setClause())
	assert.Equal(t, []any{"Engineer", "Acme"}, b.args)
}

func TestPatchBuilder_ArgContinuesNumbering(t *testing.T) {
	t.Parallel()
	b := &patchBuilder{}
	b.set("status", "applied")

	idPos := b.arg("row-id")
	userPos := b.arg("user-id")

	assert.Equal(t, 2, idPos)
	assert.Equal(t, 3, userPos)
	assert.Equal(t, []any{"applied", "row-id", "user-id"}, b.args)
}

func TestPatchBuilder_NilValueWritesNull(t *testing.T) {
	t.Parallel()
	b := &patchBuilder{}
	var cleared *string
	b.set("notes", cleared)

	assert.Equal(t, "notes = $1", b.setClause())
	assert.Len(t, b.args, 1)
}

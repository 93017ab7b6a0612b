package pgstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/storage"
)

func TestSchemaStatements(t *testing.T) {
	stmts := schemaStatements(storage.CollectionSpec{Name: "Books", UniqueFields: []string{"isbn"}})
	require.Len(t, stmts, 2)

	assert.Contains(t, stmts[0], `CREATE TABLE IF NOT EXISTS "Books"`)
	assert.Contains(t, stmts[1], `CREATE UNIQUE INDEX IF NOT EXISTS "Books_isbn_key" ON "Books" ((doc->>'isbn'))`)
	assert.Contains(t, stmts[1], `jsonb_typeof(doc->'isbn') = 'string'`)
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, `'email'`, quoteLiteral("email"))
	assert.Equal(t, `'o''brien'`, quoteLiteral("o'brien"))
}

func TestEncodeObjectDropsIdentifier(t *testing.T) {
	body, err := encodeObject(map[string]any{"_id": "65a1f0c2b3d4e5f60718293a", "title": "Dune"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"Dune"}`, body)

	_, err = encodeObject([]string{"not", "an", "object"})
	assert.Error(t, err)
}

func TestFieldForConstraint(t *testing.T) {
	c := &collection[map[string]any]{spec: storage.CollectionSpec{Name: "Authors", UniqueFields: []string{"email"}}}
	assert.Equal(t, "email", c.fieldForConstraint("Authors_email_key"))
	assert.Equal(t, "", c.fieldForConstraint("Authors_pkey"))
}

package mongostore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"library-api/internal/storage"
)

func TestDuplicateField(t *testing.T) {
	tests := []struct {
		msg  string
		want string
	}{
		{
			msg:  `E11000 duplicate key error collection: library.Authors index: email_1 dup key: { email: "ada@example.com" }`,
			want: "email",
		},
		{
			msg:  `E11000 duplicate key error collection: library.Books index: isbn_1 dup key: { isbn: "978-0441013593" }`,
			want: "isbn",
		},
		{msg: "E11000 duplicate key error", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, duplicateField(tt.msg))
	}
}

func TestIndexModels(t *testing.T) {
	models := indexModels(storage.CollectionSpec{Name: "Authors", UniqueFields: []string{"email"}})
	require.Len(t, models, 1)

	assert.Equal(t, bson.D{{Key: "email", Value: 1}}, models[0].Keys)
	require.NotNil(t, models[0].Options.Unique)
	assert.True(t, *models[0].Options.Unique)
	require.NotNil(t, models[0].Options.Name)
	assert.Equal(t, "email_1", *models[0].Options.Name)

	assert.Empty(t, indexModels(storage.CollectionSpec{Name: "users"}))
}

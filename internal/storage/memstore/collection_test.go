package memstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/storage"
)

type record struct {
	ID    string  `json:"_id,omitempty"`
	Name  *string `json:"name"`
	Code  *string `json:"code"`
	Count *int    `json:"count"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newRecords() storage.Collection[record] {
	return NewCollection[record](storage.CollectionSpec{Name: "records", UniqueFields: []string{"code"}})
}

func TestInsertAndFind(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	id, err := coll.InsertOne(ctx, &record{Name: strPtr("first"), Code: strPtr("a"), Count: intPtr(3)})
	require.NoError(t, err)
	assert.Len(t, id, 24)

	got, err := coll.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "first", *got.Name)
	assert.Equal(t, 3, *got.Count)

	_, err = coll.InsertOne(ctx, &record{Name: strPtr("second"), Code: strPtr("b")})
	require.NoError(t, err)

	all, err := coll.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "first", *all[0].Name)
	assert.Equal(t, "second", *all[1].Name)
}

func TestFindAllEmptyIsNotNil(t *testing.T) {
	all, err := newRecords().FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestIdentifiersIgnoreCase(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	id, err := coll.InsertOne(ctx, &record{Name: strPtr("mixed")})
	require.NoError(t, err)
	upper := strings.ToUpper(id)

	got, err := coll.FindByID(ctx, upper)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	res, err := coll.UpdateByID(ctx, upper, storage.Fields{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, storage.UpdateResult{Matched: 1, Modified: 1}, res)

	n, err := coll.DeleteByID(ctx, upper)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestFindByIDErrors(t *testing.T) {
	coll := newRecords()

	_, err := coll.FindByID(context.Background(), "bad")
	assert.ErrorIs(t, err, storage.ErrInvalidID)

	_, err = coll.FindByID(context.Background(), "65a1f0c2b3d4e5f60718293a")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUniqueFieldRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	_, err := coll.InsertOne(ctx, &record{Code: strPtr("dup")})
	require.NoError(t, err)

	_, err = coll.InsertOne(ctx, &record{Code: strPtr("dup")})
	require.Error(t, err)
	assert.True(t, storage.IsDuplicateKey(err))

	var dup *storage.DuplicateKeyError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "code", dup.Field)

	all, err := coll.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUniqueFieldIgnoresMissingValues(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	_, err := coll.InsertOne(ctx, &record{Name: strPtr("one")})
	require.NoError(t, err)
	_, err = coll.InsertOne(ctx, &record{Name: strPtr("two")})
	assert.NoError(t, err)
}

func TestUpdateByID(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	id, err := coll.InsertOne(ctx, &record{Name: strPtr("before"), Code: strPtr("x")})
	require.NoError(t, err)

	res, err := coll.UpdateByID(ctx, id, storage.Fields{"name": "after"})
	require.NoError(t, err)
	assert.Equal(t, storage.UpdateResult{Matched: 1, Modified: 1}, res)

	got, err := coll.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "after", *got.Name)
	assert.Equal(t, "x", *got.Code)

	res, err = coll.UpdateByID(ctx, id, storage.Fields{"name": "after"})
	require.NoError(t, err)
	assert.Equal(t, storage.UpdateResult{Matched: 1, Modified: 0}, res)

	res, err = coll.UpdateByID(ctx, "65a1f0c2b3d4e5f60718293a", storage.Fields{"name": "x"})
	require.NoError(t, err)
	assert.Equal(t, storage.UpdateResult{}, res)
}

func TestUpdateWithNilStoresNull(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	id, err := coll.InsertOne(ctx, &record{Name: strPtr("named"), Code: strPtr("c")})
	require.NoError(t, err)

	var noName *string
	_, err = coll.UpdateByID(ctx, id, storage.Fields{"name": noName})
	require.NoError(t, err)

	got, err := coll.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.Name)
}

func TestUpdateRejectsDuplicateOfAnotherDocument(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	_, err := coll.InsertOne(ctx, &record{Code: strPtr("taken")})
	require.NoError(t, err)
	id, err := coll.InsertOne(ctx, &record{Code: strPtr("mine")})
	require.NoError(t, err)

	_, err = coll.UpdateByID(ctx, id, storage.Fields{"code": "taken"})
	assert.True(t, storage.IsDuplicateKey(err))

	_, err = coll.UpdateByID(ctx, id, storage.Fields{"code": "mine", "name": "same code"})
	assert.NoError(t, err)
}

func TestDeleteByID(t *testing.T) {
	ctx := context.Background()
	coll := newRecords()

	id, err := coll.InsertOne(ctx, &record{Name: strPtr("gone")})
	require.NoError(t, err)

	n, err := coll.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = coll.DeleteByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	_, err = coll.FindByID(ctx, id)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newRecords().FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

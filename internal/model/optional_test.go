package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectUpdate_PartialDecode(t *testing.T) {
	var upd ObjectUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"tags":"new","localizacao_id":null}`), &upd))

	assert.True(t, upd.Tags.Set)
	require.NotNil(t, upd.Tags.Value)
	assert.Equal(t, "new", *upd.Tags.Value)

	assert.True(t, upd.LocationID.Set)
	assert.Nil(t, upd.LocationID.Value)

	assert.False(t, upd.Name.Set)
	assert.False(t, upd.Description.Set)
	assert.False(t, upd.Category.Set)
}

func TestOptional_RejectsWrongType(t *testing.T) {
	var upd LocationUpdate
	err := json.Unmarshal([]byte(`{"nome": 12}`), &upd)
	assert.Error(t, err)
}

func TestOptional_Constructors(t *testing.T) {
	some := Some(int64(7))
	assert.True(t, some.Set)
	assert.Equal(t, int64(7), *some.Value)

	null := Null[string]()
	assert.True(t, null.Set)
	assert.Nil(t, null.Value)

	b, err := json.Marshal(null)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

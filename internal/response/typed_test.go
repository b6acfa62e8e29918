package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecode(t *testing.T) {
	r := Map(decode(t, `{"data": {"op": {"id": 7, "name": "ann"}}, "errors": [{"message": "warn"}]}`), "op", userShape)
	typed, err := Decode[user](r)
	require.NoError(t, err)
	require.Equal(t, &user{ID: 7, Name: "ann"}, typed.Data)
	require.Equal(t, []GraphQLError{{Message: "warn"}}, typed.Errors)
	require.Error(t, typed.Err())
}

func TestDecodeNull(t *testing.T) {
	typed, err := Decode[user](&Result{})
	require.NoError(t, err)
	require.Nil(t, typed.Data)
	require.NoError(t, typed.Err())
}

func TestDecodeMismatch(t *testing.T) {
	_, err := Decode[user](&Result{Data: []any{1.0}})
	require.ErrorIs(t, err, ErrDecode)
}

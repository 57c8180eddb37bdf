package database

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Value(t *testing.T) {
	got, err := NewJSON([]string{"Physics", "Maths"}).Value()
	require.NoError(t, err)
	assert.Equal(t, `["Physics","Maths"]`, got)

	got, err = NewJSON(map[string]int{"Physics": 2}).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"Physics":2}`, got)

	got, err = NewJSON([]string(nil)).Value()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestJSON_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    []string
		wantErr bool
	}{
		{name: "bytes", src: []byte(`["a","b"]`), want: []string{"a", "b"}},
		{name: "string", src: `["c"]`, want: []string{"c"}},
		{name: "NULL", src: nil, want: nil},
		{name: "empty", src: []byte{}, want: nil},
		{name: "invalid JSON", src: []byte(`[`), wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got JSON[[]string]
			err := got.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.V)
		})
	}
}

func TestJSON_MarshalJSON(t *testing.T) {
	type payload struct {
		Tags JSON[[]string] `json:"tags"`
	}

	b, err := json.Marshal(payload{Tags: NewJSON([]string{"brief"})})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["brief"]}`, string(b))

	var got payload
	require.NoError(t, json.Unmarshal([]byte(`{"tags":["analogy","mistakes"]}`), &got))
	assert.Equal(t, []string{"analogy", "mistakes"}, got.Tags.V)
}

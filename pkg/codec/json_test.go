package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONStrict_MarshalDoesNotEscapeHTML(t *testing.T) {
	out, err := JSONStrict.Marshal(map[string]string{"message": "Signed up a&b@x.edu for <Club>"})
	require.NoError(t, err)
	assert.Equal(t, `{"message":"Signed up a&b@x.edu for <Club>"}`, string(out))
}

func TestJSONStrict_Unmarshal(t *testing.T) {
	type event struct {
		Type string `json:"type"`
	}

	var e event
	require.NoError(t, JSONStrict.Unmarshal([]byte(`{"type":"signup"}`), &e))
	assert.Equal(t, "signup", e.Type)

	assert.Error(t, JSONStrict.Unmarshal([]byte(`{"type":"signup","extra":1}`), &e))
	assert.ErrorIs(t, JSONStrict.Unmarshal([]byte(`{"type":"signup"} {}`), &e), errTrailing)
}

func TestOrderedObject(t *testing.T) {
	vals := map[string]int{"b": 2, "a": 1}
	out, err := OrderedObject([]string{"b", "a"}, func(k string) any { return vals[k] })
	require.NoError(t, err)
	assert.Equal(t, `{"b":2,"a":1}`, string(out))

	out, err = OrderedObject(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	_, err = OrderedObject([]string{"ch"}, func(string) any { return make(chan int) })
	assert.Error(t, err)
}

func TestJSONStrict_ContentType(t *testing.T) {
	assert.Equal(t, "application/json", JSONStrict.ContentType())
}

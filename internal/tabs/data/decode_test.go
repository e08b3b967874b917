package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON_RejectsTrailingBytes(t *testing.T) {
	_, err := DecodeJSON([]byte(`{"id":"a"} trailing`))
	assert.ErrorIs(t, err, ErrNotJSON)

	_, err = DecodeJSON([]byte(`[1, 2`))
	assert.ErrorIs(t, err, ErrNotJSON)

	_, err = DecodeJSON([]byte(` {"id":"a"} `))
	assert.NoError(t, err)
}

func TestCandidate_Shapes(t *testing.T) {
	v, err := DecodeJSON([]byte(`{
		"capo": 2,
		"ratio": 2.50,
		"title": "T",
		"live": true,
		"source": null,
		"tags": ["a", {"nested": [1, "x"]}, null]
	}`))
	require.NoError(t, err)

	got, ok := Candidate(v).(map[string]any)
	require.True(t, ok)

	assert.Equal(t, json.Number("2"), got["capo"])
	assert.Equal(t, json.Number("2.50"), got["ratio"])
	assert.Equal(t, "T", got["title"])
	assert.Equal(t, true, got["live"])
	assert.Contains(t, got, "source")
	assert.Nil(t, got["source"])
	assert.Equal(t, []any{
		"a",
		map[string]any{"nested": []any{json.Number("1"), "x"}},
		nil,
	}, got["tags"])
}

func TestCandidate_FeedsNormalize(t *testing.T) {
	v, err := DecodeJSON([]byte(`{"id":"n","title":"T","artist":"A","instrument":"I","tuning":"T","capo":4.50,"difficulty":"D","tags":["x"],"content":"C"}`))
	require.NoError(t, err)

	tab, errs := Normalize(Candidate(v))
	require.Empty(t, errs)
	assert.Equal(t, "4.5", tab.Capo)
}

func TestElements(t *testing.T) {
	arr, err := DecodeJSON([]byte(`[{"a":1}, 3]`))
	require.NoError(t, err)
	items := Elements(arr)
	require.Len(t, items, 2)
	assert.True(t, IsObject(items[0]))
	assert.False(t, IsObject(items[1]))

	obj, err := DecodeJSON([]byte(`{"a":1}`))
	require.NoError(t, err)
	assert.Len(t, Elements(obj), 1)
}

package toon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/JesusRosaB/go-toon"
)

func TestFromJSON(t *testing.T) {
	t.Run("object preserves key order", func(t *testing.T) {
		got, err := toon.FromJSON([]byte(`{"z":1,"a":2,"m":3}`))
		require.NoError(t, err)
		doc, ok := got.(toon.Document)
		require.True(t, ok)
		require.Equal(t, []string{"z", "a", "m"}, doc.Keys())
	})

	t.Run("integral numbers narrow to int64", func(t *testing.T) {
		got, err := toon.FromJSON([]byte(`{"i":30,"f":1.5}`))
		require.NoError(t, err)
		doc := got.(toon.Document)
		require.Equal(t, int64(30), doc.Value("i"))
		require.Equal(t, 1.5, doc.Value("f"))
	})

	t.Run("nested structures", func(t *testing.T) {
		got, err := toon.FromJSON([]byte(`{"user":{"name":"Ana","tags":["a","b"]}}`))
		require.NoError(t, err)
		doc := got.(toon.Document)
		user, ok := doc.Value("user").(toon.Document)
		require.True(t, ok)
		require.Equal(t, "Ana", user.Value("name"))
		require.Equal(t, []any{"a", "b"}, user.Value("tags"))
	})

	t.Run("top-level array", func(t *testing.T) {
		got, err := toon.FromJSON([]byte(`[{"id":1},{"id":2}]`))
		require.NoError(t, err)
		arr, ok := got.([]any)
		require.True(t, ok)
		require.Len(t, arr, 2)
		require.IsType(t, toon.Document{}, arr[0])
	})

	t.Run("scalars and null", func(t *testing.T) {
		got, err := toon.FromJSON([]byte(`{"s":"x","b":true,"n":null}`))
		require.NoError(t, err)
		doc := got.(toon.Document)
		require.Equal(t, "x", doc.Value("s"))
		require.Equal(t, true, doc.Value("b"))
		require.Nil(t, doc.Value("n"))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := toon.FromJSON([]byte(`{`))
		require.Error(t, err)
	})
}

func TestToJSON(t *testing.T) {
	t.Run("document writes keys in order", func(t *testing.T) {
		doc := toon.Document{
			{Key: "z", Value: int64(1)},
			{Key: "a", Value: "two"},
		}
		b, err := toon.ToJSON(doc)
		require.NoError(t, err)
		require.Equal(t, `{"z":1,"a":"two"}`, string(b))
	})

	t.Run("nested documents", func(t *testing.T) {
		doc := toon.Document{
			{Key: "user", Value: toon.Document{{Key: "name", Value: "Ana"}}},
		}
		b, err := toon.ToJSON(doc)
		require.NoError(t, err)
		require.Equal(t, `{"user":{"name":"Ana"}}`, string(b))
	})

	t.Run("document list", func(t *testing.T) {
		rows := []toon.Document{
			{{Key: "id", Value: int64(1)}},
			{{Key: "id", Value: int64(2)}},
		}
		b, err := toon.ToJSON(rows)
		require.NoError(t, err)
		require.Equal(t, `[{"id":1},{"id":2}]`, string(b))
	})
}

func TestEncodeJSON(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		out, err := toon.EncodeJSONObject([]byte(`{"name":"John","age":30,"city":"Madrid"}`))
		require.NoError(t, err)
		require.Equal(t, "@schema|name|age|city\nJohn|30|Madrid", out)
	})

	t.Run("array", func(t *testing.T) {
		out, err := toon.EncodeJSONArray([]byte(`[{"id":1,"name":"a"},{"id":2,"name":"b"}]`))
		require.NoError(t, err)
		require.Equal(t, "@schema|id|name\n1|a\n2|b", out)
	})

	t.Run("shape mismatch", func(t *testing.T) {
		_, err := toon.EncodeJSONObject([]byte(`[1,2]`))
		require.Error(t, err)
		var shapeErr *toon.ShapeError
		require.ErrorAs(t, err, &shapeErr)
	})
}

package toon_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	toon "github.com/JesusRosaB/go-toon"
)

type person struct {
	Name string `toon:"name"`
	Age  int    `toon:"age"`
	City string `toon:"city"`
}

func TestDecodeInto(t *testing.T) {
	t.Run("struct from a single row", func(t *testing.T) {
		var p person
		err := toon.DecodeInto("@schema|name|age|city\nJohn|30|Madrid", &p)
		require.NoError(t, err)
		require.Equal(t, person{Name: "John", Age: 30, City: "Madrid"}, p)
	})

	t.Run("slice of structs from multiple rows", func(t *testing.T) {
		var people []person
		err := toon.DecodeInto("@schema|name|age\nJohn|30\nAna|25", &people)
		require.NoError(t, err)
		require.Equal(t, []person{
			{Name: "John", Age: 30},
			{Name: "Ana", Age: 25},
		}, people)
	})

	t.Run("case-insensitive field fallback", func(t *testing.T) {
		type row struct {
			ID int
		}
		var r row
		err := toon.DecodeInto("@schema|id\n7", &r)
		require.NoError(t, err)
		require.Equal(t, 7, r.ID)
	})

	t.Run("map target", func(t *testing.T) {
		var m map[string]any
		err := toon.DecodeInto("@schema|a|b\n1|x", &m)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": int64(1), "b": "x"}, m)
	})

	t.Run("document target", func(t *testing.T) {
		var doc toon.Document
		err := toon.DecodeInto("@schema|a\n1", &doc)
		require.NoError(t, err)
		require.Equal(t, toon.Document{{Key: "a", Value: int64(1)}}, doc)
	})

	t.Run("nested keys into nested struct", func(t *testing.T) {
		type address struct {
			City string `toon:"city"`
		}
		type user struct {
			Name    string  `toon:"name"`
			Address address `toon:"address"`
		}
		var u user
		err := toon.DecodeInto("@schema|name|address.city\nAna|Oslo", &u)
		require.NoError(t, err)
		require.Equal(t, user{Name: "Ana", Address: address{City: "Oslo"}}, u)
	})

	t.Run("pointer fields are allocated", func(t *testing.T) {
		type row struct {
			Name *string `toon:"name"`
		}
		var r row
		err := toon.DecodeInto("@schema|name\nJohn", &r)
		require.NoError(t, err)
		require.NotNil(t, r.Name)
		require.Equal(t, "John", *r.Name)
	})

	t.Run("int into float field", func(t *testing.T) {
		type row struct {
			Score float64 `toon:"score"`
		}
		var r row
		err := toon.DecodeInto("@schema|score\n3", &r)
		require.NoError(t, err)
		require.Equal(t, 3.0, r.Score)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		type row struct {
			A int `toon:"a"`
		}
		var r row
		err := toon.DecodeInto("@schema|a|mystery\n1|zzz", &r)
		require.NoError(t, err)
		require.Equal(t, 1, r.A)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		var p person
		err := toon.DecodeInto("@schema|name\nJohn", p)
		require.Error(t, err)
		require.Contains(t, err.Error(), "non-pointer")
	})

	t.Run("nil target", func(t *testing.T) {
		err := toon.DecodeInto("@schema|name\nJohn", nil)
		require.Error(t, err)
	})

	t.Run("type mismatch", func(t *testing.T) {
		type row struct {
			Age int `toon:"age"`
		}
		var r row
		err := toon.DecodeInto("@schema|age\nnot-a-number", &r)
		require.Error(t, err)
		var typeErr *toon.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr)
	})
}

package ini_test

import (
	"testing"

	ini "github.com/Snowlt/go-ini"
	"github.com/stretchr/testify/require"
)

func TestDocument_SectionOrCreate(t *testing.T) {
	doc := ini.New()

	s1 := doc.SectionOrCreate("a")
	s2 := doc.SectionOrCreate("a")
	require.Same(t, s1, s2)
	require.Equal(t, 1, doc.Len())

	_, ok := doc.Section("missing")
	require.False(t, ok)
}

func TestDocument_InsertionOrder(t *testing.T) {
	doc := ini.New()
	doc.SectionOrCreate("c")
	doc.SectionOrCreate("a")
	doc.SectionOrCreate("b")
	doc.SectionOrCreate("a") // no reorder on re-reference

	require.Equal(t, []string{"c", "a", "b"}, doc.Names())
}

func TestDocument_RemoveSection(t *testing.T) {
	doc := ini.New()
	doc.SectionOrCreate("a")
	doc.SectionOrCreate("b")

	require.True(t, doc.RemoveSection("a"))
	require.False(t, doc.RemoveSection("a"))
	require.Equal(t, []string{"b"}, doc.Names())
}

func TestDocument_RenameSection(t *testing.T) {
	doc := ini.New()
	doc.SectionOrCreate("old").Set("k", "v")
	doc.SectionOrCreate("taken")

	t.Run("moves content to the new name", func(t *testing.T) {
		require.True(t, doc.RenameSection("old", "new"))

		_, ok := doc.Section("old")
		require.False(t, ok)
		sec, ok := doc.Section("new")
		require.True(t, ok)
		require.Equal(t, "new", sec.Name())
		v, _ := sec.Get("k")
		require.Equal(t, "v", v)
	})

	t.Run("refuses absent, identical and taken names", func(t *testing.T) {
		require.False(t, doc.RenameSection("missing", "x"))
		require.False(t, doc.RenameSection("new", "new"))
		require.False(t, doc.RenameSection("new", "taken"))
	})
}

func TestDocument_Clear(t *testing.T) {
	mk := func() *ini.Document {
		doc := ini.New()
		doc.Untitled().Set("u", "1")
		doc.SectionOrCreate("a").Set("k", "v")
		return doc
	}

	t.Run("named sections only", func(t *testing.T) {
		doc := mk()
		doc.Clear(false)
		require.Equal(t, 0, doc.Len())
		require.True(t, doc.Untitled().Has("u"))
	})

	t.Run("including untitled", func(t *testing.T) {
		doc := mk()
		doc.Clear(true)
		require.Equal(t, 0, doc.Len())
		require.True(t, doc.Untitled().IsEmpty())
		require.NotNil(t, doc.Untitled())
	})
}

func TestDocument_Clone(t *testing.T) {
	doc := ini.New()
	doc.Untitled().SetDanglingText("stray")
	sec := doc.SectionOrCreate("s")
	sec.Set("k", "v")
	require.NoError(t, sec.AddCommentsAfter("k", "note"))

	clone := doc.Clone()
	require.True(t, doc.Equal(clone))

	// Mutating the clone must not leak into the original.
	cs, _ := clone.Section("s")
	cs.Set("k", "changed")
	cs.Set("extra", "1")
	clone.SectionOrCreate("added")

	require.False(t, doc.Equal(clone))
	v, _ := sec.Get("k")
	require.Equal(t, "v", v)
	require.False(t, sec.Has("extra"))
	_, ok := doc.Section("added")
	require.False(t, ok)
}

func TestDocument_Equal(t *testing.T) {
	a, err := ini.Parse([]byte("[s]\nk=v\n; c"))
	require.NoError(t, err)
	b, err := ini.Parse([]byte("[s]\nk=v\n; c"))
	require.NoError(t, err)

	require.True(t, a.Equal(b))

	sec, _ := b.Section("s")
	sec.Set("k", "other")
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
}

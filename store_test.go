package flagtory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	t.Run("returns live pointer", func(t *testing.T) {
		t.Parallel()
		s := New()
		p := Add(s, "w", "this is the w flag", 65)
		assert.Equal(t, 65, *p)

		*p = 55
		assert.Equal(t, 55, Get[int](s, "w"))

		require.NoError(t, s.Parse([]string{"-w", "12"}))
		assert.Equal(t, 12, *p)
	})
	t.Run("bind existing variable", func(t *testing.T) {
		t.Parallel()
		s := New()
		port := uint16(8080)
		AddVar(s, &port, "port", "listen port")

		require.NoError(t, s.Parse([]string{"--port", "9090"}))
		assert.Equal(t, uint16(9090), port)
		assert.Equal(t, "8080", s.Lookup("port").Default())
	})
	t.Run("nil variable panics", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, `flagtory: nil pointer registered for flag "port"`, func() {
			AddVar[int](New(), nil, "port", "listen port")
		})
	})
	t.Run("canonical names", func(t *testing.T) {
		t.Parallel()
		s := New()
		Add(s, "allow net", "", false)
		Add(s, "dry-run", "", false)

		require.NotNil(t, s.Lookup("allownet"))
		require.NotNil(t, s.Lookup("dryrun"))
		assert.Nil(t, s.Lookup("allow net"))
		assert.Nil(t, s.Lookup("dry-run"))
	})
	t.Run("insertion order and count", func(t *testing.T) {
		t.Parallel()
		s := New()
		Add(s, "b", "", true)
		Add(s, "a", "", int8(-3))
		Add(s, "b", "shadowed", false)

		entries := s.Entries()
		require.Len(t, entries, 3)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"b", "a", "b"}, []string{entries[0].Name, entries[1].Name, entries[2].Name})
		assert.Equal(t, "", entries[0].Description)
		assert.Equal(t, "shadowed", entries[2].Description)
		assert.Same(t, entries[0], s.Lookup("b"))
	})
}

func TestEntry(t *testing.T) {
	t.Parallel()

	s := New()
	Add(s, "v", "verbose", false)
	Add(s, "ratio", "sampling ratio", float32(0.5))

	v := s.Lookup("v")
	require.NotNil(t, v)
	assert.Equal(t, KindBool, v.Kind())
	assert.True(t, v.IsBoolFlag())
	assert.Equal(t, "false", v.String())

	ratio := s.Lookup("ratio")
	require.NotNil(t, ratio)
	assert.Equal(t, KindFloat32, ratio.Kind())
	assert.False(t, ratio.IsBoolFlag())
	require.NoError(t, ratio.Set("0.75"))
	assert.Equal(t, float32(0.75), ratio.Get())
	assert.Equal(t, "0.5", ratio.Default())
	assert.Error(t, ratio.Set("half"))
	assert.Equal(t, "0.75", ratio.String())

	assert.Nil(t, s.Lookup("missing"))
}

func TestGet(t *testing.T) {
	t.Parallel()

	t.Run("flag not found", func(t *testing.T) {
		t.Parallel()
		s := New()
		assert.PanicsWithValue(t, "internal error: flag not found: --version", func() {
			_ = Get[string](s, "version")
		})
	})
	t.Run("flag type mismatch", func(t *testing.T) {
		t.Parallel()
		s := New()
		Add(s, "version", "show version", "1.0.0")
		assert.PanicsWithValue(t, "internal error: type mismatch for flag --version: registered string, requested int", func() {
			_ = Get[int](s, "version")
		})
	})
	t.Run("multi-word name", func(t *testing.T) {
		t.Parallel()
		s := New()
		Add(s, "allow net", "", true)
		assert.True(t, Get[bool](s, "allow-net"))
		assert.True(t, Get[bool](s, "allownet"))
	})
}

func TestCanonicalName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"v":            "v",
		"allow net":    "allownet",
		"allow-net":    "allownet",
		"allow - net ": "allownet",
		"":             "",
	}
	for in, want := range tests {
		assert.Equal(t, want, CanonicalName(in), "canonical name of %q", in)
	}
}

package yesparser

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestUpsert(t *testing.T) {
	e := NewElement("window")
	e.Upsert(NewKeyVal("width", "320"))
	e.Upsert(NewKeyVal("height", "240"))
	e.Upsert(NewNamelessKeyVal("fullscreen"))
	require.Len(t, e.Args, 3)

	// A repeated key overwrites in place; position is unchanged.
	e.Upsert(NewKeyVal("width", "640"))
	require.Len(t, e.Args, 3)
	assert.Equal(t, "width", e.Args[0].Key)
	assert.Equal(t, "640", e.Args[0].Val)

	// Nameless values never match, even when equal.
	e.Upsert(NewNamelessKeyVal("fullscreen"))
	assert.Len(t, e.Args, 4)
}

func TestHasKeys(t *testing.T) {
	e := NewElement("x")
	e.Upsert(NewKeyVal("a", "1"))
	e.Upsert(NewKeyVal("b", "2"))
	e.Upsert(NewNamelessKeyVal("c"))

	assert.True(t, e.HasKey("a"))
	assert.False(t, e.HasKey("c")) // nameless args have no key
	assert.False(t, e.HasKey("missing"))

	// HasKeys requires every key to be present.
	assert.True(t, e.HasKeys([]string{"a", "b"}))
	assert.False(t, e.HasKeys([]string{"a", "missing"}))
	assert.True(t, e.HasKeys(nil))
}

func TestTypedGetters(t *testing.T) {
	e := NewElement("x")
	e.Upsert(NewKeyVal("n", "42"))
	e.Upsert(NewKeyVal("f", "1.5"))
	e.Upsert(NewKeyVal("b", "true"))
	e.Upsert(NewKeyVal("s", "hello"))

	n, ok := e.KeyValueInt("n")
	require.True(t, ok)
	assert.Equal(t, int64(42), n)
	_, ok = e.KeyValueInt("s")
	assert.False(t, ok)
	_, ok = e.KeyValueInt("missing")
	assert.False(t, ok)

	f, ok := e.KeyValueFloat("f")
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	b, ok := e.KeyValueBool("b")
	require.True(t, ok)
	assert.True(t, b)

	assert.Equal(t, int64(7), e.KeyValueIntOr("missing", 7))
	assert.Equal(t, int64(42), e.KeyValueIntOr("n", 7))
	assert.Equal(t, 0.25, e.KeyValueFloatOr("missing", 0.25))
	assert.Equal(t, true, e.KeyValueBoolOr("missing", true))
	assert.Equal(t, "hello", e.KeyValueOr("s", "fallback"))
	assert.Equal(t, "fallback", e.KeyValueOr("missing", "fallback"))

	// Unparseable values fall back too.
	assert.Equal(t, int64(7), e.KeyValueIntOr("s", 7))
}

func TestClone(t *testing.T) {
	e := NewElement("x")
	e.Upsert(NewKeyVal("a", "1"))

	clone := e.Clone()
	clone.Upsert(NewKeyVal("a", "2"))
	clone.Upsert(NewNamelessKeyVal("extra"))

	assert.Equal(t, "1", e.Args[0].Val)
	assert.Len(t, e.Args, 1)
	assert.Len(t, clone.Args, 2)
}

func TestKindString(t *testing.T) {
	std := NewStandard("window")
	std.UpsertKeyval(NewKeyVal("width", "320"))
	std.UpsertKeyval(NewNamelessKeyVal("fullscreen"))
	assert.Equal(t, "window width=320, fullscreen", std.String())

	attr := NewAttribute("default")
	assert.Equal(t, "@default", attr.String())

	global := NewGlobal("version")
	global.UpsertKeyval(NewNamelessKeyVal("1.0.2"))
	assert.Equal(t, "!version 1.0.2", global.String())

	comment := NewComment(" free text")
	assert.Equal(t, "# free text", comment.String())
}

func TestUpsertKeyvalTargetsInnerElement(t *testing.T) {
	std := NewStandard("x")
	std.Attrs = append(std.Attrs, NewElement("decor"))
	std.UpsertKeyval(NewKeyVal("a", "1"))

	assert.Len(t, std.Data.Args, 1)
	assert.Empty(t, std.Attrs[0].Args)
	assert.Equal(t, &std.Data, std.Inner())
}

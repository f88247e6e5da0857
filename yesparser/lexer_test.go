package yesparser

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestReadLineClassification(t *testing.T) {
	read := func(line string) (ElementKind, *LineError) {
		return ReadLine(1, line, nil)
	}

	el, err := read("window width=320")
	require.Nil(t, err)
	std, ok := el.(*Standard)
	require.True(t, ok)
	assert.Equal(t, "window", std.Data.Text)
	require.Len(t, std.Data.Args, 1)
	assert.Equal(t, "width", std.Data.Args[0].Key)
	assert.Equal(t, "320", std.Data.Args[0].Val)

	el, err = read("@default")
	require.Nil(t, err)
	attr, ok := el.(*Attribute)
	require.True(t, ok)
	assert.Equal(t, "default", attr.Data.Text)

	el, err = read("!version 1.0.2")
	require.Nil(t, err)
	global, ok := el.(*Global)
	require.True(t, ok)
	assert.Equal(t, "version", global.Data.Text)
	require.Len(t, global.Data.Args, 1)
	assert.True(t, global.Data.Args[0].Nameless())
	assert.Equal(t, "1.0.2", global.Data.Args[0].Val)

	el, err = read("# free text, = and @ ignored")
	require.Nil(t, err)
	comment, ok := el.(*Comment)
	require.True(t, ok)
	assert.Equal(t, " free text, = and @ ignored", comment.Data.Text)
	assert.Empty(t, comment.Data.Args)

	// Surrounding spaces trim before classification.
	el, err = read("   @decor   ")
	require.Nil(t, err)
	attr, ok = el.(*Attribute)
	require.True(t, ok)
	assert.Equal(t, "decor", attr.Data.Text)

	// Spaces between prefix and name are skipped.
	el, err = read("@  spaced")
	require.Nil(t, err)
	assert.Equal(t, "spaced", el.Inner().Text)

	// Quoted names unquote once.
	el, err = read(`"quoted" a=1`)
	require.Nil(t, err)
	assert.Equal(t, "quoted", el.Inner().Text)
}

func TestReadLineErrors(t *testing.T) {
	test := func(line string, code ErrorCode) func(*testing.T) {
		return func(t *testing.T) {
			el, err := ReadLine(7, line, nil)
			require.NotNil(t, err, "line %q", line)
			assert.Nil(t, el)
			assert.Equal(t, code, err.Code)
			assert.Equal(t, code.Message(), err.Message)
			assert.Equal(t, 7, err.Line)
		}
	}

	t.Run("", test("", EolNoData))
	t.Run("", test("    ", EolNoData))
	t.Run("", test("@", EolMissingAttribute))
	t.Run("", test("!", EolMissingGlobal))
	t.Run("", test(`""`, EolMissingElement))
	t.Run("", test("@@x", BadTokenPosAttribute))
	t.Run("", test("@!x", BadTokenPosAttribute))
	t.Run("", test("!!x", BadTokenPosBang))
	t.Run("", test("!@x", BadTokenPosBang))
	t.Run("", test(`el a="unclosed`, UnterminatedQuote))
}

func TestReadLineMacroLiteral(t *testing.T) {
	line := `!macro teardown_textbox(tb) = "call common.textbox_teardown tb="tb`
	el, err := ReadLine(1, line, NewLiteralSet())
	require.Nil(t, err)

	global, ok := el.(*Global)
	require.True(t, ok)
	assert.Equal(t, "macro", global.Data.Text)

	require.Len(t, global.Data.Args, 1)
	arg := global.Data.Args[0]
	assert.Equal(t, "teardown_textbox(tb)", arg.Key)
	assert.Equal(t, `"call common.textbox_teardown tb="tb`, arg.Val)
}

func TestReadLineHashAfterPrefix(t *testing.T) {
	// A hash after a prefix byte is not a comment; it starts the name.
	el, err := ReadLine(1, "@#tag", nil)
	require.Nil(t, err)
	attr, ok := el.(*Attribute)
	require.True(t, ok)
	assert.Equal(t, "#tag", attr.Data.Text)
}

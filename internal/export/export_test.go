package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNotes = `[Class] Player : Entity
[0x10] health : int
[0x14][S] mana : float
bad line
[Class] Enemy
[0x0] id : uint
`

func TestSelection_Sample(t *testing.T) {
	res, err := Selection(sampleNotes)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Blocks)
	assert.Equal(t, 3, res.Fields)
	assert.Equal(t, "Enemy", res.ClassName)

	want := "    // [Class] Player : Entity\n" +
		"    public readonly partial struct Player\n" +
		"    {\n" +
		"        public const uint health = 0x10; // int\n" +
		"        public const uint mana = 0x14; // float\n" +
		"    }\n" +
		"\n" +
		"    // [Class] Enemy\n" +
		"    public readonly partial struct Enemy\n" +
		"    {\n" +
		"        public const uint id = 0x0; // uint\n" +
		"    }\n" +
		"\n"
	assert.Equal(t, want, res.Text)
	assert.NotContains(t, res.Text, "bad line")
}

func TestSelection_NoDedupe(t *testing.T) {
	res, err := Selection("[Class] A\n[1] x : int\n[Class] A\n[2] y : int\n")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Blocks)
	assert.Equal(t, 2, strings.Count(res.Text, "public readonly partial struct A\n"))
}

func TestSelection_EmptyBlockStillRendered(t *testing.T) {
	res, err := Selection("[Class] Empty\n[Class] Full\n[8] v : int\n")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Blocks)
	assert.Contains(t, res.Text, "public readonly partial struct Empty\n    {\n    }\n")
	assert.Equal(t, "Full", res.ClassName)
}

func TestSelection_Empty(t *testing.T) {
	_, err := Selection("")
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestSelection_NothingProduced(t *testing.T) {
	res, err := Selection("[Class] Player\nnothing useful\n")
	assert.ErrorIs(t, err, ErrNothingProduced)
	assert.Empty(t, res.Text)
	assert.Equal(t, "Player", res.ClassName)

	_, err = Selection("[10] orphan : int\n")
	assert.ErrorIs(t, err, ErrNothingProduced)
}

func TestSelection_UnusableNameClosesBlock(t *testing.T) {
	res, err := Selection("[Class] A\n[1] x : int\n[Class] !!!\n[2] lost : int\n")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Blocks)
	assert.Equal(t, 1, res.Fields)
	assert.Equal(t, "A", res.ClassName)
	assert.NotContains(t, res.Text, "lost")
}

func TestDocument_Sample(t *testing.T) {
	res, err := Document(sampleNotes)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Count())
	assert.Equal(t, []string{"Player", "Enemy"}, res.Classes)
	assert.Equal(t, 3, res.Fields)

	want := "namespace SDK\n{\n" +
		"    // [Class] Player : Entity\n" +
		"    public readonly partial struct Player\n" +
		"    {\n" +
		"        public const uint health = 0x10; // int\n" +
		"        public const uint mana = 0x14; // float\n" +
		"    }\n" +
		"\n" +
		"    // [Class] Enemy\n" +
		"    public readonly partial struct Enemy\n" +
		"    {\n" +
		"        public const uint id = 0x0; // uint\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, res.Text)
}

func TestDocument_Dedupe(t *testing.T) {
	notes := "[Class] Game.Actor\n[1] a : int\n" +
		"[Class] Game_Actor\n[2] dropped : int\n" +
		"[Class] Other\n[3] c : int\n"

	res, err := Document(notes)
	require.NoError(t, err)

	assert.Equal(t, []string{"Game_Actor", "Other"}, res.Classes)
	assert.Equal(t, 2, res.Fields)
	assert.Equal(t, 1, strings.Count(res.Text, "struct Game_Actor\n"))
	assert.NotContains(t, res.Text, "dropped")
}

func TestDocument_TrailingDuplicate(t *testing.T) {
	res, err := Document("[Class] A\n[1] a : int\n[Class] A\n[2] b : int\n")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count())
	assert.True(t, strings.HasSuffix(res.Text, "    }\n\n}\n"))
}

func TestDocument_UnusableNameClosesBlock(t *testing.T) {
	res, err := Document("[Class] A\n[1] x : int\n[Class] !!!\n[2] y : int\n")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Count())
	assert.Equal(t, []string{"A"}, res.Classes)
	assert.Equal(t, 1, res.Fields)
	assert.Contains(t, res.Text, "x = 0x1;")
	assert.NotContains(t, res.Text, "y = 0x2;")
	assert.True(t, strings.HasSuffix(res.Text, "    }\n\n}\n"))
}

func TestDocument_DeclarationComment(t *testing.T) {
	res, err := Document("  junk [Class] Player : Entity  \n")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "    // [Class] Player : Entity\n")
}

func TestDocument_NoClasses(t *testing.T) {
	res, err := Document("just some text\n[10] orphan : int\n")
	require.NoError(t, err)

	assert.Equal(t, 0, res.Count())
	assert.Equal(t, "namespace SDK\n{\n}\n", res.Text)
}

func TestDocument_Empty(t *testing.T) {
	_, err := Document("")
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestDocument_CRLF(t *testing.T) {
	res, err := Document("[Class] A\r\n[1] a : int\r\n")
	require.NoError(t, err)
	assert.Contains(t, res.Text, "public const uint a = 0x1; // int\n")
	assert.NotContains(t, res.Text, "\r")
}

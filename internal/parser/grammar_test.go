package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_ClassStart(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		original string
		base     string
		want     string
	}{
		{"with base", "[Class] Player : Entity", "Player", "Entity", "Player"},
		{"no base", "[Class] Enemy", "Enemy", "", "Enemy"},
		{"brace after base", "[Class] Enemy : Actor {", "Enemy", "Actor", "Enemy"},
		{"leading text", "  0x1234 [Class] Game.World : Object", "Game.World", "Object", "Game_World"},
		{"no space after marker", "[Class]Weapon : Item", "Weapon", "Item", "Weapon"},
		{"digit first", "[Class] 3DView", "3DView", "", "_3DView"},
		{"empty name", "[Class]  : Base", "", "Base", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			require.Equal(t, KindClassStart, got.Kind)
			require.NotNil(t, got.Class)
			assert.Equal(t, tt.original, got.Class.OriginalName)
			assert.Equal(t, tt.base, got.Class.BaseName)
			assert.Equal(t, tt.want, got.Class.Name)
			assert.Equal(t, tt.line, got.Class.Line)
		})
	}
}

func TestClassify_Declaration(t *testing.T) {
	got := Classify("   [Class] Player : Entity   ")
	require.Equal(t, KindClassStart, got.Kind)
	assert.Equal(t, "[Class] Player : Entity", got.Class.Declaration)
}

func TestClassify_Field(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		offset string
		field  string
		typ    string
	}{
		{"plain", "[10] health : int", "10", "health", "int"},
		{"0x prefix", "[0x10] health : int", "10", "health", "int"},
		{"tag", "[0x14][S] mana : float", "14", "mana", "float"},
		{"c tag", "[1A0][C] owner : Actor*", "1A0", "owner", "Actor*"},
		{"lower hex kept", "[ab0] flags : uint8", "ab0", "flags", "uint8"},
		{"leading zero kept", "[0008] pad : char", "0008", "pad", "char"},
		{"indented", "\t  [20] items : TArray<Item>  ", "20", "items", "TArray<Item>"},
		{"tight colon", "[20] items:int", "20", "items", "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line)
			require.Equal(t, KindField, got.Kind)
			require.NotNil(t, got.Field)
			assert.Equal(t, tt.offset, got.Field.Offset)
			assert.Equal(t, tt.field, got.Field.Name)
			assert.Equal(t, tt.typ, got.Field.Type)
		})
	}
}

func TestClassify_Ignored(t *testing.T) {
	lines := []string{
		"",
		"bad line",
		"[] empty : int",
		"[0x] prefix only : int",
		"[zz] notHex : int",
		"[10] missingType :",
		"[10] missingType :    ",
		"[10] noColon int",
		"[10][Ptr] longTag : int",
		"// [10] comment : int",
		"[20]items : int",
		"[0x14][S]mana : float",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			got := Classify(line)
			assert.Equal(t, KindIgnored, got.Kind)
			assert.Nil(t, got.Class)
			assert.Nil(t, got.Field)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ignored", KindIgnored.String())
	assert.Equal(t, "class", KindClassStart.String())
	assert.Equal(t, "field", KindField.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestSplitLines(t *testing.T) {
	assert.Nil(t, SplitLines(""))
	assert.Equal(t, []string{"a", "b"}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a", "", "b"}, SplitLines("a\r\n\r\nb"))
	assert.Equal(t, []string{""}, SplitLines("\n"))
}

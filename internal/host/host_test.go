package host

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSource(t *testing.T) {
	path := notesFile(t, "one\ntwo\nthree\nfour\n")

	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{"whole", 0, 0, "one\ntwo\nthree\nfour\n"},
		{"middle", 2, 3, "two\nthree\n"},
		{"open end", 3, 0, "three\nfour\n"},
		{"open start", 0, 1, "one\n"},
		{"past end", 10, 0, ""},
		{"clamped", 4, 99, "four\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &FileSource{Path: path, From: tt.from, To: tt.to}
			got, err := src.SelectedText()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	src := &FileSource{Path: path}
	doc, err := src.DocumentText()
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\nthree\nfour\n", doc)
	assert.Equal(t, filepath.Dir(path), src.Dir())
}

func TestFileSource_Missing(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "missing.txt")}
	_, err := src.DocumentText()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		in       string
		from, to int
		wantErr  bool
	}{
		{"", 0, 0, false},
		{"3:10", 3, 10, false},
		{"5:", 5, 0, false},
		{":20", 0, 20, false},
		{"10:3", 0, 0, true},
		{"7", 0, 0, true},
		{"a:b", 0, 0, true},
		{"0:4", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, err := ParseRange(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.from, from)
			assert.Equal(t, tt.to, to)
		})
	}
}

func TestLogSink(t *testing.T) {
	path := notesFile(t, "namespace SDK\n{\n}\n")
	var out bytes.Buffer

	sink := &LogSink{Out: &out}
	require.NoError(t, sink.Open(path))
	require.NoError(t, sink.SetLanguageHint(path, "cs"))
	assert.Equal(t, "namespace SDK\n{\n}\n", out.String())

	assert.NoError(t, (&LogSink{}).Open(path))
}

func TestFixedAnswer(t *testing.T) {
	yes, err := FixedAnswer(true).ConfirmReplace("Player", 1, 2)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := FixedAnswer(false).ConfirmReplace("Player", 1, 2)
	require.NoError(t, err)
	assert.False(t, no)
}

func TestSurveyConfirm(t *testing.T) {
	_, err := NewSurveyConfirm(false).ConfirmReplace("Player", 3, 9)
	assert.ErrorIs(t, err, ErrNonInteractive)

	var asked string
	c := &SurveyConfirm{
		interactive: true,
		ask: func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
			asked = p.(*survey.Confirm).Message
			*(response.(*bool)) = true
			return nil
		},
	}
	ok, err := c.ConfirmReplace("Player", 3, 9)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, asked, "'Player'")
	assert.Contains(t, asked, "lines 3-9")

	boom := errors.New("interrupt")
	c.ask = func(survey.Prompt, interface{}, ...survey.AskOpt) error { return boom }
	_, err = c.ConfirmReplace("Player", 3, 9)
	assert.ErrorIs(t, err, boom)
}

func TestFixedSave(t *testing.T) {
	path, ok, err := (&FixedSave{Dir: "/tmp/out"}).SavePath("Player_Offsets.cs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/tmp/out", "Player_Offsets.cs"), path)

	path, ok, err = (&FixedSave{Dir: "/tmp/out", Path: "/x/y.cs"}).SavePath("Player_Offsets.cs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/x/y.cs", path)

	_, ok, err = (&FixedSave{Dir: "/tmp/out"}).SavePath("")
	require.NoError(t, err)
	assert.False(t, ok)
}

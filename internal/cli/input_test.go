package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_TrimsLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetSimpleText_EmptyInputIsError(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "p", &out)
	assert.Error(t, err)
}

func TestGetMultiline_JoinsUntilBlankLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\nleftover\n"))

	got, err := GetMultiline(r, "Content", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)

	// the reader stops at the blank line; later input is untouched
	rest, err := GetSimpleText(r, "next", &out)
	require.NoError(t, err)
	assert.Equal(t, "leftover", rest)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Contains(t, out.String(), "Enter password")
}

func TestGetTags_SplitsAndDropsEmpties(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("work, go , ,home\n"))

	tags, err := GetTags(r, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "go", "home"}, tags)
}

func TestGetTags_EmptyLineMeansNone(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	tags, err := GetTags(r, &out)
	require.NoError(t, err)
	assert.Nil(t, tags)
}

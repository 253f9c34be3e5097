package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	fm, body, had := Split(input)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---\n# Title\n")

	fm, body, had := Split(input)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestSplit_MissingClosingDelimiter_TreatsInputAsBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n# Title\n")

	fm, body, had := Split(input)
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, input, body)
}

func TestSplit_ClosingDelimiterAtEOF_SplitsWithEmptyBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\n---")

	fm, body, had := Split(input)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\n"), fm)
	require.Empty(t, body)
}

func TestSplit_EmptyBlockClosedAtEOF_SplitsAsHad(t *testing.T) {
	input := []byte("---\n---")

	fm, body, had := Split(input)
	require.True(t, had)
	require.Empty(t, fm)
	require.Empty(t, body)
}

func TestSplit_OpenDelimiterOnly_TreatsInputAsBody(t *testing.T) {
	input := []byte("---\n")

	_, body, had := Split(input)
	require.False(t, had)
	require.Equal(t, input, body)
}

func TestSplit_CRLF_SplitsFrontmatterAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Hello\r\n---\r\n# Title\r\n")

	fm, body, had := Split(input)
	require.True(t, had)
	require.Equal(t, []byte("title: Hello\r\n"), fm)
	require.Equal(t, []byte("# Title\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock_SplitsAsHadWithEmptyFrontmatter(t *testing.T) {
	input := []byte("---\n---\n# Title\n")

	fm, body, had := Split(input)
	require.True(t, had)
	require.Empty(t, fm)
	require.Equal(t, []byte("# Title\n"), body)
}

func TestExtract_CompleteFrontmatter_ReturnsMetaAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\nstinger: A greeting\n---\n## Hi\n")

	meta, body, err := Extract(input)
	require.NoError(t, err)
	require.Equal(t, "Hello", meta.Title)
	require.Equal(t, "A greeting", meta.Stinger)
	require.Equal(t, []byte("## Hi\n"), body)
}

func TestExtract_BodylessDocumentClosedAtEOF_ReturnsMeta(t *testing.T) {
	input := []byte("---\ntitle: Hello\nstinger: A greeting\n---")

	meta, body, err := Extract(input)
	require.NoError(t, err)
	require.Equal(t, "Hello", meta.Title)
	require.Equal(t, "A greeting", meta.Stinger)
	require.Empty(t, body)
}

func TestExtract_ExtraFields_AreIgnored(t *testing.T) {
	input := []byte("---\ntitle: Hello\nstinger: A greeting\ndraft: true\n---\nbody\n")

	meta, _, err := Extract(input)
	require.NoError(t, err)
	require.Equal(t, "Hello", meta.Title)
	require.Equal(t, "A greeting", meta.Stinger)
}

func TestExtract_NoFrontmatter_ReturnsMissingError(t *testing.T) {
	_, _, err := Extract([]byte("## Hi\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMissingFrontmatter))
}

func TestExtract_MissingTitle_ReturnsSchemaError(t *testing.T) {
	_, _, err := Extract([]byte("---\nstinger: A greeting\n---\nbody\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestExtract_MissingStinger_ReturnsSchemaError(t *testing.T) {
	_, _, err := Extract([]byte("---\ntitle: Hello\n---\nbody\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestExtract_EmptyFields_ReturnsSchemaError(t *testing.T) {
	_, _, err := Extract([]byte("---\ntitle: \"\"\nstinger: \"\"\n---\nbody\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestExtract_EmptyBlock_ReturnsSchemaError(t *testing.T) {
	_, _, err := Extract([]byte("---\n---\nbody\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestExtract_NonMappingBlock_ReturnsSchemaError(t *testing.T) {
	_, _, err := Extract([]byte("---\n- just\n- a\n- list\n---\nbody\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSchema))
}

func TestExtract_WrongFieldType_ReturnsSchemaError(t *testing.T) {
	_, _, err := Extract([]byte("---\ntitle:\n  nested: map\nstinger: ok\n---\nbody\n"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidSchema))
}

package yaml_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/rules"
	"github.com/fwojciec/prodspan/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Load("")

		require.NoError(t, err)
		assert.Equal(t, rules.DefaultLexicon().Anchors(), cfg.Lexicon(nil).Anchors())
	})

	t.Run("reads a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		data := "anchors: [sofa, coffee table]\nexclusions: [sale]\nlookahead: 20\nmaxWords: 8\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

		cfg, err := yaml.Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"sofa", "coffee table"}, cfg.Anchors)
		assert.Equal(t, []string{"sale"}, cfg.Exclusions)
		assert.Equal(t, 20, cfg.Lookahead)
		assert.Equal(t, 8, cfg.MaxWords)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Load(filepath.Join(t.TempDir(), "nope.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid file is EINVALID", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "lexicon.yaml")
		require.NoError(t, os.WriteFile(path, []byte("lookahead: -1\n"), 0o644))

		_, err := yaml.Load(path)

		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse(nil)

		require.NoError(t, err)
		assert.Equal(t, &yaml.Config{}, cfg)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("anchor: [sofa]\n"))

		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("anchors: [sofa\n"))

		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
	})

	t.Run("rejects negative max words", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.Parse([]byte("maxWords: -3\n"))

		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
	})
}

func TestConfig_Lexicon(t *testing.T) {
	t.Parallel()

	t.Run("extra terms extend the defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte("extraAnchors: [chaise longue]\nextraExclusions: [clearance]\n"))
		require.NoError(t, err)

		lex := cfg.Lexicon(nil)

		assert.Contains(t, lex.Anchors(), "chaise longue")
		assert.Contains(t, lex.Anchors(), "sofa")
		assert.True(t, lex.IsExclusion("clearance"))
		assert.True(t, lex.IsExclusion("add to cart"))
		assert.True(t, lex.IsAttribute("walnut"))
	})

	t.Run("explicit lists replace the defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.Parse([]byte("anchors: [lamp]\nexclusions: [sale]\nattributes: [brass]\n"))
		require.NoError(t, err)

		lex := cfg.Lexicon(nil)

		assert.Equal(t, []string{"lamp"}, lex.Anchors())
		assert.False(t, lex.IsExclusion("add to cart"))
		assert.True(t, lex.IsAttribute("brass"))
		assert.False(t, lex.IsAttribute("walnut"))
	})

	t.Run("logs skipped anchors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		cfg, err := yaml.Parse([]byte("anchors: [lamp, \"-rug\"]\n"))
		require.NoError(t, err)

		lex := cfg.Lexicon(logger)

		assert.Equal(t, []string{"lamp"}, lex.Anchors())
		assert.Contains(t, buf.String(), "skipping anchor")
	})
}

func TestConfig_Annotator(t *testing.T) {
	t.Parallel()

	cfg, err := yaml.Parse([]byte("anchors: [lamp]\nexclusions: [the]\nmaxWords: 1\n"))
	require.NoError(t, err)

	a := cfg.Annotator(nil)
	text := "Big Brass Floor Lamp"

	assert.Equal(t, []string{"Floor Lamp"}, prodspan.SpanTexts(text, a.Annotate(text)))
}

package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/prodspan"
	main "github.com/fwojciec/prodspan/cmd/prodspan"
	"github.com/fwojciec/prodspan/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annotatedRecords = `[
	{"text": "Milo Sofa", "entities": [[0, 9, "PRODUCT"], [0, 4, "PRODUCT"]]},
	{"text": "Oslo Chair", "entities": [[0, 10, "BRAND"]]},
	{"text": "Hamar Plant Stand", "entities": [[6, 40, "PRODUCT"]]},
	{"text": "Luna Bedside Table", "entities": [[0, 18, "PRODUCT"]]},
	{"text": "Nordic Coffee Table", "entities": [[0, 19, "PRODUCT"]]},
	{"text": "", "entities": []},
	{"text": "Broken", "entities": [["0", 6, "PRODUCT"]]}
]`

func TestSplitCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("cleans and splits records", func(t *testing.T) {
		t.Parallel()

		input := writeFile(t, "annotated.json", annotatedRecords)
		outDir := t.TempDir()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
		}
		cmd := &main.SplitCmd{Input: input, Dev: 0.2, Seed: 42, OutDir: outDir}

		err := cmd.Run(deps)

		require.NoError(t, err)
		train, _, err := fs.ReadAnnotatedRecords(filepath.Join(outDir, "train.json"))
		require.NoError(t, err)
		dev, _, err := fs.ReadAnnotatedRecords(filepath.Join(outDir, "dev.json"))
		require.NoError(t, err)
		assert.Len(t, train, 4)
		assert.Len(t, dev, 1)

		for _, rec := range append(train, dev...) {
			require.NoError(t, prodspan.ValidateEntities(rec.Text, rec.Entities, false))
			for _, ent := range rec.Entities {
				assert.Equal(t, prodspan.LabelProduct, ent.Label)
			}
		}

		out := stdout.String()
		assert.Contains(t, out, "Cleaned 6 records with 6 entities: dropped 1 with another label, 1 out of bounds, 1 overlapping")
		assert.Contains(t, out, "Skipped 1 records without text")
		assert.Contains(t, out, "Wrote 4 train records")
		assert.Contains(t, out, "Wrote 1 dev records")
		assert.Contains(t, stderr.String(), "skip: record 6:")
	})

	t.Run("produces the same split for the same seed", func(t *testing.T) {
		t.Parallel()

		input := writeFile(t, "annotated.json", annotatedRecords)
		run := func() []byte {
			outDir := t.TempDir()
			deps := &main.Dependencies{
				Ctx:    context.Background(),
				Stdout: &bytes.Buffer{},
				Stderr: &bytes.Buffer{},
			}
			cmd := &main.SplitCmd{Input: input, Dev: 0.4, Seed: 7, OutDir: outDir}
			require.NoError(t, cmd.Run(deps))
			data, err := os.ReadFile(filepath.Join(outDir, "dev.json"))
			require.NoError(t, err)
			return data
		}

		assert.Equal(t, run(), run())
	})

	t.Run("rejects an out of range dev fraction", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}
		cmd := &main.SplitCmd{Input: writeFile(t, "annotated.json", annotatedRecords), Dev: 1, OutDir: t.TempDir()}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
		assert.Contains(t, stderr.String(), "dev fraction must be between 0 and 1")
	})
}

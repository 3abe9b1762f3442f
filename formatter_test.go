package prodspan_test

import (
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntities(t *testing.T) {
	t.Parallel()

	t.Run("formats one entity per line", func(t *testing.T) {
		t.Parallel()

		rec := prodspan.AnnotatedRecord{
			Text: "Oak dining table and matching oak chair",
			Entities: []prodspan.Entity{
				{Start: 0, End: 16, Label: prodspan.LabelProduct},
				{Start: 34, End: 39, Label: prodspan.LabelProduct},
			},
		}

		result := prodspan.FormatEntities(rec)

		assert.Equal(t, "[0:16] Oak dining table\n[34:39] chair", result)
	})

	t.Run("returns empty string without entities", func(t *testing.T) {
		t.Parallel()

		result := prodspan.FormatEntities(prodspan.AnnotatedRecord{Text: "Shop"})

		assert.Empty(t, result)
	})
}

func TestFormatProducts(t *testing.T) {
	t.Parallel()

	t.Run("lists unique names", func(t *testing.T) {
		t.Parallel()

		result := prodspan.FormatProducts([]string{"Milo Sofa", "Oslo Chair", "Milo Sofa"})

		assert.Equal(t, "- Milo Sofa\n- Oslo Chair", result)
	})

	t.Run("returns empty string for no names", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, prodspan.FormatProducts(nil))
	})
}

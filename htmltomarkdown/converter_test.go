package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/prodspan"
	"github.com/fwojciec/prodspan/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Markdown(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and lists", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Sofas</h1><ul><li>Milo Sofa</li><li>Oslo Sofa</li></ul>`

		md, err := htmltomarkdown.NewConverter().Markdown(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Sofas")
		assert.Contains(t, md, "- Milo Sofa")
		assert.Contains(t, md, "- Oslo Sofa")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>See the <a href="https://shop.example/products/milo">Milo Sofa</a> today.</p>`

		md, err := htmltomarkdown.NewConverter().Markdown(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Milo Sofa](https://shop.example/products/milo)")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Markdown("")

		require.Error(t, err)
		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
	})
}

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("puts each block on its own line", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Milo Sofa</h1><p>Deep <strong>three seater</strong> sofa.</p><ul><li>Oak</li><li>Walnut</li></ul>`

		text, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Milo Sofa\nDeep three seater sofa.\nOak\nWalnut", text)
	})

	t.Run("keeps link text and drops targets", func(t *testing.T) {
		t.Parallel()

		html := `<p>Pair it with the <a href="/products/oslo-chair">Oslo Chair</a>.</p>`

		text, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Pair it with the Oslo Chair.", text)
	})

	t.Run("drops images", func(t *testing.T) {
		t.Parallel()

		html := `<p><img src="/milo.jpg" alt="Milo"> Milo Sofa</p>`

		text, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Milo Sofa", text)
	})

	t.Run("flattens table rows", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Product</th><th>Finish</th></tr></thead><tbody><tr><td>Oslo Chair</td><td>Walnut</td></tr></tbody></table>`

		text, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Product Finish\nOslo Chair Walnut", text)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		assert.Equal(t, prodspan.EINVALID, prodspan.ErrorCode(err))
	})
}

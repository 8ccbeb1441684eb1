package goquery_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/artdoc"
	"github.com/fwojciec/artdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ artdoc.PlaceholderService = (*goquery.PlaceholderService)(nil)

func references(t *testing.T, document string) []string {
	t.Helper()

	placeholders, err := goquery.FindPlaceholders(document)
	require.NoError(t, err)

	refs := make([]string, len(placeholders))
	for i, p := range placeholders {
		refs[i] = p.Reference
	}
	return refs
}

func TestExtractCaptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     []string
	}{
		{
			name:     "empty document",
			document: "",
			want:     []string{},
		},
		{
			name:     "no images",
			document: "<h1>Title</h1><p>Some text.</p>",
			want:     []string{},
		},
		{
			name:     "captions in document order",
			document: `<p>A</p><img alt="sunset"><img alt=""><img alt="city">`,
			want:     []string{"sunset", "", "city"},
		},
		{
			name:     "missing alt is empty string",
			document: `<img src="a.jpg"><img alt="b">`,
			want:     []string{"", "b"},
		},
		{
			name:     "duplicates are kept",
			document: `<img alt="cat"><img alt="cat">`,
			want:     []string{"cat", "cat"},
		},
		{
			name: "nested images use pre-order",
			document: `<figure><img alt="first"><figcaption>x</figcaption></figure>
<div><section><img alt="second"></section><img alt="third"></div>`,
			want: []string{"first", "second", "third"},
		},
		{
			name:     "full document",
			document: `<!DOCTYPE html><html><head><title>T</title></head><body><img alt="one"></body></html>`,
			want:     []string{"one"},
		},
		{
			name:     "malformed markup is tolerated",
			document: `<div><p>unclosed <img alt="broken" <b>bold</div></p><img alt="after">`,
			want:     []string{"broken", "after"},
		},
		{
			name:     "entities are decoded",
			document: `<img alt="fish &amp; chips">`,
			want:     []string{"fish & chips"},
		},
		{
			name:     "image inside noscript counts",
			document: `<noscript><img alt="n"></noscript><img alt="m">`,
			want:     []string{"n", "m"},
		},
		{
			name:     "image inside noscript counts in full document",
			document: `<html><body><noscript><img alt="n"></noscript><img alt="m"></body></html>`,
			want:     []string{"n", "m"},
		},
		{
			name:     "commented out image is ignored",
			document: `<!-- <img alt="hidden"> --><img alt="shown">`,
			want:     []string{"shown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := goquery.ExtractCaptions(tt.document)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCaptions_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	document := `<p>A</p><img alt="sunset" src="image_placeholder_1.jpg">`
	original := strings.Clone(document)

	_, err := goquery.ExtractCaptions(document)

	require.NoError(t, err)
	assert.Equal(t, original, document)
}

func TestFindPlaceholders(t *testing.T) {
	t.Parallel()

	document := `<img src="image_placeholder_1.jpg" alt="a lighthouse"><img alt="no src">`

	got, err := goquery.FindPlaceholders(document)

	require.NoError(t, err)
	assert.Equal(t, []artdoc.Placeholder{
		{Caption: "a lighthouse", Reference: "image_placeholder_1.jpg"},
		{Caption: "no src", Reference: ""},
	}, got)
}

func TestPlaceholderService_Find(t *testing.T) {
	t.Parallel()

	got, err := goquery.NewPlaceholderService().Find(`<p>x</p><img src="a.jpg" alt="first"><img alt="second">`)

	require.NoError(t, err)
	assert.Equal(t, []artdoc.Placeholder{
		{Caption: "first", Reference: "a.jpg"},
		{Caption: "second", Reference: ""},
	}, got)
}

func TestResolvePlaceholders(t *testing.T) {
	t.Parallel()

	t.Run("resolves images inside noscript in position", func(t *testing.T) {
		t.Parallel()

		document := `<noscript><img src="p1" alt="n"></noscript><img src="p2" alt="m">`

		got, err := goquery.ResolvePlaceholders(document, []string{"one.png", "two.png"})

		require.NoError(t, err)
		assert.Equal(t, []string{"one.png", "two.png"}, references(t, got))
	})

	t.Run("replaces references in document order", func(t *testing.T) {
		t.Parallel()

		document := `<img src="p1.jpg" alt="a"><div><img src="p2.jpg" alt="b"></div><img src="p3.jpg" alt="c">`

		got, err := goquery.ResolvePlaceholders(document, []string{"a.png", "b.png", "c.png"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "b.png", "c.png"}, references(t, got))
	})

	t.Run("no references leaves document unchanged", func(t *testing.T) {
		t.Parallel()

		document := `<img src="p1.jpg" alt="a"><img src="p2.jpg" alt="b">`

		got, err := goquery.ResolvePlaceholders(document, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"p1.jpg", "p2.jpg"}, references(t, got))
	})

	t.Run("shorter list leaves trailing images untouched", func(t *testing.T) {
		t.Parallel()

		document := `<img src="p1.jpg" alt="a"><img src="p2.jpg" alt="b"><img src="p3.jpg" alt="c">`

		got, err := goquery.ResolvePlaceholders(document, []string{"a.png"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", "p2.jpg", "p3.jpg"}, references(t, got))
	})

	t.Run("longer list ignores extra references", func(t *testing.T) {
		t.Parallel()

		document := `<img src="p1.jpg" alt="a">`

		got, err := goquery.ResolvePlaceholders(document, []string{"a.png", "b.png", "c.png"})

		require.NoError(t, err)
		assert.Equal(t, []string{"a.png"}, references(t, got))
		assert.NotContains(t, got, "b.png")
	})

	t.Run("empty reference skips its image", func(t *testing.T) {
		t.Parallel()

		document := `<p>A</p><img alt="sunset" src="image_placeholder_1.jpg"><img alt="" src="image_placeholder_2.jpg"><img alt="city" src="image_placeholder_3.jpg">`

		got, err := goquery.ResolvePlaceholders(document, []string{"sunset.jpg", "", "city.jpg"})

		require.NoError(t, err)
		assert.Equal(t, []string{"sunset.jpg", "image_placeholder_2.jpg", "city.jpg"}, references(t, got))
	})

	t.Run("adds src to images without one", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.ResolvePlaceholders(`<img alt="x">`, []string{"x.png"})

		require.NoError(t, err)
		assert.Equal(t, []string{"x.png"}, references(t, got))
	})

	t.Run("captions are preserved", func(t *testing.T) {
		t.Parallel()

		document := `<h1>T</h1><img alt="sunset"><p><img alt=""></p><img alt="city &amp; river">`
		before, err := goquery.ExtractCaptions(document)
		require.NoError(t, err)

		resolved, err := goquery.ResolvePlaceholders(document, []string{"1.png", "2.png", "3.png"})
		require.NoError(t, err)

		after, err := goquery.ExtractCaptions(resolved)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("fragment output has no document wrappers", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.ResolvePlaceholders(`<p>A</p><img alt="a">`, []string{"a.png"})

		require.NoError(t, err)
		assert.NotContains(t, got, "<html>")
		assert.NotContains(t, got, "<body>")
		assert.True(t, strings.HasPrefix(got, "<p>A</p>"))
	})

	t.Run("full document keeps doctype and head", func(t *testing.T) {
		t.Parallel()

		document := `<!DOCTYPE html><html><head><title>T</title></head><body><img alt="a" src="p.jpg"></body></html>`

		got, err := goquery.ResolvePlaceholders(document, []string{"a.png"})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
		assert.Contains(t, got, "<title>T</title>")
		assert.Equal(t, []string{"a.png"}, references(t, got))
	})

	t.Run("document without images is returned intact", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.ResolvePlaceholders("<h1>Title</h1><p>Body</p>", []string{"a.png"})

		require.NoError(t, err)
		assert.Equal(t, "<h1>Title</h1><p>Body</p>", got)
	})

	t.Run("does not mutate the reference list", func(t *testing.T) {
		t.Parallel()

		refs := []string{"a.png", ""}

		_, err := goquery.ResolvePlaceholders(`<img alt="a"><img alt="b">`, refs)

		require.NoError(t, err)
		assert.Equal(t, []string{"a.png", ""}, refs)
	})
}

func TestResolvePlaceholders_EndToEndScenario(t *testing.T) {
	t.Parallel()

	document := `<p>A</p><img alt="sunset"><img alt=""><img alt="city">`

	captions, err := goquery.ExtractCaptions(document)
	require.NoError(t, err)
	require.Equal(t, []string{"sunset", "", "city"}, captions)

	// Only non-empty captions get generated; positions are preserved with
	// empty entries for the skipped ones.
	refs := make([]string, len(captions))
	for i, c := range captions {
		if c != "" {
			refs[i] = c + ".jpg"
		}
	}

	got, err := goquery.ResolvePlaceholders(document, refs)

	require.NoError(t, err)
	assert.Equal(t, []string{"sunset.jpg", "", "city.jpg"}, references(t, got))
}

func TestPlaceholderService_ConcurrentUse(t *testing.T) {
	t.Parallel()

	svc := goquery.NewPlaceholderService()
	document := `<img alt="a"><img alt="b">`

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			captions, err := svc.Extract(document)
			assert.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, captions)

			out, err := svc.Resolve(document, []string{"1.png", "2.png"})
			assert.NoError(t, err)
			assert.Contains(t, out, `src="2.png"`)
		}()
	}
	wg.Wait()
}

func TestPlaceholderService_Deterministic(t *testing.T) {
	t.Parallel()

	svc := goquery.NewPlaceholderService()
	document := `<section><img alt="a" src="x"><p>t</p><img alt="b"></section>`

	first, err := svc.Resolve(document, []string{"1.png"})
	require.NoError(t, err)
	second, err := svc.Resolve(document, []string{"1.png"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

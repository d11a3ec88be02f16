package goquery_test

import (
	"testing"

	"github.com/fwojciec/htmlinspect"
	"github.com/fwojciec/htmlinspect/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests run the collectors over real parsed documents, end to end.

func TestInspect_References(t *testing.T) {
	t.Parallel()

	t.Run("dedup preserves first-seen document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<img src="a.png">
			<img src="b.png">
			<img src="a.png">
			<img src="c.png">
		</body></html>`
		doc, err := goquery.New(html, "https://ex.com/")
		require.NoError(t, err)
		in := htmlinspect.NewInspector(doc)

		assert.Equal(t, []string{
			"https://ex.com/a.png",
			"https://ex.com/b.png",
			"https://ex.com/c.png",
		}, in.ReferencesFor("img", "src", nil))
	})

	t.Run("every emitted URL is absolute", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/one">1</a>
			<a href="two.html">2</a>
			<a href="//cdn.ex.com/three">3</a>
			<a href="mailto:joe@ex.com">4</a>
			<script src="app.js"></script>
			<form action="submit"></form>
		</body></html>`
		doc, err := goquery.New(html, "https://ex.com/sub/")
		require.NoError(t, err)
		in := htmlinspect.NewInspector(doc)

		table := in.References(nil)
		assert.Equal(t, htmlinspect.ReferenceTable{
			"a_href": []string{
				"https://ex.com/one",
				"https://ex.com/sub/two.html",
				"https://cdn.ex.com/three",
				"mailto:joe@ex.com",
			},
			"script_src":  []string{"https://ex.com/sub/app.js"},
			"form_action": []string{"https://ex.com/sub/submit"},
		}, table)
	})

	t.Run("base href steers resolution", func(t *testing.T) {
		t.Parallel()

		html := `<html>
			<head><base href="https://ex.com/sub/"></head>
			<body><a href="page.html">p</a></body>
		</html>`
		doc, err := goquery.New(html, "https://ex.com/")
		require.NoError(t, err)
		in := htmlinspect.NewInspector(doc)

		assert.Equal(t, []string{"https://ex.com/sub/page.html"},
			in.ReferencesFor("a", "href", nil))
	})

	t.Run("bad base href falls back to the location", func(t *testing.T) {
		t.Parallel()

		html := `<html>
			<head><base href="not a url"></head>
			<body><a href="page.html">p</a></body>
		</html>`
		doc, err := goquery.New(html, "https://ex.com/a/")
		require.NoError(t, err)
		require.NotEmpty(t, doc.Warnings())
		in := htmlinspect.NewInspector(doc)

		assert.Equal(t, []string{"https://ex.com/a/page.html"},
			in.ReferencesFor("a", "href", nil))
	})
}

func TestInspect_Links(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<link rel="stylesheet" href="style.css" media="screen">
		<link rel="icon" href="/favicon.ico">
	</head><body>
		<a rel="nofollow" href="https://other.example/">out</a>
	</body></html>`
	doc, err := goquery.New(html, "https://ex.com/sub/")
	require.NoError(t, err)
	in := htmlinspect.NewInspector(doc)

	links := in.Links()
	require.Len(t, links, 3, "rel-bearing elements outside <head> count too")
	assert.Equal(t, htmlinspect.Attrs{"href": "https://ex.com/sub/style.css", "media": "screen"},
		links["stylesheet"][0])
	assert.Equal(t, htmlinspect.Attrs{"href": "https://ex.com/favicon.ico"},
		links["icon"][0])
	assert.Equal(t, "https://other.example/", links["nofollow"][0]["href"])
}

func TestInspect_Meta(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<meta charset="UTF-8">
		<meta http-equiv="Content-Type" content="text/html">
		<meta name="author" content="John">
		<meta name="twitter:card" content="summary">
	</head></html>`
	doc, err := goquery.New(html, "https://ex.com/")
	require.NoError(t, err)
	in := htmlinspect.NewInspector(doc)

	classic := in.MetaClassic()
	assert.Equal(t, "UTF-8", classic.Charset)
	assert.Equal(t, map[string]string{"content-type": "text/html"}, classic.HTTPEquiv)
	assert.Equal(t, map[string]string{"author": "John"}, classic.Name)

	assert.Equal(t, htmlinspect.MetaNames{
		"author":       "John",
		"twitter:card": "summary",
	}, in.MetaNames())

	assert.Len(t, in.MetaRaw(), 4)
}

func TestInspect_OpenGraph(t *testing.T) {
	t.Parallel()

	html := `<html><head>
		<meta property="og:title" content="title text">
		<meta property="og:image" content="x">
		<meta property="og:image" content="y">
	</head></html>`
	doc, err := goquery.New(html, "https://ex.com/")
	require.NoError(t, err)
	in := htmlinspect.NewInspector(doc)

	assert.Equal(t, htmlinspect.OpenGraph{
		"og:title": "title text",
		"og:image": []string{"x", "y"},
	}, in.OpenGraph())
}

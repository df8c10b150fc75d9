package note

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNote_Preview(t *testing.T) {
	n := Note{Content: "A short note"}
	assert.Equal(t, "A short note", n.Preview(100))

	n.Content = strings.Repeat("a", 120)
	got := n.Preview(100)
	assert.Len(t, got, 100)
	assert.True(t, strings.HasSuffix(got, "..."))

	n.Content = "  padded  "
	assert.Equal(t, "padded", n.Preview(100))

	n.Content = "   "
	assert.Equal(t, "", n.Preview(100))
}

func TestNote_Preview_MultibyteSafe(t *testing.T) {
	n := Note{Content: strings.Repeat("é", 50)}
	got := n.Preview(10)
	assert.Equal(t, strings.Repeat("é", 7)+"...", got)
}

func TestNote_RenderedContent_Markdown(t *testing.T) {
	n := Note{Content: "**Signed** the _deal_"}
	html := n.RenderedContent()

	assert.Contains(t, html, "<strong>Signed</strong>")
	assert.Contains(t, html, "<em>deal</em>")
}

func TestNote_RenderedContent_KeepsLinks(t *testing.T) {
	n := Note{Content: "[contract](https://example.com/contract.pdf)"}
	html := n.RenderedContent()

	assert.Contains(t, html, `href="https://example.com/contract.pdf"`)
	assert.Contains(t, html, ">contract</a>")
}

func TestNote_RenderedContent_StripsScripts(t *testing.T) {
	n := Note{Content: "hello <script>alert(1)</script> world"}
	html := n.RenderedContent()

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}

func TestValidNotableType(t *testing.T) {
	assert.True(t, ValidNotableType("Deal"))
	assert.True(t, ValidNotableType("Prospect"))
	assert.False(t, ValidNotableType("deal"))
	assert.False(t, ValidNotableType("Activity"))
}

package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "plain text stays", StripHTML("plain text stays"))
	assert.Equal(t, "", StripHTML(""))

	got := StripHTML("<p>Senior <b>Go</b> engineer</p><script>evil()</script>")
	assert.Contains(t, got, "Senior Go engineer")
	assert.NotContains(t, got, "evil")
	assert.NotContains(t, got, "<")
}

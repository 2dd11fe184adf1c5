package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableGenerator(t *testing.T) {
	g := TableGenerator{FrontendURL: "https://cafe.example/"}

	png, target, err := g.Generate("Table 4")
	require.NoError(t, err)
	assert.Equal(t, "https://cafe.example/menu?table=Table+4", target)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, _, err = g.Generate("  ")
	assert.Error(t, err)
}

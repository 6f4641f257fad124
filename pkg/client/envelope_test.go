package client

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/burrow/pkg/xmltree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_SplitsMessages(t *testing.T) {
	src := newEnvelope(strings.NewReader(`<protocol><joined roomId="a"/><data class="x"><protocol/></data></protocol>`))

	first, err := xmltree.ReadOne(src)
	require.NoError(t, err)
	assert.Equal(t, "joined", first.Name)

	second, err := xmltree.ReadOne(src)
	require.NoError(t, err)
	assert.Equal(t, "data", second.Name)
	require.Len(t, second.Children, 1)
	assert.Equal(t, "protocol", second.Children[0].Name)

	_, err = xmltree.ReadOne(src)
	var streamErr *xmltree.StreamError
	require.ErrorAs(t, err, &streamErr)
	assert.True(t, streamErr.AtBoundary())
	assert.ErrorIs(t, err, io.EOF)
}

func TestEnvelope_WithoutProtocolElement(t *testing.T) {
	src := newEnvelope(strings.NewReader(`<joined roomId="a"/>`))

	tok, err := src.Token()
	require.NoError(t, err)
	start, ok := tok.(xml.StartElement)
	require.True(t, ok)
	assert.Equal(t, "joined", start.Name.Local)
}

func TestEnvelope_DroppedConnection(t *testing.T) {
	src := newEnvelope(strings.NewReader(`<protocol><joined roomId="a"/>`))

	_, err := xmltree.ReadOne(src)
	require.NoError(t, err)

	_, err = src.Token()
	assert.Equal(t, io.EOF, err)
}

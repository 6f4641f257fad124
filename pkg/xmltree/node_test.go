package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_Lookups(t *testing.T) {
	n := NewNode("red")
	n.AddAttr("index", "4")
	cards := NewNode("cards")
	cards.Append(NewNode("card"))
	n.Append(NewNode("other"))
	n.Append(cards)

	v, ok := n.Attr("index")
	assert.True(t, ok)
	assert.Equal(t, "4", v)

	_, ok = n.Attr("missing")
	assert.False(t, ok)

	c, ok := n.Child("cards")
	assert.True(t, ok)
	assert.Same(t, cards, c)

	assert.Len(t, n.ChildrenOf("cards"), 1)
	assert.Nil(t, n.ChildrenOf("fields"))
}

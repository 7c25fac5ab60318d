package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleContainsContextAndQuestion(t *testing.T) {
	p := Assemble([]string{"Library hours: 9am-9pm"}, "What are the library hours?")

	assert.Contains(t, p, "Library hours: 9am-9pm")
	assert.Contains(t, p, "What are the library hours?")
	assert.Contains(t, p, `reply with "I don't know"`)
}

func TestAssemblePreservesRetrievalOrder(t *testing.T) {
	p := Assemble([]string{"most relevant", "second", "third"}, "q")

	first := strings.Index(p, "most relevant")
	second := strings.Index(p, "second")
	third := strings.Index(p, "third")
	require.True(t, first >= 0 && second >= 0 && third >= 0)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestAssembleJoinsWithParagraphSeparator(t *testing.T) {
	p := Assemble([]string{"a", "b"}, "q")
	assert.Contains(t, p, "a\n\nb")
}

func TestAssembleEmptyContext(t *testing.T) {
	p := Assemble(nil, "anything indexed yet?")
	assert.Contains(t, p, "Context:\n\n")
	assert.Contains(t, p, "anything indexed yet?")
}

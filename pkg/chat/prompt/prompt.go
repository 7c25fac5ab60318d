package prompt

import (
	"fmt"
	"strings"
)

// template is static with exactly two substitution points. The wording
// carries the whole grounding policy: small talk is answered naturally,
// factual questions only from context, and anything unsupported gets the
// fixed "I don't know" sentinel. Nothing downstream re-validates the model's
// output against the context.
const template = `You are a helpful college assistant.
If the user greets you or says something pleasant (like "thanks", "hello", "goodbye"), respond politely and naturally.
For factual questions, answer ONLY using the provided context.
If the answer to a factual question is not present in the context, reply with "I don't know".

Context:
%s

Question:
%s
`

// Assemble joins the retrieved chunks, most relevant first, and fills the
// grounding template.
func Assemble(contextChunks []string, question string) string {
	return fmt.Sprintf(template, strings.Join(contextChunks, "\n\n"), question)
}

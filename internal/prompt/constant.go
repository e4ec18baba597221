package prompt

// DefaultMaxContextChars bounds the rendered snippets embedded in a QA prompt.
const DefaultMaxContextChars = 6000

const noContextTemplate = "You are my personal knowledge assistant.\n\n" +
	"User question:\n%s\n\n" +
	"No relevant context snippets were found in my personal knowledge base.\n" +
	"If you cannot confidently answer, say you are unsure.\n"

const qaTemplate = `You are my personal knowledge assistant.

You MUST use ONLY the context snippets below to answer the question.
If the answer is unclear or not present in the context, say that you are unsure
and do NOT hallucinate.

Context:
--------
%s

User question:
--------------
%s

Answer in a clear, step-by-step way, using simple language and concrete examples.
If relevant, reference the snippets you used by their [index] (e.g., [0], [2]).
`

const freeChatTemplate = "You are my personal assistant. Answer the following question as helpfully and clearly as possible:\n\n%s"

const snippetSeparator = "\n\n"

package usecase

const batchPromptTemplate = `You are summarizing my personal technical notes.

You will be given a chunk of my notes. Your job is to:
- Extract the main ideas and concepts
- Group related ideas together
- Use simple, clear language
- Keep it relatively concise but informative

IMPORTANT:
- Do NOT explain your reasoning
- Do NOT think step-by-step
- Directly output the final summary as bullet points

Here is the text to summarize:

---------------- BEGIN TEXT ----------------
%s
---------------- END TEXT ----------------

Now write a bullet-point summary of the key ideas:
`

const finalPromptTemplate = `You are summarizing my entire knowledge base from multiple partial summaries.

You will be given several summaries that were generated from different parts of my notes.
Your job is to:
- Merge them into a single coherent overview
- Remove duplicates and redundancies
- Organize the ideas logically
- Keep it clear, high-level, and easy to review later

IMPORTANT:
- Do NOT explain your reasoning
- Do NOT show intermediate steps
- Directly output the final clean summary

Here are the partial summaries:

---------------- PARTIAL SUMMARIES ----------------
%s
---------------- END PARTIAL SUMMARIES ----------------

Now write a single, well-structured summary of my notes:
`

const batchSeparator = "\n\n"

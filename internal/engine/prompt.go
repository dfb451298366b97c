package engine

// Stage framing templates. Data only, no logic.

// roleSystemPrompt frames a worker role for the backend.
// Args: role name, backstory, goal.
const roleSystemPrompt = `You are %s. %s
Your personal goal is: %s

Work only from the material you are given. Reply with the final answer text only.`

// expectedOutputSection states what the stage must return.
// Args: expected output.
const expectedOutputSection = `

This is the expected criteria for your final answer: %s
You MUST return the actual complete content as the final answer, not a summary.`

// contextSection introduces prior stage outputs, in order.
const contextSection = `

This is the context you're working with:
`

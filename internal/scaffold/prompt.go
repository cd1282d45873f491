package scaffold

import "fmt"

const systemPrompt = "You are a helpful AI assistant that generates project scaffolds based on user prompts and specific formatting instructions."

const userPromptTemplate = `You are a project scaffold generator AI.

A user wants a new "%s" project with the following description:

---
"%s"
---

Please create a **multi-file project** for that description. Include every
file a developer needs to start working: source files, an entry point, and a
package manifest (package.json or equivalent for the project type) listing
all dependencies used by the generated code.

Respond with a single JSON object mapping each relative file path to that
file's full content, in the following format:

` + "```json" + `
{
  "package.json": "...",
  "src/App.tsx": "...",
  "src/components/Navbar.tsx": "..."
}
` + "```" + `

Only include the JSON object — no extra explanation. Your output will be
parsed and saved as project files.`

// buildPrompt renders the system instructions and user prompt for one
// generation request.
func buildPrompt(projectType, description string) (system, user string) {
	return systemPrompt, fmt.Sprintf(userPromptTemplate, projectType, description)
}

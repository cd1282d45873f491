package scaffold

import (
	"encoding/json"
	"fmt"
	"html"
)

// Fallback builds the fixed minimal project written when the model response
// cannot be parsed. It is pure and deterministic: a package manifest with a
// small pinned dependency set, plus a single entry page carrying the project
// type and description. Interpolated text is HTML-escaped in the markup file
// only; the manifest uses JSON encoding instead.
func Fallback(projectType, description string) FileMap {
	manifest := fmt.Sprintf(`{
  "name": %s,
  "version": "0.1.0",
  "private": true,
  "description": %s,
  "scripts": {
    "dev": "vite",
    "build": "vite build"
  },
  "dependencies": {
    "react": "^18.3.1",
    "react-dom": "^18.3.1"
  },
  "devDependencies": {
    "vite": "^5.4.0"
  }
}
`, jsonString(DefaultProjectName), jsonString(description))

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1.0" />
  <title>%s starter</title>
</head>
<body>
  <main>
    <h1>%s</h1>
    <p>%s</p>
    <p>The generator could not produce a full scaffold for this request, so
    this minimal starter was created instead. Edit this page or run the
    generation again with a more specific description.</p>
  </main>
</body>
</html>
`, html.EscapeString(projectType), html.EscapeString(projectType), html.EscapeString(description))

	return FileMap{
		{Path: "package.json", Content: manifest},
		{Path: "index.html", Content: page},
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s) // marshalling a string cannot fail
	return string(b)
}

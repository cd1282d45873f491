package scaffold

// FileEntry is one generated file: a forward-slash relative path and its
// UTF-8 text content.
type FileEntry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FileMap is an ordered set of generated files making up a project tree.
// Order follows the key order of the model's JSON object so that
// materialization is deterministic. A FileMap is built once per generation
// attempt and never mutated afterwards, only iterated for writing.
type FileMap []FileEntry

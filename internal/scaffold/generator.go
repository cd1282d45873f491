package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"scaffold_ai_server/internal/install"
	"scaffold_ai_server/internal/llm"
)

// ErrProjectExists reports that the derived project name collides with an
// existing directory under the workspace root. Nothing is overwritten.
var ErrProjectExists = errors.New("project directory already exists")

// Request is one generation request as submitted by the form.
type Request struct {
	ProjectType string
	Description string
}

// Result is the terminal outcome of a successful generation. FallbackUsed
// marks that the model response was unparseable and the fallback template
// was materialized instead; that is a warning, not a failure.
type Result struct {
	RequestID    string
	ProjectName  string
	ProjectPath  string
	FileCount    int
	FallbackUsed bool
}

// Generator sequences a generation request: derive and claim the project
// directory, call the model, parse the response or fall back, and write the
// files. It holds no mutable state and is safe for concurrent use; each
// request is fully independent.
type Generator struct {
	client        llm.Client
	workspaceRoot string
	timeout       time.Duration
	installer     *install.Installer
}

// NewGenerator constructs a Generator. The llm.Client is injected so tests
// can substitute a fake. installer may be nil to disable the dependency
// install step. timeout bounds the model call; zero means no bound.
func NewGenerator(client llm.Client, workspaceRoot string, timeout time.Duration, installer *install.Installer) *Generator {
	return &Generator{
		client:        client,
		workspaceRoot: workspaceRoot,
		timeout:       timeout,
		installer:     installer,
	}
}

// Generate runs the full pipeline for one request.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	requestID := uuid.New().String()
	name := ProjectName(req.Description)
	root := filepath.Join(g.workspaceRoot, name)

	log.Printf("Request %s: generating %q project %s", requestID, req.ProjectType, name)

	// Claim the project directory atomically. A second request deriving the
	// same name, sequential or concurrent, fails here instead of overwriting.
	if err := os.Mkdir(root, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrProjectExists, name)
		}
		return nil, fmt.Errorf("create project directory %s: %w", root, err)
	}

	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	system, user := buildPrompt(req.ProjectType, req.Description)
	raw, err := g.client.Complete(callCtx, system, user)
	if err != nil {
		// The claimed directory is still empty; release it so the user can
		// retry with the same description.
		if rmErr := os.Remove(root); rmErr != nil {
			log.Printf("Request %s: WARN: could not remove empty project directory %s: %v", requestID, root, rmErr)
		}
		return nil, fmt.Errorf("model request failed: %w", err)
	}

	files, parseErr := Parse(raw)
	fallbackUsed := false
	if parseErr != nil {
		log.Printf("Request %s: unparseable model response, using fallback template: %v", requestID, parseErr)
		files = Fallback(req.ProjectType, req.Description)
		fallbackUsed = true
	}

	if err := Materialize(ctx, root, files); err != nil {
		// No rollback: already-written files stay in place for inspection.
		return nil, err
	}

	if g.installer != nil {
		g.installer.Start(root)
	}

	log.Printf("Request %s: wrote %d files to %s (fallback=%v)", requestID, len(files), root, fallbackUsed)

	return &Result{
		RequestID:    requestID,
		ProjectName:  name,
		ProjectPath:  root,
		FileCount:    len(files),
		FallbackUsed: fallbackUsed,
	}, nil
}

package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"scaffold_ai_server/internal/scaffold"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator *scaffold.Generator
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(gen *scaffold.Generator) *APIHandler {
	return &APIHandler{generator: gen}
}

// --- Structs for API Requests/Responses ---

type GenerateRequest struct {
	ProjectType string `json:"projectType" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type GenerateResponse struct {
	RequestID    string `json:"requestId"`
	ProjectName  string `json:"projectName"`
	ProjectPath  string `json:"projectPath"`
	FileCount    int    `json:"fileCount"`
	FallbackUsed bool   `json:"fallbackUsed"`
}

// --- API Handlers ---

// POST /project/generate
func (h *APIHandler) GenerateProject(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	log.Printf("Received generation request, project type %q", req.ProjectType)

	result, err := h.generator.Generate(c.Request.Context(), scaffold.Request{
		ProjectType: req.ProjectType,
		Description: req.Description,
	})
	if err != nil {
		log.Printf("Error generating project: %v", err)
		switch {
		case errors.Is(err, scaffold.ErrProjectExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, scaffold.ErrPathEscape):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate project"})
		}
		return
	}

	log.Printf("Generation successful: %s (%d files)", result.ProjectPath, result.FileCount)
	c.JSON(http.StatusCreated, GenerateResponse{
		RequestID:    result.RequestID,
		ProjectName:  result.ProjectName,
		ProjectPath:  result.ProjectPath,
		FileCount:    result.FileCount,
		FallbackUsed: result.FallbackUsed,
	})
}

// GET / - serves the submission form.
func (h *APIHandler) ShowForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPage))
}

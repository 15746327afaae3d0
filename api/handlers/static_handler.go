package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the front end from the public directory. It is wired
// as the router's NoRoute fallback.
type StaticHandler struct {
	root string
}

func NewStaticHandler(publicDir string) (*StaticHandler, error) {
	root, err := filepath.Abs(publicDir)
	if err != nil {
		return nil, err
	}

	return &StaticHandler{root: root}, nil
}

func (h *StaticHandler) Serve(c *gin.Context) {
	requestPath := c.Request.URL.Path
	if requestPath == "/" {
		requestPath = "/index.html"
	}

	// filepath.Join cleans the path; anything that still resolves outside
	// the public root is a traversal attempt.
	resolved := filepath.Join(h.root, filepath.FromSlash(requestPath))
	if resolved != h.root && !strings.HasPrefix(resolved, h.root+string(os.PathSeparator)) {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		c.String(http.StatusInternalServerError, "Not found")
		return
	}

	c.Data(http.StatusOK, contentType(resolved), data)
}

func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "application/javascript; charset=utf-8"
	case ".json":
		return "application/json; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

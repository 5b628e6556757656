package workflow

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/richinsley/comfy2go/graphapi"
)

// Validate parses a workflow file as a ComfyUI node graph. A file that is not
// valid graph JSON, or that parses to a graph without nodes, is rejected; node
// type resolution against a live server is out of scope here, the check only
// guards against shipping a corrupt or empty workflow.
func Validate(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read workflow: %w", err)
	}
	var g graphapi.Graph
	if err := json.Unmarshal(b, &g); err != nil {
		return fmt.Errorf("workflow %s: %w", filepath.Base(path), err)
	}
	if len(g.Nodes) == 0 {
		return fmt.Errorf("workflow %s: graph has no nodes", filepath.Base(path))
	}
	return nil
}

// ValidateAll validates every path and returns the first failure.
func ValidateAll(paths []string) error {
	for _, p := range paths {
		if err := Validate(p); err != nil {
			return err
		}
	}
	return nil
}

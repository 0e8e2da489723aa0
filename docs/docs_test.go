package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Summary string `json:"summary"`
}

// annotations lee @Summary/@Router de los handlers: ruta+método → summary.
func annotations(t *testing.T) map[string]string {
	t.Helper()
	files, err := filepath.Glob("../internal/domain/*/handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	out := map[string]string{}
	for _, name := range files {
		f, err := os.Open(name)
		require.NoError(t, err)
		var summary string
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "//"))
			switch {
			case strings.HasPrefix(line, "@Summary"):
				summary = strings.TrimSpace(strings.TrimPrefix(line, "@Summary"))
			case strings.HasPrefix(line, "@Router"):
				fields := strings.Fields(strings.TrimPrefix(line, "@Router"))
				require.Len(t, fields, 2, line)
				out[fields[0]+" "+strings.Trim(fields[1], "[]")] = summary
			}
		}
		require.NoError(t, sc.Err())
		_ = f.Close()
	}
	return out
}

func TestDocMatchesHandlerAnnotations(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	want := annotations(t)
	got := map[string]string{}
	for path, ops := range doc.Paths {
		for method, op := range ops {
			got[path+" "+method] = op.Summary
		}
	}
	assert.Equal(t, want, got)
}

package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerInfo_SecurityDefinitions(t *testing.T) {
	var doc struct {
		BasePath            string                    `json:"basePath"`
		SecurityDefinitions map[string]map[string]any `json:"securityDefinitions"`
		Paths               map[string]map[string]struct {
			Security []map[string][]string `json:"security"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	assert.Equal(t, "/api", doc.BasePath)
	require.Contains(t, doc.SecurityDefinitions, "ApiKeyAuth")
	require.Contains(t, doc.SecurityDefinitions, "BasicAuth")
	assert.Equal(t, "basic", doc.SecurityDefinitions["BasicAuth"]["type"])

	// every referenced scheme must be defined
	for path, ops := range doc.Paths {
		for method, op := range ops {
			for _, sec := range op.Security {
				for name := range sec {
					assert.Contains(t, doc.SecurityDefinitions, name, "%s %s", method, path)
				}
			}
		}
	}
}

package docs

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocRendersValidJSON(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger  string                     `json:"swagger"`
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
		Security map[string]json.RawMessage `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "/api/v1", doc.BasePath)
	assert.Contains(t, doc.Security, "BearerAuth")
	require.NotEmpty(t, doc.Paths)
	for path := range doc.Paths {
		assert.True(t, strings.HasPrefix(path, "/"), path)
		assert.NotContains(t, path, ":", "path parameters use {name} form: %s", path)
	}
	assert.Contains(t, doc.Paths, "/auth/login")
}

package http_test

import (
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openapiPath = "../../../../api/openapi.yml"

func loadContract(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openapiPath)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))
	return doc
}

// openapiTemplate rewrites an echo route path (":id") into the OpenAPI
// template form ("{id}").
func openapiTemplate(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func TestOpenAPIContract_CoversRegisteredRoutes(t *testing.T) {
	doc := loadContract(t)
	env := newTestEnv(t)

	for _, route := range env.echo.Routes() {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}

		template := openapiTemplate(route.Path)
		t.Run(route.Method+" "+template, func(t *testing.T) {
			item := doc.Paths.Find(template)
			require.NotNil(t, item, "route is not documented")
			assert.NotNil(t, item.GetOperation(route.Method),
				"method is not documented")
		})
	}
}

func TestOpenAPIContract_StatusEnumMatchesLifecycle(t *testing.T) {
	doc := loadContract(t)

	schema := doc.Components.Schemas["UpdateOrderStatus"]
	require.NotNil(t, schema)

	status := schema.Value.Properties["status"]
	require.NotNil(t, status)

	var values []string
	for _, v := range status.Value.Enum {
		values = append(values, v.(string))
	}
	assert.ElementsMatch(t,
		[]string{"pending", "accepted", "out_for_delivery", "delivered", "cancelled"},
		values)
}

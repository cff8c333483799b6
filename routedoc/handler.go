package routedoc

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/stradahq/strada/web"
)

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// JSONFilename is the path for the JSON document endpoint
	// (default: "routes.json"). Set to "-" to disable.
	//
	// Relative paths are joined with the base path:
	//
	//	"routes.json"      -> <basePath>/routes.json
	//	"meta/routes.json" -> <basePath>/meta/routes.json
	//
	// Absolute paths (starting with "/") are used as-is.
	JSONFilename string

	// YAMLFilename is the path for the YAML document endpoint
	// (default: "routes.yaml"). Set to "-" to disable.
	// Follows the same absolute/relative rules as JSONFilename.
	YAMLFilename string
}

// jsonFilename returns the configured JSON filename, defaulting to "routes.json".
func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "routes.json"
	}
	return cfg.JSONFilename
}

// yamlFilename returns the configured YAML filename, defaulting to "routes.yaml".
func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "routes.yaml"
	}
	return cfg.YAMLFilename
}

// resolvePath returns the full route path for a filename.
// Absolute filenames (starting with "/") are returned as-is.
// Relative filenames are joined under basePath.
func resolvePath(basePath, filename string) string {
	if strings.HasPrefix(filename, "/") {
		return filename
	}
	if basePath == "" {
		return "/" + filename
	}
	return basePath + "/" + filename
}

// Handle registers route inventory endpoints under the given base path.
// The base path is normalized (trailing slash stripped). Depending on
// config, the following routes are registered:
//
//	<JSONFilename path> - route inventory as JSON (unless JSONFilename is "-")
//	<YAMLFilename path> - route inventory as YAML (unless YAMLFilename is "-")
//
// The config parameter is optional; pass nil for defaults:
//
//	routedoc.Handle(app, "/meta", routedoc.Info{Title: "orders"}, nil)
//
// The document is built once on first request and cached, so register the
// endpoints after all application routes. The inventory includes the
// endpoints registered here.
func Handle(app *web.App, basePath string, info Info, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	if file := cfg.jsonFilename(); file != "-" {
		app.Get(resolvePath(basePath, file), documentHandler(app, info, json.Marshal, "application/json"))
	}

	if file := cfg.yamlFilename(); file != "-" {
		app.Get(resolvePath(basePath, file), documentHandler(app, info, yaml.Marshal, "application/x-yaml"))
	}
}

// documentHandler returns a handler serving the route inventory in the
// given encoding. The document is built and encoded on first request and
// cached for the process lifetime.
func documentHandler(app *web.App, info Info, marshal func(any) ([]byte, error), contentType string) web.HandlerFunc {
	var (
		once     sync.Once
		data     []byte
		buildErr error
	)

	return func(_ context.Context, _ *web.Request) (*web.Response, error) {
		once.Do(func() {
			data, buildErr = marshal(Describe(app, info))
		})
		if buildErr != nil {
			return nil, web.JSONSerializeError(buildErr)
		}

		return web.NewResponse().
			Header("Content-Type", contentType).
			SetBody(data), nil
	}
}

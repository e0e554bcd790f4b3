package httpapi

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"html/template"
	"net/http"
	"time"
)

//go:embed openapi.yaml
var openAPIDocument []byte

const openAPIPath = "/openapi.yaml"

// apiDocs serves the embedded OpenAPI document and a Swagger UI page that
// loads it. Both are built once; the document carries a content-hash ETag
// so browsers revalidate instead of refetching.
type apiDocs struct {
	etag    string
	builtAt time.Time
	page    []byte
}

var docsPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body style="margin:0">
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({ url: {{.SpecURL}}, dom_id: '#swagger-ui', deepLinking: true });
    </script>
  </body>
</html>`))

func newAPIDocs() *apiDocs {
	sum := sha256.Sum256(openAPIDocument)

	var page bytes.Buffer
	_ = docsPage.Execute(&page, struct{ Title, SpecURL string }{"Soccer Stats API", openAPIPath})

	return &apiDocs{
		etag:    `"` + hex.EncodeToString(sum[:8]) + `"`,
		builtAt: time.Now().UTC(),
		page:    page.Bytes(),
	}
}

func (d *apiDocs) register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+openAPIPath, d.document)
	mux.HandleFunc("GET /docs", d.ui)
}

func (d *apiDocs) document(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	w.Header().Set("ETag", d.etag)
	http.ServeContent(w, r, "openapi.yaml", d.builtAt, bytes.NewReader(openAPIDocument))
}

func (d *apiDocs) ui(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(d.page)
}

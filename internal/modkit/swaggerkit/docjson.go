package swaggerkit

import "net/http"

// docReader is a seam so tests can inject a different spec
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"candiqo API","version":"0.2.0"},"paths":{}}`
}

// serveDocJSON serves the OpenAPI skeleton so the UI can load
// routes are documented inline on handlers; codegen is not carried
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}

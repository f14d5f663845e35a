package handler

import (
	"net/http"
	"net/url"
)

// redirectWithError sends the browser back to targetURL with the error
// message carried in the query string, where the next render picks it up.
func redirectWithError(w http.ResponseWriter, r *http.Request, targetURL, errMsg string) {
	http.Redirect(w, r, targetURL+"?error="+url.QueryEscape(errMsg), http.StatusSeeOther)
}

func errorFromQuery(r *http.Request) string {
	return r.URL.Query().Get("error")
}

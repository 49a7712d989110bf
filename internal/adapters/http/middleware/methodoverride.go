package middleware

import (
	"net/http"
	"strings"
)

// methodOverrideField is the form field HTML forms use to tunnel PUT
// and DELETE through a POST submit.
const methodOverrideField = "_method"

// WrapMethodOverride wraps an http.Handler so that a POST carrying a
// _method form field is rewritten to the method it names before gin
// matches the route. Only PUT, PATCH and DELETE are honored; anything
// else leaves the request untouched. This is what lets a plain HTML
// form reach the PUT /items/:id and DELETE /items/:id handlers.
func WrapMethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		overrideMethod(r)
		next.ServeHTTP(w, r)
	})
}

func overrideMethod(r *http.Request) {
	if r.Method != http.MethodPost {
		return
	}

	// PostFormValue parses the body form on demand; the parsed form
	// stays cached on the request for the handler's own binding.
	override := strings.ToUpper(r.PostFormValue(methodOverrideField))
	switch override {
	case http.MethodPut, http.MethodPatch, http.MethodDelete:
		r.Method = override
	}
}

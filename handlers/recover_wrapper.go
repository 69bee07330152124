package handlers

import (
	"log"
	"net/http"
	"runtime"
)

// RecoverWrapper keeps a panicking handler from taking the server down;
// the client gets a 500 and the stack goes to the server log.
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				log.Printf("panic recovered in %s %s: %v\n%s", r.Method, r.URL.Path, rec, stack)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		handler(w, r)
	}
}

package routes

import (
	"net/http"

	"geetafreight/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	ewayHandler *handlers.EwayHandler,
	logHandler *handlers.LogHandler,
	pdfHandler *handlers.PDFHandler,
	sessions *handlers.SessionStore,
) {
	protected := func(h http.HandlerFunc) http.Handler {
		return withCORS(http.HandlerFunc(handlers.RecoverWrapper(handlers.RequireAuth(sessions, h))))
	}

	// Session routes
	http.Handle("/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))
	http.Handle("/logout", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Logout))))

	// E-Way Bill routes
	http.Handle("/ewaybill/generate", protected(ewayHandler.Generate))
	http.Handle("/ewaybill/download", protected(ewayHandler.Download))
	http.Handle("/ewaybill/pdf", protected(pdfHandler.WaybillPDF))

	// Processing log
	http.Handle("/log", protected(logHandler.GetLog))
}

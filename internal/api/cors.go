package api

import (
	"github.com/gorilla/handlers"
)

// setupCorsOptions allows any origin, matching the gateway's role as a
// backend for arbitrary front ends.
func setupCorsOptions() []handlers.CORSOption {
	credentials := handlers.AllowCredentials()
	methods := handlers.AllowedMethods([]string{"GET", "OPTIONS"})
	origins := handlers.AllowedOrigins([]string{"*"})
	headers := handlers.AllowedHeaders([]string{"Content-Type"})

	options := []handlers.CORSOption{credentials, methods, origins, headers}
	return options
}

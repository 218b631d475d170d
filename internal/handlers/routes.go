package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/campdoc/campdoc-api/internal/auth"
	"github.com/campdoc/campdoc-api/internal/config"
)

func RegisterRoutes(r *chi.Mux, cfg *config.Config, authHandler *auth.AuthHandler, userHandler *UserHandler, campHandler *CampHandler, registrationHandler *RegistrationHandler, paymentHandler *PaymentHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}))
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("CampDoc API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, humaConfig)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("CampDoc is running..."))
	})

	// Identity
	huma.Post(api, "/identity/token", authHandler.HandleIssueToken)

	// Users
	huma.Post(api, "/users", userHandler.HandleRegister)
	huma.Get(api, "/users", userHandler.HandleList,
		secured(authHandler.Authenticated, authHandler.AdminOnly))
	huma.Get(api, "/users/admin/{id}", userHandler.HandleAdminStatus,
		secured(authHandler.Authenticated))
	huma.Patch(api, "/users/admin/{id}", userHandler.HandlePromote,
		secured(authHandler.Authenticated, authHandler.AdminOnly))

	// Camps
	huma.Post(api, "/camps", campHandler.HandleCreate,
		secured(authHandler.Authenticated, authHandler.AdminOnly))
	huma.Get(api, "/camps/available", campHandler.HandleAvailable)
	huma.Get(api, "/camps/manage", campHandler.HandleManage,
		secured(authHandler.Authenticated, authHandler.AdminOnly))
	huma.Get(api, "/camps/{id}", campHandler.HandleGet)
	huma.Put(api, "/camps/{id}", campHandler.HandleUpdate,
		secured(authHandler.Authenticated, authHandler.AdminOnly))
	huma.Delete(api, "/camps/{id}", campHandler.HandleDelete,
		secured(authHandler.Authenticated, authHandler.AdminOnly))

	// Registrations
	huma.Post(api, "/registrations", registrationHandler.HandleCreate,
		secured(authHandler.Authenticated))
	huma.Get(api, "/registrations", registrationHandler.HandleList,
		secured(authHandler.Authenticated))
	huma.Patch(api, "/registrations/{id}/paid", registrationHandler.HandleMarkPaid)
	huma.Patch(api, "/registrations/{id}/confirm", registrationHandler.HandleConfirm,
		secured(authHandler.Authenticated, authHandler.AdminOnly))
	huma.Get(api, "/registrations/{id}", registrationHandler.HandleGet)
	huma.Delete(api, "/registrations/{id}", registrationHandler.HandleDelete,
		secured(authHandler.Authenticated, authHandler.AdminOnly))

	// Payments
	huma.Post(api, "/payment-intents", paymentHandler.HandleCreateIntent)
	huma.Post(api, "/payments", paymentHandler.HandleRecord)
	huma.Get(api, "/payments", paymentHandler.HandleList)
}

// secured attaches the given gates as operation middleware, in order, and
// marks the operation as bearer-authenticated in the OpenAPI document.
func secured(gates ...func(huma.Context, func(huma.Context))) func(*huma.Operation) {
	return func(o *huma.Operation) {
		for _, gate := range gates {
			o.Middlewares = append(o.Middlewares, gate)
		}
		o.Security = []map[string][]string{{"bearerAuth": {}}}
	}
}

// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router wires the JSON API routes and middleware chains: the
// public reading surface, the account endpoints and the guarded admin
// area.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
)

// New creates the configured chi router. allowedOrigin scopes browser
// access to the API; empty allows any origin.
func New(authn middleware.Authenticator, allowedOrigin string, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin, site *handlers.Site) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CORS(allowedOrigin))

	r.Get("/health", healthHandler)

	// Credential endpoints get their own rate limit.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/api", func(r chi.Router) {
		// Reading surface.
		r.Get("/articles", public.ListArticles)
		r.Get("/articles/popular", public.PopularArticles)
		r.Get("/articles/recent", public.RecentArticles)
		r.Get("/articles/{id}", public.GetArticle)
		r.Get("/articles/{id}/comments", public.ListComments)
		r.Post("/articles/{id}/like", public.Like)
		r.Get("/search", public.Search)
		r.Get("/categories", public.ListCategories)
		r.Get("/categories/popular", public.PopularCategories)
		r.Get("/categories/{id}/articles", public.ByCategory)
		r.Get("/tags", public.ListTags)
		r.Get("/tags/popular", public.PopularTags)
		r.Get("/tags/{name}/articles", public.ByTag)
		r.Get("/users/{id}", public.GetUser)
		r.Get("/stats", public.Stats)

		// Commenting requires a signed-in principal.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(authn))
			r.Post("/articles/{id}/comments", public.CreateComment)
		})

		// Account lifecycle.
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(loginLimiter.Middleware)
				r.Post("/login", auth.Login)
				r.Post("/register", auth.Register)
				r.Post("/provider/{provider}", auth.ProviderLogin)
			})
			r.Post("/logout", auth.Logout)
			r.Post("/refresh", auth.Refresh)
			r.Get("/me", auth.Me)
			r.Post("/password/reset-request", auth.RequestPasswordReset)
			r.Post("/password/reset", auth.ResetPassword)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth(authn))
				r.Put("/profile", auth.UpdateProfile)
				r.Put("/password", auth.ChangePassword)
			})
		})

		// Site settings.
		r.Get("/site/config", site.GetConfig)
		r.Put("/site/language", site.SetLanguage)

		// Admin area.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAuth(authn))
			r.Use(middleware.RequireAdmin(authn))

			r.Route("/articles", func(r chi.Router) {
				r.Get("/", admin.ListArticles)
				r.Get("/drafts", admin.ListDrafts)
				r.Post("/", admin.CreateArticle)
				r.Post("/refresh", admin.RefreshArticles)
				r.Get("/{id}", admin.GetArticle)
				r.Put("/{id}", admin.UpdateArticle)
				r.Delete("/{id}", admin.DeleteArticle)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", admin.CreateCategory)
				r.Put("/{id}", admin.UpdateCategory)
				r.Delete("/{id}", admin.DeleteCategory)
			})

			r.Route("/tags", func(r chi.Router) {
				r.Post("/", admin.CreateTag)
				r.Put("/{id}", admin.UpdateTag)
				r.Delete("/{id}", admin.DeleteTag)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

package main

import (
	"net/http"
	"os"
	"time"

	sbauth "dog-feeding-tracker/internal/adapters/auth/supabase"
	"dog-feeding-tracker/internal/platform/logger"
	"dog-feeding-tracker/internal/ports/auth"
	"dog-feeding-tracker/internal/router"
)

// @title Dog Feeding Tracker API
// @version 0.1
// @description API para registrar perros y sus alimentaciones, con conteo diario e historial agrupado por día.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Con Supabase configurado se verifica el Bearer token contra GoTrue;
	// sin eso queda el modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if url, key := os.Getenv("SUPABASE_URL"), os.Getenv("SUPABASE_ANON_KEY"); url != "" && key != "" {
		client, err := sbauth.NewClient(sbauth.Config{ProjectURL: url, APIKey: key})
		if err != nil {
			log.Error("supabase auth config invalid", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		verifier = sbauth.NewVerifier(client)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}

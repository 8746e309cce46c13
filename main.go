// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/ProSnigdho/MyFridgeAI/internal/auth"
	"github.com/ProSnigdho/MyFridgeAI/internal/config"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/additem"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/addshoppingitem"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/checkshoppingitem"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/clearrecipes"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/deleteitem"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/deleteshoppingitem"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/generaterecipes"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/getprofile"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/listinventory"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/listrecipes"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/listshopping"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/scanimage"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/sendverification"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/updatename"
	"github.com/ProSnigdho/MyFridgeAI/internal/handler/watchinventory"
	"github.com/ProSnigdho/MyFridgeAI/internal/image"
	"github.com/ProSnigdho/MyFridgeAI/internal/ingest"
	"github.com/ProSnigdho/MyFridgeAI/internal/llm"
	"github.com/ProSnigdho/MyFridgeAI/internal/mailing"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
	"github.com/ProSnigdho/MyFridgeAI/internal/recipecache"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("main: server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	defaults, err := confFiles.ReadFile("conf/myfridgeai.yaml")
	if err != nil {
		return fmt.Errorf("main: reading embedded defaults: %w", err)
	}
	conf, err := config.Load(defaults)
	if err != nil {
		return err
	}

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	genAI, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		Project: conf.Google.Project,
	})
	if err != nil {
		return fmt.Errorf("main: create genai client: %w", err)
	}

	inventory := pantrydb.NewInventoryStore(firestore)
	shopping := pantrydb.NewShoppingListStore(firestore, inventory)
	recipes := pantrydb.NewRecipeStore(firestore)
	profiles := pantrydb.NewProfileStore(firestore)

	pipeline := ingest.New(llm.NewScanner(genAI), inventory, nil)
	if conf.Google.CapturesBucket != "" {
		storageClient, err := storage.NewGRPCClient(ctx)
		if err != nil {
			return fmt.Errorf("main: create storage client: %w", err)
		}
		defer func() {
			if err := storageClient.Close(); err != nil {
				slog.ErrorContext(ctx, "main: close storage client", "error", err)
			}
		}()
		captures := image.NewWriter(storageClient, conf.Google.CapturesBucket)
		pipeline = ingest.New(llm.NewScanner(genAI), inventory, captures)
	}

	generatorLLM := llm.NewRecipeGenerator(genAI)
	cache := recipecache.New(generatorLLM, inventory, nil, recipes)
	if conf.Recipes.IncludeShoppingList {
		cache = recipecache.New(generatorLLM, inventory, shopping, recipes)
	}

	sender := mailing.NewSender(conf.SMTP)

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Recoverer)

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(func(h http.Handler) http.Handler {
		return fbMW(auth.RequireVerified(h))
	}, func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/internal/")
	}))

	mux.Route("/api", func(r chi.Router) {
		r.Post("/inventory/scan", scanimage.NewHandler(pipeline).ScanImage)
		r.Post("/inventory", additem.NewHandler(inventory).AddItem)
		r.Get("/inventory", listinventory.NewHandler(inventory).ListInventory)
		r.Get("/inventory/watch", watchinventory.NewHandler(inventory).WatchInventory)
		r.Delete("/inventory/{id}", deleteitem.NewHandler(inventory).DeleteItem)

		r.Post("/shopping", addshoppingitem.NewHandler(shopping).AddShoppingItem)
		r.Get("/shopping", listshopping.NewHandler(shopping).ListShopping)
		r.Post("/shopping/{id}/checked", checkshoppingitem.NewHandler(shopping).CheckShoppingItem)
		r.Delete("/shopping/{id}", deleteshoppingitem.NewHandler(shopping).DeleteShoppingItem)

		r.Post("/recipes/generate", generaterecipes.NewHandler(cache).GenerateRecipes)
		r.Get("/recipes", listrecipes.NewHandler(recipes).ListRecipes)
		r.Delete("/recipes", clearrecipes.NewHandler(cache).ClearRecipes)

		r.Get("/profile", getprofile.NewHandler(profiles).GetProfile)
		r.Post("/profile/name", updatename.NewHandler(profiles).UpdateName)
		r.Post("/auth/verification-email", sendverification.NewHandler(fbAuth, sender, profiles).SendVerification)
	})

	mux.Get("/internal/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              conf.Server.Address,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "main: listening", "address", conf.Server.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("main: serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("main: shutting down: %w", err)
	}
	return nil
}

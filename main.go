package main

import (
	"context"
	"log"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/server"
	"github.com/cois1702/trio-homework-app/app/storage"
	"github.com/cois1702/trio-homework-app/app/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	var st *store.Store
	if cfg.MongoURI != "" {
		var err error
		st, err = store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: ", err)
		}
		defer st.Close(ctx)
		log.Println("Using MongoDB store")
	} else {
		st = store.NewMemory()
		log.Println("MONGO_URI not set, using in-memory store")
	}

	var blobs storage.Resolver
	if cfg.B2Configured() {
		b2r, err := storage.NewB2(ctx, cfg.B2AccountID, cfg.B2AppKey, cfg.B2Bucket)
		if err != nil {
			log.Fatal("Failed to initialize B2 storage: ", err)
		}
		blobs = b2r
		log.Println("Using B2 file storage")
	} else {
		blobs = storage.PlaceholderResolver{}
		log.Println("B2 not configured, upload URLs will be placeholders")
	}

	if !cfg.AdminConfigured() {
		log.Println("Admin credentials not set, admin endpoints are unprotected")
	}

	app := server.New(cfg, st, blobs)
	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

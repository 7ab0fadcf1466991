// Seeds a teacher account through the configured store. Useful for getting
// a first login into a fresh deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/cois1702/trio-homework-app/app/config"
	"github.com/cois1702/trio-homework-app/app/models"
	"github.com/cois1702/trio-homework-app/app/store"
)

func main() {
	name := flag.String("name", "", "teacher name")
	email := flag.String("email", "", "teacher email")
	password := flag.String("password", "", "teacher password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("usage: add_teacher -name NAME -email EMAIL -password PASSWORD")
	}

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
	} else {
		// An in-memory store dies with this process; seeding it is pointless.
		log.Fatal("MONGO_URI is not set; add_teacher needs the MongoDB store")
	}

	teachers, err := st.Teachers.List(ctx)
	if err != nil {
		log.Fatal("Failed to list teachers: ", err)
	}
	for _, t := range teachers {
		if t.Email == *email {
			log.Fatalf("Teacher with email %s already exists", *email)
		}
	}

	teacher := models.Teacher{
		ID:        models.NewID(),
		Name:      *name,
		Email:     *email,
		Password:  *password,
		CreatedAt: time.Now(),
	}
	if err := st.Teachers.Insert(ctx, teacher); err != nil {
		log.Fatal("Failed to create teacher: ", err)
	}

	fmt.Printf("Teacher created: %s (%s)\n", teacher.Name, teacher.Email)
}

// Creates an admin account from the command line.
//
// The server seeds a default admin on first migration; this script is
// for adding further accounts without going through the API.
//
// Usage: go run scripts/create_admin.go -username ops -password secret -name "Ops" -email ops@example.com

package main

import (
	"flag"
	"log"
	"os"

	"tryout_backend/internal/config"
	"tryout_backend/internal/model"
	"tryout_backend/internal/repository"
	"tryout_backend/pkg/database"
	"tryout_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	username := flag.String("username", "", "login name for the new admin")
	password := flag.String("password", "", "initial password")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "contact email")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("both -username and -password are required")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	repo := repository.NewAdminRepository(db)
	if exists, err := repo.ExistsByUsernameOrEmail(*username, *email); err != nil {
		log.Fatalf("lookup failed: %v", err)
	} else if exists {
		log.Fatalf("admin %q already exists", *username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("password hashing failed: %v", err)
	}

	admin := &model.Admin{
		Username: *username,
		Password: string(hash),
		Name:     *name,
		Email:    *email,
	}
	if err := repo.Create(admin); err != nil {
		log.Fatalf("create failed: %v", err)
	}

	log.Printf("admin %q created (id %d)", admin.Username, admin.ID)
}

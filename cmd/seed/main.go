package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"petsitter/internal/config"
	"petsitter/internal/database"
	"petsitter/internal/domain"
	"petsitter/internal/repository"
)

// Seeds the database with the demo catalog and two accounts:
// user@pet.com / password and admin@pet.com / adminpass.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	sitterRepo := repository.NewSitterRepository(db)
	userRepo := repository.NewUserRepository(db)

	for _, s := range demoSitters() {
		sitter := s
		if err := sitterRepo.Create(ctx, &sitter); err != nil {
			log.Fatalf("seed sitter %q: %v", s.Name, err)
		}
		log.Printf("seeded sitter id=%d name=%q active=%t", sitter.ID, sitter.Name, sitter.Active)
	}

	for _, u := range demoUsers() {
		user := u.User
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal(err)
		}
		user.PasswordHash = string(hash)
		if err := userRepo.Create(ctx, &user); err != nil {
			log.Fatalf("seed user %q: %v", u.Email, err)
		}
		log.Printf("seeded user id=%d email=%s role=%s", user.ID, user.Email, user.Role)
	}

	log.Println("seed complete")
}

type seedUser struct {
	domain.User
	password string
}

func demoUsers() []seedUser {
	return []seedUser{
		{
			User: domain.User{
				Name:    "Standard User",
				Email:   "user@pet.com",
				Role:    domain.RoleUser,
				Status:  domain.UserActive,
				Phone:   "+1 (555) 123-4567",
				Address: "123 Main St, City, State 12345",
			},
			password: "password",
		},
		{
			User: domain.User{
				Name:   "Admin Manager",
				Email:  "admin@pet.com",
				Role:   domain.RoleAdmin,
				Status: domain.UserActive,
			},
			password: "adminpass",
		},
	}
}

func demoSitters() []domain.Sitter {
	return []domain.Sitter{
		{
			Name: "Sarah Johnson", Rating: 4.9, Reviews: 127, Location: "Downtown",
			Bio: "Experienced pet sitter.", Avatar: "SJ", Active: true,
			Services: []domain.ServiceKind{domain.ServiceWalking, domain.ServiceSitting, domain.ServiceBoarding},
			Rates: domain.RateMap{
				domain.ServiceWalking: 25, domain.ServiceSitting: 35,
				domain.ServiceBoarding: 45, domain.ServiceGrooming: 60,
			},
		},
		{
			Name: "Mike Chen", Rating: 4.8, Reviews: 89, Location: "Westside",
			Bio: "Professional dog walker.", Avatar: "MC", Active: true,
			Services: []domain.ServiceKind{domain.ServiceWalking, domain.ServiceSitting},
			Rates: domain.RateMap{
				domain.ServiceWalking: 20, domain.ServiceSitting: 30,
				domain.ServiceBoarding: 40, domain.ServiceGrooming: 55,
			},
		},
		{
			Name: "Emily Rodriguez", Rating: 5.0, Reviews: 203, Location: "Eastside",
			Bio: "Certified pet care professional.", Avatar: "ER", Active: true,
			Services: []domain.ServiceKind{
				domain.ServiceWalking, domain.ServiceSitting,
				domain.ServiceBoarding, domain.ServiceGrooming,
			},
			Rates: domain.RateMap{
				domain.ServiceWalking: 30, domain.ServiceSitting: 40,
				domain.ServiceBoarding: 50, domain.ServiceGrooming: 70,
			},
		},
		{
			Name: "David Wilson", Rating: 4.7, Reviews: 156, Location: "Northside",
			Bio: "Active pet lover.", Avatar: "DW", Active: false,
			Services: []domain.ServiceKind{domain.ServiceWalking, domain.ServiceBoarding},
			Rates: domain.RateMap{
				domain.ServiceWalking: 22, domain.ServiceSitting: 32,
				domain.ServiceBoarding: 42, domain.ServiceGrooming: 58,
			},
		},
		{
			Name: "Lisa Thompson", Rating: 4.9, Reviews: 94, Location: "Southside",
			Bio: "Home-based pet sitter.", Avatar: "LT", Active: true,
			Services: []domain.ServiceKind{domain.ServiceSitting, domain.ServiceBoarding, domain.ServiceGrooming},
			Rates: domain.RateMap{
				domain.ServiceWalking: 28, domain.ServiceSitting: 38,
				domain.ServiceBoarding: 48, domain.ServiceGrooming: 65,
			},
		},
	}
}

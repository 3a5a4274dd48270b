package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/interviewshare/backend/internal/db"
	"github.com/interviewshare/backend/internal/logger"
	"github.com/interviewshare/backend/internal/repositories"
)

type seedUser struct {
	email    string
	password string
}

type seedExperience struct {
	title       string
	company     string
	roleTitle   string
	content     string
	authorEmail string
}

var seedUsers = []seedUser{
	{"alice@example.com", "password"},
	{"bob@example.com", "password"},
	{"charlie@example.com", "password"},
}

var seedExperiences = []seedExperience{
	{
		title:       "Software Engineer at Google",
		company:     "Google",
		roleTitle:   "Software Engineer",
		content:     "The interview process consisted of 5 rounds. 1 screening, 3 technical coding rounds (LeetCode Hard/Medium), and 1 Googleyness round. Focus on graphs and DP.",
		authorEmail: "alice@example.com",
	},
	{
		title:       "Frontend Developer at Amazon",
		company:     "Amazon",
		roleTitle:   "Frontend Engineer II",
		content:     "Lots of questions about CSS, React internals, and performance optimization. Also standard LP questions.",
		authorEmail: "bob@example.com",
	},
	{
		title:       "Data Scientist at Netflix",
		company:     "Netflix",
		roleTitle:   "Senior Data Scientist",
		content:     "Deep dive into A/B testing methodologies, statistics, and machine learning models for recommendation systems. Culture fit is huge here.",
		authorEmail: "charlie@example.com",
	},
	{
		title:       "Intern at Microsoft",
		company:     "Microsoft",
		roleTitle:   "SDE Intern",
		content:     "3 rounds. First round was online assessment. Second round asked about linked lists. Final round was system design (URL shortener) adapted for an intern.",
		authorEmail: "alice@example.com",
	},
}

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	if err := run(context.Background(), *configPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func run(ctx context.Context, configPath string) error {
	_ = godotenv.Load(configPath)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
	if err != nil {
		return err
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		getEnv("POSTGRES_USER", "user"),
		getEnv("POSTGRES_PASSWORD", "password"),
		getEnv("POSTGRES_HOST", "localhost"),
		pgPort,
		getEnv("POSTGRES_DB", "interviewshare"),
	)

	if err := logger.Initialize(getEnv("APP_LOG_LEVEL", "info")); err != nil {
		return err
	}
	defer logger.Log.Sync()

	database, err := db.Connect(ctx, dsn, 4, 2)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		return err
	}

	userReadRepo := repositories.NewUserReadRepository(database)
	userWriteRepo := repositories.NewUserWriteRepository(database, nil)
	expWriteRepo := repositories.NewExperienceWriteRepository(database, nil)

	log.Println("Seeding database...")

	userIDs := make(map[string]uuid.UUID, len(seedUsers))
	for _, u := range seedUsers {
		existing, err := userReadRepo.GetByEmail(ctx, u.email)
		if err != nil {
			return err
		}
		if existing != nil {
			userIDs[u.email] = existing.UserID
			log.Printf("User already exists: %s", u.email)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		userID, err := userWriteRepo.Save(ctx, u.email, string(hashed))
		if err != nil {
			return err
		}
		userIDs[u.email] = userID
		log.Printf("Created user: %s", u.email)
	}

	for _, e := range seedExperiences {
		authorID, ok := userIDs[e.authorEmail]
		if !ok {
			continue
		}

		// Skip duplicates by (title, author) so reseeding is safe
		var count int
		if err := database.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM experiences WHERE title = $1 AND author_id = $2",
			e.title, authorID); err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Experience already exists: %s", e.title)
			continue
		}

		if err := expWriteRepo.Save(ctx, uuid.New(), e.title, e.company, e.roleTitle, e.content, authorID); err != nil {
			return err
		}
		log.Printf("Created experience: %s", e.title)
	}

	log.Println("Database seeded successfully!")
	return nil
}

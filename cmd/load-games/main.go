package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"bottoms-up/internal/config"
	"bottoms-up/internal/db"
)

type questionSeed struct {
	Text    string  `json:"text"`
	Answer  *string `json:"answer"`
	Edition *int    `json:"edition"`
}

type gameSeed struct {
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Questions   []questionSeed `json:"questions"`
}

func main() {
	dir := flag.String("dir", "seed/games", "directory of game seed json files")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	repo := db.NewRepo(conn)
	ctx := context.Background()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.json"))
	if err != nil {
		log.Fatalf("failed to list seed files: %v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("no seed files in %s", *dir)
	}

	games := 0
	questions := 0
	for _, path := range paths {
		seed, err := readSeed(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		if seed.Code == "" || seed.Name == "" {
			log.Fatalf("%s: code and name are required", path)
		}

		game := db.Game{Code: seed.Code}
		if err := conn.FirstOrCreate(&game, db.Game{Code: seed.Code}).Error; err != nil {
			log.Fatalf("failed to upsert game %s: %v", seed.Code, err)
		}
		game.Name = seed.Name
		game.Description = seed.Description
		if err := repo.SaveGame(ctx, &game); err != nil {
			log.Fatalf("failed to save game %s: %v", seed.Code, err)
		}
		games++

		for _, q := range seed.Questions {
			entry := db.Question{GameID: game.ID, Text: q.Text}
			if err := conn.FirstOrCreate(&entry, db.Question{GameID: game.ID, Text: q.Text}).Error; err != nil {
				log.Fatalf("failed to upsert question: %v", err)
			}
			entry.Answer = q.Answer
			entry.Edition = q.Edition
			if err := conn.Save(&entry).Error; err != nil {
				log.Fatalf("failed to save question: %v", err)
			}
			questions++
		}
	}

	log.Printf("loaded %d games with %d questions", games, questions)
}

func readSeed(path string) (*gameSeed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed gameSeed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, err
	}
	seed.Code = strings.TrimSpace(seed.Code)
	seed.Name = strings.TrimSpace(seed.Name)
	return &seed, nil
}

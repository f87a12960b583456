// Command seed loads the card catalog from a JSON file into Postgres.
// When R2 credentials are configured, artwork given as http(s) URLs is
// downloaded and re-hosted in the bucket.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"tcg-backend/config"
	"tcg-backend/database"
	"tcg-backend/models"
	"tcg-backend/services"
	"tcg-backend/utils"
)

type seedCard struct {
	Name          string `json:"name"`
	HP            int    `json:"hp"`
	Attack        int    `json:"attack"`
	Type          string `json:"type"`
	PokedexNumber int    `json:"pokedexNumber"`
	ImgURL        string `json:"imgUrl"`
}

func main() {
	file := flag.String("file", "cards.json", "card catalog JSON file")
	configPath := flag.String("config", "", "optional TOML config file")
	rehost := flag.Bool("rehost", true, "copy remote artwork into R2 when configured")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	if err := run(*file, *configPath, *rehost); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(file, configPath string, rehost bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	cards, err := readCards(file)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if rehost && cfg.R2Enabled() {
		store, err := utils.NewR2Store(ctx, utils.R2Options{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			AccessKeySecret: cfg.R2.AccessKeySecret,
			Bucket:          cfg.R2.Bucket,
		})
		if err != nil {
			return err
		}
		rehostImages(ctx, store, cards)
	}

	db, err := database.Open(cfg.DB.URL, false)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := services.NewGormCardRepository(db).UpsertCards(ctx, cards); err != nil {
		return err
	}
	slog.Info("catalog seeded", "cards", len(cards), "file", file)
	return nil
}

func readCards(file string) ([]models.Card, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", file, err)
	}
	var in []seedCard
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}

	cards := make([]models.Card, 0, len(in))
	seen := make(map[int]bool, len(in))
	for i, sc := range in {
		typ, err := models.ParsePokemonType(sc.Type)
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): %w", i, sc.Name, err)
		}
		if sc.Name == "" || sc.PokedexNumber <= 0 {
			return nil, fmt.Errorf("card %d: name and pokedexNumber are required", i)
		}
		if seen[sc.PokedexNumber] {
			return nil, fmt.Errorf("card %d: duplicate pokedexNumber %d", i, sc.PokedexNumber)
		}
		seen[sc.PokedexNumber] = true

		cards = append(cards, models.Card{
			Name:          sc.Name,
			HP:            sc.HP,
			Attack:        sc.Attack,
			Type:          typ,
			PokedexNumber: sc.PokedexNumber,
			ImgURL:        sc.ImgURL,
		})
	}
	return cards, nil
}

// rehostImages swaps remote image URLs for bucket keys. A failed copy keeps
// the original URL.
func rehostImages(ctx context.Context, store *utils.R2Store, cards []models.Card) {
	for i := range cards {
		src := cards[i].ImgURL
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			continue
		}

		body, contentType, err := utils.FetchImage(ctx, src)
		if err != nil {
			slog.Warn("image download failed", "card", cards[i].Name, "error", err)
			continue
		}
		key := utils.CardImageKey(cards[i].PokedexNumber, cards[i].Name, utils.ImageExt(src, contentType))
		if _, err := store.Upload(ctx, key, bytes.NewReader(body), contentType); err != nil {
			slog.Warn("image upload failed", "card", cards[i].Name, "key", key, "error", err)
			continue
		}
		cards[i].ImgURL = key
	}
}

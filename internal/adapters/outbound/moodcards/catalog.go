// Package moodcards provides the embedded mood-card catalog and the emotion
// character map shown by the dashboard.
package moodcards

import (
	"bytes"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cleitonmarx/bomi/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed cards.yml
var cardsYAML []byte

// Catalog implements domain.MoodCardCatalog.
type Catalog struct {
	descriptions map[domain.Sentiment][]string
}

// NewCatalog decodes a catalog from YAML mapping each sentiment to its descriptions.
func NewCatalog(data []byte) (Catalog, error) {
	raw := map[string][]string{}
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return Catalog{}, fmt.Errorf("decode mood cards: %w", err)
	}

	c := Catalog{descriptions: make(map[domain.Sentiment][]string, len(domain.Sentiments))}
	for _, s := range domain.Sentiments {
		descs := raw[string(s)]
		if len(descs) == 0 {
			return Catalog{}, fmt.Errorf("mood cards: no descriptions for %q", s)
		}
		c.descriptions[s] = descs
	}
	return c, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (Catalog, error) {
	return NewCatalog(cardsYAML)
}

// DailyCards implements domain.MoodCardCatalog. The random source is seeded
// from the calendar date so every call on the same day yields the same cards.
func (c Catalog) DailyCards(date time.Time) []domain.MoodCard {
	seed := uint64(date.Year()*10000 + int(date.Month())*100 + date.Day())
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	cards := make([]domain.MoodCard, 0, len(domain.Sentiments))
	for _, s := range domain.Sentiments {
		descs := c.descriptions[s]
		cards = append(cards, domain.MoodCard{
			Sentiment:   s,
			Description: descs[r.IntN(len(descs))],
		})
	}
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	for i := range cards {
		cards[i].ID = i + 1
	}
	return cards
}

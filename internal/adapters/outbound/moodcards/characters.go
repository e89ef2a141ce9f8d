package moodcards

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cleitonmarx/bomi/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed characters.yml
var charactersYAML []byte

type characterEntry struct {
	Code      string   `yaml:"code"`
	Label     string   `yaml:"label"`
	Character string   `yaml:"character"`
	Aliases   []string `yaml:"aliases"`
}

// CharacterMap implements domain.EmotionCharacterResolver.
type CharacterMap struct {
	byAlias map[string]domain.EmotionCharacter
}

// NewCharacterMap decodes a list of characters with their aliases.
func NewCharacterMap(data []byte) (CharacterMap, error) {
	var entries []characterEntry
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return CharacterMap{}, fmt.Errorf("decode characters: %w", err)
	}

	m := CharacterMap{byAlias: map[string]domain.EmotionCharacter{}}
	for _, e := range entries {
		c := domain.EmotionCharacter{Code: e.Code, Label: e.Label, Character: e.Character}
		own := map[string]bool{}
		for _, alias := range append([]string{e.Label}, e.Aliases...) {
			key := aliasKey(alias)
			if _, dup := m.byAlias[key]; dup && !own[key] {
				return CharacterMap{}, fmt.Errorf("characters: alias %q declared twice", alias)
			}
			own[key] = true
			m.byAlias[key] = c
		}
	}
	return m, nil
}

// DefaultCharacterMap returns the embedded character map.
func DefaultCharacterMap() (CharacterMap, error) {
	return NewCharacterMap(charactersYAML)
}

// Resolve implements domain.EmotionCharacterResolver.
func (m CharacterMap) Resolve(label domain.EmotionLabel) (domain.EmotionCharacter, bool) {
	c, ok := m.byAlias[aliasKey(string(label))]
	return c, ok
}

func aliasKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

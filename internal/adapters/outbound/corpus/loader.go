package corpus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

var requiredFields = []string{"text", "emotion", "intensity"}

// SeedCorpusLoader reads the seed corpus from a JSON file on disk.
type SeedCorpusLoader struct{}

// Load reads and validates the corpus at path. Records are deduplicated on
// (trimmed text, emotion) keeping the first occurrence.
func (l SeedCorpusLoader) Load(ctx context.Context, path string) ([]domain.SeedExample, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(path) == "" {
		err := domain.NewCorpusInvalidErr("corpus path is empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		err = domain.NewCorpusInvalidErr("failed to read %s: %v", path, err)
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	examples, err := Parse(data)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return examples, nil
}

// Parse decodes a JSON array of {text, emotion, intensity} records.
func Parse(data []byte) ([]domain.SeedExample, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, domain.NewCorpusInvalidErr("root element must be a JSON array")
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, domain.NewCorpusInvalidErr("malformed JSON: %v", err)
	}

	examples := make([]domain.SeedExample, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for i, raw := range records {
		example, err := parseRecord(i, raw)
		if err != nil {
			return nil, err
		}
		key := example.DedupeKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		examples = append(examples, example)
	}
	return examples, nil
}

func parseRecord(index int, raw json.RawMessage) (domain.SeedExample, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d is not an object", index)
	}
	for _, name := range requiredFields {
		if _, ok := fields[name]; !ok {
			return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d: missing field %q", index, name)
		}
	}

	var text string
	if err := json.Unmarshal(fields["text"], &text); err != nil {
		return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d: text must be a string", index)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d: text must not be blank", index)
	}

	var emotion string
	if err := json.Unmarshal(fields["emotion"], &emotion); err != nil {
		return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d: emotion must be a string", index)
	}
	emotion = strings.TrimSpace(emotion)
	if emotion == "" {
		return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d: emotion must not be blank", index)
	}

	intensity, err := parseIntensity(fields["intensity"])
	if err != nil {
		return domain.SeedExample{}, domain.NewCorpusInvalidErr("record %d: %v", index, err)
	}

	return domain.SeedExample{
		Text:      text,
		Emotion:   domain.EmotionLabel(emotion),
		Intensity: intensity,
	}, nil
}

func parseIntensity(raw json.RawMessage) (int, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return 0, fmt.Errorf("intensity must be an integer")
	}
	num, ok := value.(json.Number)
	if !ok {
		return 0, fmt.Errorf("intensity must be an integer")
	}
	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("intensity must be an integer")
	}
	if n < domain.MinIntensity || n > domain.MaxIntensity {
		return 0, fmt.Errorf("intensity must be between %d and %d, got %d", domain.MinIntensity, domain.MaxIntensity, n)
	}
	return int(n), nil
}

// InitSeedCorpusLoader registers the file based corpus loader in the dependency container.
type InitSeedCorpusLoader struct{}

// Initialize registers the SeedCorpusLoader.
func (i InitSeedCorpusLoader) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.SeedCorpusLoader](SeedCorpusLoader{})
	return ctx, nil
}

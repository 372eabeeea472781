package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/Eng-ReQTeCH/perect-day-tracker/internal/tracker"
)

const (
	// EnvTasksFile overrides the catalog file location when set.
	EnvTasksFile = "PD_TASKS"
	// DefaultTasksFile is the catalog file looked up in the working dir.
	DefaultTasksFile = "tasks.json"
	// DefaultTaskColor is assigned to tasks configured as a bare weight.
	DefaultTaskColor = "#1DB954"
)

var validate = validator.New()

type taskEntry struct {
	Weight float64 `json:"weight" validate:"gte=0"`
	Color  string  `json:"color"`
}

// LoadCatalog reads the task catalog from the configured file, falling
// back to the built-in default catalog when no file exists.
func LoadCatalog() ([]tracker.TaskDefinition, error) {
	path := Get(EnvTasksFile, DefaultTasksFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf("open tasks file: %w", err)
	}
	defer f.Close()

	catalog, err := ParseCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes a task catalog from JSON, preserving the file's
// key order. Each value is either a bare number (weight only, default
// color) or an object {"weight": n, "color": "#rrggbb"}; the bare form is
// normalized here, once, so the engine only ever sees full definitions.
func ParseCatalog(r io.Reader) ([]tracker.TaskDefinition, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("catalog must be a JSON object, got %v", tok)
	}

	var catalog []tracker.TaskDefinition
	seen := map[string]bool{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read task name: %w", err)
		}
		name := tok.(string)
		if name == "" {
			return nil, fmt.Errorf("task name must not be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate task %q", name)
		}
		seen[name] = true

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("read task %q: %w", name, err)
		}
		entry, err := decodeTaskEntry(raw)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", name, err)
		}
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("task %q: %w", name, err)
		}
		if entry.Color == "" {
			entry.Color = DefaultTaskColor
		}
		catalog = append(catalog, tracker.TaskDefinition{
			Name:   name,
			Weight: entry.Weight,
			Color:  entry.Color,
		})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read catalog end: %w", err)
	}
	return catalog, nil
}

func decodeTaskEntry(raw json.RawMessage) (taskEntry, error) {
	// Bare-number form predates the {weight, color} objects.
	var weight float64
	if err := json.Unmarshal(raw, &weight); err == nil {
		return taskEntry{Weight: weight}, nil
	}
	var entry taskEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return taskEntry{}, fmt.Errorf("must be a number or {weight, color}: %w", err)
	}
	return entry, nil
}

// DefaultCatalog is the stock ten-task day used when no tasks.json is
// present.
func DefaultCatalog() []tracker.TaskDefinition {
	return []tracker.TaskDefinition{
		{Name: "Study", Weight: 20, Color: DefaultTaskColor},
		{Name: "Bible Reading", Weight: 15, Color: "#FF5722"},
		{Name: "Skincare", Weight: 10, Color: "#9C27B0"},
		{Name: "Haircare", Weight: 10, Color: "#03A9F4"},
		{Name: "Sunscreen", Weight: 10, Color: "#FFC107"},
		{Name: "Exercise", Weight: 10, Color: "#E91E63"},
		{Name: "Hydration", Weight: 10, Color: "#2196F3"},
		{Name: "Meditation", Weight: 5, Color: "#8BC34A"},
		{Name: "Journaling", Weight: 5, Color: "#FF9800"},
		{Name: "Sleep Hygiene", Weight: 5, Color: "#607D8B"},
	}
}

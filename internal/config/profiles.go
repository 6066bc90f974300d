package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/timesdrill/internal/quizgen"
	"github.com/abhisek/timesdrill/internal/schemacheck"
)

//go:embed profiles.schema.json
var profilesSchemaJSON []byte

var profilesSchema = schemacheck.Schema{Name: "profiles", Definition: profilesSchemaJSON}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Profiles returns the built-in profiles with any overrides from
// ProfilesPath applied.
func (c *Config) Profiles() (map[quizgen.Level]quizgen.DifficultyProfile, error) {
	profiles := quizgen.DefaultProfiles()
	if c.ProfilesPath == "" {
		return profiles, nil
	}
	overrides, err := LoadProfiles(c.ProfilesPath)
	if err != nil {
		return nil, err
	}
	for level, p := range overrides {
		profiles[level] = p
	}
	return profiles, nil
}

// LoadProfiles reads profile overrides from a JSON file.
func LoadProfiles(path string) (map[quizgen.Level]quizgen.DifficultyProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}
	profiles, err := ParseProfiles(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return profiles, nil
}

// ParseProfiles validates raw against the profile schema, decodes it and
// checks each profile's field constraints.
func ParseProfiles(raw []byte) (map[quizgen.Level]quizgen.DifficultyProfile, error) {
	if err := schemacheck.Validate(profilesSchema, raw); err != nil {
		return nil, err
	}

	var decoded map[quizgen.Level]quizgen.DifficultyProfile
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	for level, p := range decoded {
		p.Level = level
		if err := checkProfile(p); err != nil {
			return nil, fmt.Errorf("profile %s: %w", level, err)
		}
		decoded[level] = p
	}
	return decoded, nil
}

func checkProfile(p quizgen.DifficultyProfile) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s (%v)", fe.Namespace(), fe.ActualTag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", quizgen.ErrInvalidInput, strings.Join(msgs, "; "))
}

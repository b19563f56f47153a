package seed

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/services"
)

// File is the YAML layout of a seed file
type File struct {
	Faculties []Faculty `yaml:"faculties"`
}

// Faculty lists a faculty and the students to add to it, in order
type Faculty struct {
	Name     string           `yaml:"name"`
	Field    string           `yaml:"field"`
	Students []models.Student `yaml:"students"`
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data File
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &data, nil
}

// CreateDefaultData creates the faculties and students listed in data through
// the registry. Students flagged as graduated are added and then graduated.
// Every faculty is attempted; errors are joined.
func CreateDefaultData(registry services.RegistryService, data *File, lgr zerolog.Logger) error {
	if data == nil {
		return nil
	}

	lgr.Info().Int("faculties", len(data.Faculties)).Msg("Creating seed data...")
	var finalErr error

	for _, f := range data.Faculties {
		registry.CreateFaculty(f.Name, f.Field)

		for _, s := range f.Students {
			graduated := s.Graduated
			if _, err := registry.AddStudent(f.Name, s); err != nil {
				lgr.Error().Err(err).Str("faculty", f.Name).Str("studentId", s.StudentID).Msg("Error adding seed student")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			if !graduated {
				continue
			}
			if _, err := registry.GraduateStudent(f.Name, s.StudentID); err != nil {
				lgr.Error().Err(err).Str("faculty", f.Name).Str("studentId", s.StudentID).Msg("Error graduating seed student")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Int("faculties", registry.FacultyCount()).Msg("Seed data created")
	return finalErr
}

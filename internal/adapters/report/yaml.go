package report

import (
	"os"
	"path/filepath"

	"github.com/crossgrade/crossgrade/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// mappingRecord is the artifact shape of one resolution. A null target
// encodes confirmed absence, matching the cache store convention.
type mappingRecord struct {
	Source string  `yaml:"source"`
	Target *string `yaml:"target"`
	Origin string  `yaml:"origin"`
}

// reportRecord is the artifact shape of a batch run.
type reportRecord struct {
	Target    string          `yaml:"target"`
	Digest    string          `yaml:"digest"`
	Processed int             `yaml:"processed"`
	Found     int             `yaml:"found"`
	NotFound  int             `yaml:"not_found"`
	Partial   bool            `yaml:"partial"`
	Mappings  []mappingRecord `yaml:"mappings"`
}

// WriteYAML writes the report artifact to path, creating parent directories
// as needed.
func WriteYAML(path string, r *domain.MappingReport) error {
	record := reportRecord{
		Target:    r.Target,
		Digest:    r.Digest,
		Processed: r.Processed,
		Found:     r.Found,
		NotFound:  r.NotFound,
		Partial:   r.Partial,
		Mappings:  make([]mappingRecord, 0, len(r.Results)),
	}
	for _, result := range r.Results {
		mapping := mappingRecord{Source: result.Source, Origin: string(result.Origin)}
		if result.Found {
			target := result.Target
			mapping.Target = &target
		}
		record.Mappings = append(record.Mappings, mapping)
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	return nil
}

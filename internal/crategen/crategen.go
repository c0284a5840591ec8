// Package crategen drives batch generation: a YAML manifest lists the
// service definitions to compile and where each generated client goes.
package crategen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/generator"
)

// ServiceConfig names one service definition and its output path.
// Relative paths are resolved against the manifest location.
type ServiceConfig struct {
	Name       string `yaml:"name" validate:"required"`
	Definition string `yaml:"definition" validate:"required"`
	Output     string `yaml:"output" validate:"required"`
}

type Manifest struct {
	Services []ServiceConfig `yaml:"services" validate:"min=1,dive"`

	baseDir string
}

var validate = validator.New()

// LoadManifest reads and validates a generation manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}
	if err := validate.Struct(&m); err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	m.baseDir = filepath.Dir(path)
	return &m, nil
}

// GenerateResult is the outcome of one service generation.
type GenerateResult struct {
	Name       string
	OutputPath string
	Err        error
}

type Crategen struct {
	manifest *Manifest
}

func New(manifest *Manifest) *Crategen {
	return &Crategen{manifest: manifest}
}

// Generate runs the generator for every service in the manifest. Each
// service is independent: a failing definition is reported in its
// result and does not stop the batch.
func (c *Crategen) Generate() []GenerateResult {
	results := make([]GenerateResult, 0, len(c.manifest.Services))
	for _, cfg := range c.manifest.Services {
		results = append(results, c.generateOne(cfg))
	}
	return results
}

func (c *Crategen) generateOne(cfg ServiceConfig) GenerateResult {
	result := GenerateResult{
		Name:       cfg.Name,
		OutputPath: c.resolve(cfg.Output),
	}
	service, err := botocore.LoadFile(c.resolve(cfg.Definition))
	if err != nil {
		result.Err = err
		return result
	}
	result.Err = generator.Generate(service, result.OutputPath)
	return result
}

func (c *Crategen) resolve(path string) string {
	if filepath.IsAbs(path) || c.manifest.baseDir == "" {
		return path
	}
	return filepath.Join(c.manifest.baseDir, path)
}

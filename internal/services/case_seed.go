package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	types "github.com/yungbote/casebook/internal/domain/cases"
)

// SeedFile is the YAML layout accepted by LoadSeedFile:
//
//	cases:
//	  - title: Rate limiter
//	    description: Design a distributed rate limiter.
//	    difficulty: senior
//	    diagram: diagrams/rate-limiter.excalidraw
//
// diagram paths are resolved relative to the seed file.
type SeedFile struct {
	Cases []SeedCase `yaml:"cases"`
}

type SeedCase struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Difficulty  string `yaml:"difficulty"`
	Diagram     string `yaml:"diagram"`
}

// LoadSeedFile reads a seed file into submissions. It does not validate
// them; that happens when they are submitted.
func LoadSeedFile(path string) ([]CaseSubmission, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var file SeedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	subs := make([]CaseSubmission, 0, len(file.Cases))
	for i, sc := range file.Cases {
		sub := CaseSubmission{
			Title:       sc.Title,
			Description: sc.Description,
			Difficulty:  sc.Difficulty,
		}
		if diagram := strings.TrimSpace(sc.Diagram); diagram != "" {
			att, err := ReadAttachment(resolveSeedPath(dir, diagram))
			if err != nil {
				return nil, fmt.Errorf("seed case #%d: %w", i+1, err)
			}
			sub.Attachment = att
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// ReadAttachment loads a diagram file from disk the way an upload arrives.
func ReadAttachment(path string) (*Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read diagram: %w", err)
	}
	return &Attachment{Filename: filepath.Base(path), Content: content}, nil
}

func resolveSeedPath(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// SeedIfEmpty applies the seed file only to an empty store, so restarts do
// not duplicate the fixtures.
func SeedIfEmpty(ctx context.Context, svc CaseService, path string) ([]*types.Case, error) {
	n, err := svc.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count cases: %w", err)
	}
	if n > 0 {
		return nil, nil
	}
	subs, err := LoadSeedFile(path)
	if err != nil {
		return nil, err
	}
	return svc.SubmitAll(ctx, subs)
}

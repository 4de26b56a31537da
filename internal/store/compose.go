package store

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"promptstack-backend/internal/models"

	"gorm.io/gorm"
)

// maxComposeDepth bounds recursive expansion even if cycle detection were
// ever defeated. Tokens left at the bound stay verbatim.
const maxComposeDepth = 10

var refPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Compose expands {{token}} references in content. A token resolves, in
// order: as a prompt id (exact match), as a prompt title (exact,
// case-sensitive), then as a key in vars. Referenced prompt content is
// expanded recursively; variable values are emitted verbatim. Tokens that
// resolve to a prompt already on the active expansion path, or that resolve
// to nothing, are left in place and reported in the returned slice. Compose
// never mutates stored prompts and never fails on unresolved tokens.
func (s *Store) Compose(content string, vars map[string]string) (string, []string) {
	var unresolved []string
	expanding := make(map[uint]bool)
	out := s.expand(content, vars, expanding, 0, &unresolved)
	return out, dedupe(unresolved)
}

// ComposePrompt expands the current content of a stored prompt.
func (s *Store) ComposePrompt(promptID uint, vars map[string]string) (string, []string, error) {
	prompt, err := s.lookupByID(promptID)
	if err != nil {
		return "", nil, err
	}
	if prompt == nil {
		return "", nil, fmt.Errorf("%w: prompt %d", ErrNotFound, promptID)
	}

	out, unresolved := s.Compose(prompt.Content, vars)
	return out, unresolved, nil
}

// expand walks one level of reference tokens. The expanding set carries the
// prompt ids on the active resolution path as function-call state, so
// concurrent compositions cannot interfere with each other's cycle
// detection.
func (s *Store) expand(content string, vars map[string]string, expanding map[uint]bool, depth int, unresolved *[]string) string {
	if depth >= maxComposeDepth {
		for _, match := range refPattern.FindAllStringSubmatch(content, -1) {
			*unresolved = append(*unresolved, match[1])
		}
		return content
	}

	return refPattern.ReplaceAllStringFunc(content, func(match string) string {
		token := match[2 : len(match)-2]

		if prompt := s.resolveToken(token); prompt != nil {
			if expanding[prompt.ID] {
				// self- or mutually-referential prompt: stop here
				*unresolved = append(*unresolved, token)
				return match
			}
			expanding[prompt.ID] = true
			expanded := s.expand(prompt.Content, vars, expanding, depth+1, unresolved)
			delete(expanding, prompt.ID)
			return expanded
		}

		if value, ok := vars[token]; ok {
			return value
		}

		*unresolved = append(*unresolved, token)
		return match
	})
}

// resolveToken finds the prompt a token refers to: id first, then title.
// It always reads committed database state, never the cache.
func (s *Store) resolveToken(token string) *models.Prompt {
	if id, err := strconv.ParseUint(token, 10, 32); err == nil {
		if prompt, err := s.lookupByID(uint(id)); err == nil && prompt != nil {
			return prompt
		}
	}

	var prompt models.Prompt
	err := s.db.Where("title = ?", token).Order("id").First(&prompt).Error
	if err != nil {
		return nil
	}
	return &prompt
}

func (s *Store) lookupByID(id uint) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prompt, nil
}

func dedupe(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !seen[token] {
			seen[token] = true
			out = append(out, token)
		}
	}
	return out
}

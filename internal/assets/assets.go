package assets

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed templates/*
var templates embed.FS

//go:embed styles/*
var styles embed.FS

// LoadTemplate loads an output template from embedded assets by name.
// The name should not include the .tmpl extension or path components.
// Returns ErrTemplateNotFound if the template does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadTemplate(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadStyle loads a CSS file from embedded assets by name.
// The name should not include the .css extension.
func LoadStyle(name string) (string, error) {
	if err := validateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// validateAssetName checks that an asset name is safe for use as a filename.
// Rejects empty names and names containing path separators, dots, or
// traversal characters.
func validateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

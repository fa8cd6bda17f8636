package asset

import (
	"embed"
	"strings"

	"github.com/dixieflatline76/Cropper/util/log"
)

//go:embed text/*
var assets embed.FS

// Manager manages the loading of embedded assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	textBytes, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return "", err
	}
	return strings.TrimRight(string(textBytes), "\n"), nil
}

// MustText is GetText for assets that ship with the binary. A missing asset
// yields the fallback.
func (am *Manager) MustText(name, fallback string) string {
	text, err := am.GetText(name)
	if err != nil {
		return fallback
	}
	return text
}

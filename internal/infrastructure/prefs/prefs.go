// Package prefs persiste las preferencias compartidas de la aplicación
// (modo de almacenamiento) en un archivo TOML.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Modos de almacenamiento válidos.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
)

// Prefs preferencias compartidas por todas las tiendas sincronizadas.
type Prefs struct {
	StorageMode string `toml:"storage_mode"`
}

const defaultPrefsPath = "~/.config/mebel-store/prefs.toml"

// DefaultPath ruta por defecto del archivo de preferencias.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load lee las preferencias de path; si falta o es inválido usa fallbackMode.
// Nunca falla: un archivo dañado equivale a preferencias por defecto.
func Load(path, fallbackMode string) Prefs {
	def := Prefs{StorageMode: normalizeMode(fallbackMode, ModeRemote)}

	resolved, err := resolvePath(path)
	if err != nil {
		return def
	}
	file, err := os.Open(resolved)
	if err != nil {
		return def
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return def
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return def
	}
	p.StorageMode = normalizeMode(p.StorageMode, def.StorageMode)
	return p
}

// Save escribe las preferencias creando los directorios necesarios.
func Save(path string, p Prefs) error {
	if m := strings.TrimSpace(p.StorageMode); m != ModeLocal && m != ModeRemote {
		return fmt.Errorf("modo de almacenamiento inválido: %q", p.StorageMode)
	}
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolver ruta: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("crear directorio de preferencias: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializar preferencias: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("escribir preferencias: %w", err)
	}
	return nil
}

func normalizeMode(mode, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeLocal:
		return ModeLocal
	case ModeRemote:
		return ModeRemote
	default:
		return fallback
	}
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolver home: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	if trimmed == "" {
		return "", errors.New("ruta vacía")
	}
	return filepath.Abs(trimmed)
}

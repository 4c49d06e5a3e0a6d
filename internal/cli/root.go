// Package cli implementa storectl: inspección y control de las colecciones
// sincronizadas desde la terminal, con la misma configuración que la API.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mebel-store/internal/app"
	"github.com/jhoicas/mebel-store/pkg/config"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

// NewRootCmd construye el árbol de comandos.
func NewRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Control de las colecciones del catálogo",
		Long:          "storectl lista colecciones, cambia el modo de almacenamiento (local/remote) y administra el espejo local",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nivel de log (trace, debug, info, warn, error)")

	open := func(cmd *cobra.Command) (*app.Container, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("cargar configuración: %w", err)
		}
		log := logger.NewWithWriter(cmd.ErrOrStderr(), logLevel)
		return app.New(cmdContext(cmd), cfg, log)
	}

	root.AddCommand(
		newListCmd(open),
		newModeCmd(open),
		newCacheCmd(open),
		newReloadCmd(open),
		newSlugCmd(),
	)
	return root
}

// Execute ejecuta storectl con los argumentos del proceso.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "error:", err)
		return err
	}
	return nil
}

type opener func(cmd *cobra.Command) (*app.Container, error)

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain/catalog"
)

func newListCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "Muestra una colección en JSON",
		Long:  "kind: categories, products, shops, slides, contact-info, contact-messages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			snap, ok := c.Snapshot(args[0])
			if !ok {
				return fmt.Errorf("colección desconocida %q", args[0])
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		},
	}
}

func newModeCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "mode [local|remote]",
		Short: "Muestra o cambia el modo de almacenamiento de todas las colecciones",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			var switchErr error
			if len(args) == 1 {
				mode, err := syncstore.ParseMode(args[0])
				if err != nil {
					return err
				}
				switchErr = c.SwitchMode(cmdContext(cmd), mode)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "preferido: %s (backend: %s)\n", renderMode(c.Preferred()), c.Backend())
			modes := c.Modes()
			kinds := make([]string, 0, len(modes))
			for k := range modes {
				kinds = append(kinds, k)
			}
			sort.Strings(kinds)
			for _, k := range kinds {
				fmt.Fprintf(out, "  %s %s\n", renderKind(k), renderMode(modes[k]))
			}
			return switchErr
		},
	}
}

func newCacheCmd(open opener) *cobra.Command {
	cache := &cobra.Command{
		Use:   "cache",
		Short: "Administra el espejo local",
	}
	cache.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Vacía el espejo local",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()
			c.ClearCache()
			fmt.Fprintln(cmd.OutOrStdout(), "espejo local vaciado")
			return nil
		},
	})
	return cache
}

func newReloadCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Relee todas las colecciones desde su origen actual",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := open(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			err = c.Reload(cmdContext(cmd))
			for _, col := range c.Collections() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %4d  %s\n", renderKind(col.Kind()), col.Len(), renderMode(col.Mode()))
			}
			return err
		},
	}
}

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug <texto>",
		Short: "Genera el slug de un título (transliteración del cirílico)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := catalog.Slugify(strings.Join(args, " "))
			if err := catalog.ValidateSlug(slug); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}
}

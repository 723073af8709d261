// cmd/spackle/defaults.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vuul/spackle-ssh/internal/models"
)

var (
	defKeyPath    string
	defForeground string
	defBackground string
	defGeometry   string
	defFontSize   int
	defScrollback int
	defSave       bool
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show or update the shared default options",
	Long: `Without --save, prints the options new sessions start from. With
--save, replaces them. Defaults live in the store under the reserved
"default" profile and share its persistence guarantees.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st := store()
		if !defSave {
			opts, err := st.Defaults()
			if err != nil {
				return err
			}
			p := models.NewProfile(models.DefaultProfileName)
			p.ApplyOptions(opts)
			printProfile(p)
			return nil
		}

		fg, err := models.ParseColor(defForeground)
		if err != nil {
			return err
		}
		bg, err := models.ParseColor(defBackground)
		if err != nil {
			return err
		}
		opts := models.TerminalOptions{
			KeyPath:    defKeyPath,
			Foreground: fg,
			Background: bg,
			Geometry:   models.Geometry(defGeometry).Normalize(),
			FontSize:   defFontSize,
			Scrollback: defScrollback,
		}
		if err := st.SaveDefaults(opts); err != nil {
			return err
		}
		fmt.Println("Defaults saved")
		return nil
	},
}

func init() {
	defaultsCmd.Flags().BoolVar(&defSave, "save", false, "Replace the stored defaults with the given flags")
	defaultsCmd.Flags().StringVar(&defKeyPath, "key", "", "Private key path (empty means default key discovery)")
	defaultsCmd.Flags().StringVar(&defForeground, "fg", "#000000", "Foreground color (hex or named)")
	defaultsCmd.Flags().StringVar(&defBackground, "bg", "#ffffff", "Background color (hex or named)")
	defaultsCmd.Flags().StringVar(&defGeometry, "geometry", "80x24", "Terminal geometry")
	defaultsCmd.Flags().IntVar(&defFontSize, "font-size", models.DefaultFontSize, "Font size (6-20)")
	defaultsCmd.Flags().IntVar(&defScrollback, "scrollback", models.DefaultScrollback, "Scrollback lines (0-20000)")
}

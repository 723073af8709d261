// cmd/spackle/session.go

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vuul/spackle-ssh/internal/models"
	"github.com/vuul/spackle-ssh/internal/parse"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved connection profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := store().Names()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles saved")
			return nil
		}
		fmt.Println(strings.Join(names, "\n"))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved profile's resolved settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store().Get(args[0])
		if err != nil {
			return err
		}
		printProfile(p)
		return nil
	},
}

func printProfile(p *models.Profile) {
	fmt.Printf("name:       %s\n", p.Name)
	if p.Name != models.DefaultProfileName {
		host := p.Host
		if p.User != "" {
			host = p.User + "@" + p.Host
		}
		fmt.Printf("host:       %s\n", host)
		fmt.Printf("port:       %d\n", p.EffectivePort())
		fmt.Printf("protocol:   %s\n", p.Protocol)
	}
	keyPath := p.KeyPath
	if keyPath == "" {
		keyPath = "(default key discovery)"
	}
	fmt.Printf("key:        %s\n", keyPath)
	fmt.Printf("foreground: %s\n", p.Foreground.Hex())
	fmt.Printf("background: %s\n", p.Background.Hex())
	fmt.Printf("geometry:   %s\n", p.Geometry)
	fmt.Printf("font size:  %d\n", p.FontSize())
	fmt.Printf("scrollback: %d\n", p.Scrollback())
}

var (
	saveHost       string
	savePort       string
	saveProtocol   string
	saveKeyPath    string
	saveForeground string
	saveBackground string
	saveGeometry   string
	saveFontSize   int
	saveScrollback int
)

var saveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save or replace a connection profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if name == models.DefaultProfileName {
			return fmt.Errorf("%q is reserved for the default options; use 'spackle defaults'", name)
		}

		proto, err := models.ParseProtocol(saveProtocol)
		if err != nil {
			return err
		}
		d, err := parse.Parse(saveHost, savePort, proto)
		if err != nil {
			return err
		}

		p := models.NewProfile(name)
		p.User = d.User
		p.Host = d.Host
		p.Port = d.Port
		p.Protocol = d.Protocol
		p.KeyPath = saveKeyPath
		p.Geometry = models.Geometry(saveGeometry).Normalize()
		p.SetFontSize(saveFontSize)
		p.SetScrollback(saveScrollback)
		if p.Foreground, err = models.ParseColor(saveForeground); err != nil {
			return err
		}
		if p.Background, err = models.ParseColor(saveBackground); err != nil {
			return err
		}

		if err := store().Put(p); err != nil {
			return err
		}
		fmt.Printf("Saved profile %q\n", name)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == models.DefaultProfileName {
			return fmt.Errorf("the default options profile cannot be deleted")
		}
		if err := store().Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile %q\n", args[0])
		return nil
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveHost, "host", "", "Hostname, optionally user@host (required)")
	saveCmd.Flags().StringVar(&savePort, "port", "", "Port (defaults to 22 for ssh, 23 for telnet)")
	saveCmd.Flags().StringVar(&saveProtocol, "protocol", "ssh", "Protocol: ssh or telnet")
	saveCmd.Flags().StringVar(&saveKeyPath, "key", "", "Private key path (empty means default key discovery)")
	saveCmd.Flags().StringVar(&saveForeground, "fg", "#000000", "Foreground color (hex or named)")
	saveCmd.Flags().StringVar(&saveBackground, "bg", "#ffffff", "Background color (hex or named)")
	saveCmd.Flags().StringVar(&saveGeometry, "geometry", "80x24", "Terminal geometry: 80x24, 80x43, 132x24 or 132x43")
	saveCmd.Flags().IntVar(&saveFontSize, "font-size", models.DefaultFontSize, "Font size (6-20)")
	saveCmd.Flags().IntVar(&saveScrollback, "scrollback", models.DefaultScrollback, "Scrollback lines (0-20000)")
	_ = saveCmd.MarkFlagRequired("host")
}

// Command games renders text and 9-slice panels to PNG without a window,
// and validates asset manifests. It uses the software surface, so it runs
// anywhere, including CI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/danprince/games"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

// Config holds the flags shared by every command.
type Config struct {
	Debug    bool
	Assets   string
	Manifest string
	RunFile  string
	Out      string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "games",
		Short: "Headless renderer for the games toolkit",
		Long: `games renders bitmap text and 9-slice panels to PNG files using the
software surface, and checks that asset manifests load.`,
		Example: `  # Render text with the built-in font
  games text "hello world" -o hello.png

  # Render text with a manifest font, in gold with a shadow
  games text "score 100" -m assets/manifest.yaml --font main --color '#ffc83c' --shadow '#00000099'

  # Render a 9-slice panel at 120x40
  games slice panel 120 40 -m assets/manifest.yaml -o panel.png

  # Check that every asset in a manifest loads
  games manifest assets/manifest.yaml`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg.Debug)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&cfg.Assets, "assets", "a", "", "Asset directory (default: the manifest's directory)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Manifest, "manifest", "m", "", "YAML asset manifest")
	rootCmd.PersistentFlags().StringVarP(&cfg.RunFile, "config", "c", "", "TOML run config (cache policy, debug)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Out, "out", "o", "out.png", "Output PNG path")

	rootCmd.AddCommand(textCmd(&cfg), sliceCmd(&cfg), manifestCmd(&cfg))
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
	}))
	slog.SetDefault(logger)
	games.SetLogger(logger)
}

// loadManifest reads cfg.Manifest, or returns nil when none was given.
func loadManifest(cfg *Config) (*games.Manifest, error) {
	if cfg.Manifest == "" {
		return nil, nil
	}
	data, err := os.ReadFile(cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return games.LoadManifest(data)
}

func assetDir(cfg *Config) string {
	if cfg.Assets != "" {
		return cfg.Assets
	}
	if cfg.Manifest != "" {
		return filepath.Dir(cfg.Manifest)
	}
	return "."
}

func runConfig(cfg *Config, w, h int) (games.RunConfig, error) {
	rc := games.DefaultRunConfig()
	if cfg.RunFile != "" {
		var err error
		if rc, err = games.LoadRunConfig(cfg.RunFile); err != nil {
			return rc, err
		}
	}
	rc.Width, rc.Height = max(w, 1), max(h, 1)
	rc.Debug = rc.Debug || cfg.Debug
	rc.ClearColor = ""
	return rc, nil
}

// newContext builds a software context of size w x h with every manifest
// asset preloaded.
func newContext(ctx context.Context, cfg *Config, m *games.Manifest, w, h int) (*games.Context, error) {
	rc, err := runConfig(cfg, w, h)
	if err != nil {
		return nil, err
	}
	c, err := games.NewContext(games.SoftBackend{}, games.NewSoftSurface(rc.Width, rc.Height), rc)
	if err != nil {
		return nil, err
	}
	if m != nil {
		c.Assets().SetLoader(games.FileLoader(os.DirFS(assetDir(cfg))))
		for _, r := range m.Resources() {
			c.Preload(r)
		}
		if err := c.WaitForAll(ctx); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func save(c *games.Context, path string) error {
	if err := games.WritePNG(path, games.Capture(c.Surface())); err != nil {
		return err
	}
	slog.Info("wrote", "path", path)
	return nil
}

func textCmd(cfg *Config) *cobra.Command {
	var (
		fontName string
		fill     string
		shadow   string
		pad      int
	)
	cmd := &cobra.Command{
		Use:   "text <string>",
		Short: "Render a string to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(cfg)
			if err != nil {
				return err
			}
			font := games.BuiltinFont()
			if fontName != "" {
				if m == nil {
					return fmt.Errorf("--font needs --manifest")
				}
				f, ok := m.Font(fontName)
				if !ok {
					return fmt.Errorf("font %q not in manifest", fontName)
				}
				font = f
			}
			col, err := games.ParseColor(fill)
			if err != nil {
				return err
			}

			w, h := font.Measure(args[0])
			c, err := newContext(cmd.Context(), cfg, m, w+2*pad+1, h+2*pad+1)
			if err != nil {
				return err
			}
			c.Frame(0, func(c *games.Context) {
				if font.URL == games.BuiltinFontURL {
					c.UseBuiltinFont()
				} else {
					c.SetFont(font)
				}
				c.SetColor(col)
				if shadow != "" {
					sc, perr := games.ParseColor(shadow)
					if perr != nil {
						err = perr
						return
					}
					c.SetShadow(sc)
				}
				c.View(float64(pad), float64(pad))
				c.WriteAt(args[0], 0, 0)
				c.End()
			})
			if err != nil {
				return err
			}
			return save(c, cfg.Out)
		},
	}
	cmd.Flags().StringVar(&fontName, "font", "", "Manifest font name (default: built-in 7x13)")
	cmd.Flags().StringVar(&fill, "color", "#ffffff", "Text color")
	cmd.Flags().StringVar(&shadow, "shadow", "", "Shadow color (none when empty)")
	cmd.Flags().IntVar(&pad, "pad", 2, "Padding around the text in pixels")
	return cmd
}

func sliceCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "slice <sprite> <width> <height>",
		Short: "Render a 9-slice sprite at a size",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest(cfg)
			if err != nil {
				return err
			}
			if m == nil {
				return fmt.Errorf("slice needs --manifest")
			}
			sprite, ok := m.Sprite(args[0])
			if !ok {
				return fmt.Errorf("sprite %q not in manifest", args[0])
			}
			var w, h int
			if _, err := fmt.Sscan(args[1], &w); err != nil {
				return fmt.Errorf("width: %w", err)
			}
			if _, err := fmt.Sscan(args[2], &h); err != nil {
				return fmt.Errorf("height: %w", err)
			}
			w, h = games.NineSliceSize(sprite, w, h)
			c, err := newContext(cmd.Context(), cfg, m, w, h)
			if err != nil {
				return err
			}
			c.Frame(0, func(c *games.Context) {
				c.Draw9Slice(sprite, 0, 0, w, h)
			})
			return save(c, cfg.Out)
		},
	}
}

func manifestCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "manifest <file>",
		Short: "Validate a manifest and load every asset it names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Manifest = args[0]
			m, err := loadManifest(cfg)
			if err != nil {
				return err
			}
			if _, err := newContext(cmd.Context(), cfg, m, 1, 1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d images, %d fonts, %d sprites: ok\n",
				len(m.Images), len(m.FontNames()), len(m.SpriteNames()))
			for _, name := range m.FontNames() {
				f, _ := m.Font(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  font   %-12s %s %dx%d\n", name, f.URL, f.GlyphWidth, f.GlyphHeight)
			}
			for _, name := range m.SpriteNames() {
				s, _ := m.Sprite(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  sprite %-12s %s %dx%d\n", name, s.URL, s.W, s.H)
			}
			return nil
		},
	}
}

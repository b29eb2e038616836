package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/pixpal/internal/artwork"
	"github.com/san-kum/pixpal/internal/config"
	"github.com/san-kum/pixpal/internal/editor"
	"github.com/san-kum/pixpal/internal/export"
	"github.com/san-kum/pixpal/internal/logging"
	"github.com/san-kum/pixpal/internal/pixel"
	"github.com/san-kum/pixpal/internal/storage"
	"github.com/san-kum/pixpal/internal/templates"
	"github.com/san-kum/pixpal/internal/tui"
	"github.com/san-kum/pixpal/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	logLevel   string
	themeName  string
	// Output file for png, svg and template
	outFile string
	scale   int
	// Library artwork to open in the editor
	artworkID string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "pixpal",
		Short:         "pixel art editor for a 10x30 grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd, "")
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "artwork library directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "zinc", "color theme")

	editCmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "open the editor, optionally importing a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runEditor(cmd, path)
		},
	}
	editCmd.Flags().StringVar(&artworkID, "id", "", "open a saved artwork from the library")

	showCmd := &cobra.Command{
		Use:   "show [file]",
		Short: "print an artwork file in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showArtwork,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "check that a file is a valid artwork document",
		Args:  cobra.ExactArgs(1),
		RunE:  validateArtwork,
	}

	pngCmd := &cobra.Command{
		Use:   "png [file]",
		Short: "render an artwork file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportPNG,
	}
	pngCmd.Flags().StringVarP(&outFile, "out", "o", "", "output path (default: input with .png)")
	pngCmd.Flags().IntVar(&scale, "scale", config.DefaultPNGScale, "pixels per cell")

	svgCmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "render an artwork file to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output path (default: input with .svg)")
	svgCmd.Flags().IntVar(&scale, "scale", config.DefaultPNGScale, "pixels per cell")

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "color usage and row profile of an artwork",
		Args:  cobra.ExactArgs(1),
		RunE:  artworkStats,
	}

	templatesCmd := &cobra.Command{
		Use:   "templates",
		Short: "list available templates",
		Args:  cobra.NoArgs,
		RunE:  listTemplates,
	}

	templateCmd := &cobra.Command{
		Use:   "template [name]",
		Short: "write a template as an artwork document",
		Args:  cobra.ExactArgs(1),
		RunE:  writeTemplate,
	}
	templateCmd.Flags().StringVarP(&outFile, "out", "o", "", "output path (default: <name>.json)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved artworks",
		Args:  cobra.NoArgs,
		RunE:  listArtworks,
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "remove a saved artwork from the library",
		Args:  cobra.ExactArgs(1),
		RunE:  deleteArtwork,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configPresetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list palette presets and themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("palette presets:")
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-10s %s\n", name, strings.Join(config.GetPreset(name), " "))
			}
			fmt.Println("themes:")
			for _, name := range viz.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd, configPresetsCmd)

	rootCmd.AddCommand(editCmd, showCmd, validateCmd, pngCmd, svgCmd, statsCmd, templatesCmd, templateCmd, listCmd, deleteCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file when one is given and applies the flags
// the user set on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("data") || cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("theme") || cfg.Theme == "" {
		cfg.Theme = themeName
	}
	if f := cmd.Flags().Lookup("scale"); f != nil {
		if !f.Changed {
			scale = cfg.PNGScale
		}
		if scale < 1 || scale > config.MaxPNGScale {
			return nil, fmt.Errorf("scale %d outside [1,%d]", scale, config.MaxPNGScale)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// prepare loads the config and configures logging. The returned func closes
// the log file.
func prepare(cmd *cobra.Command, interactive bool) (*config.Config, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	closer, err := logging.Setup(logging.Options{
		Level:       cfg.LogLevel,
		File:        cfg.LogFile,
		Interactive: interactive,
	})
	if err != nil {
		return nil, nil, err
	}
	logrus.WithFields(logrus.Fields{"command": cmd.Name(), "data": cfg.DataDir}).Debug("config loaded")
	return cfg, func() { closer.Close() }, nil
}

func runEditor(cmd *cobra.Command, path string) error {
	cfg, done, err := prepare(cmd, true)
	if err != nil {
		return err
	}
	defer done()

	palette, err := cfg.GetPalette()
	if err != nil {
		return err
	}
	catalog, err := templates.LoadCatalog(cfg.TemplatesFile)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	st := storage.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ed := editor.New(palette)
	switch {
	case artworkID != "":
		doc, err := st.Load(artworkID)
		if err != nil {
			return err
		}
		ed = ed.LoadDocument(doc)
	case path != "":
		raw, err := artwork.ReadRaw(path)
		if err != nil {
			return err
		}
		// an invalid file still opens the editor, showing the error
		ed, _ = ed.Import(raw)
	}

	logrus.WithField("theme", cfg.Theme).Info("starting editor")
	return tui.Run(tui.Options{
		Editor:      ed,
		Catalog:     catalog,
		Store:       st,
		OutputDir:   cfg.OutputDir,
		DefaultName: cfg.DefaultName,
		Theme:       viz.GetTheme(cfg.Theme),
	})
}

// readArtwork loads path as an artwork document. Validation failures carry
// the reason, which the user-facing message alone does not.
func readArtwork(path string) (artwork.Document, error) {
	doc, err := artwork.ReadFile(path)
	if err != nil {
		var ie *artwork.ImportError
		if errors.As(err, &ie) {
			return doc, fmt.Errorf("%s: %s (%s)", path, ie.Error(), ie.Detail)
		}
		return doc, err
	}
	return doc, nil
}

func showArtwork(cmd *cobra.Command, args []string) error {
	cfg, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	doc, err := readArtwork(args[0])
	if err != nil {
		return err
	}
	theme := viz.GetTheme(cfg.Theme)
	styles := viz.NewStyles(theme)

	fmt.Println(styles.Title.Render(artwork.NameOrDefault(doc.Name)))
	fmt.Println(viz.Terminal(pixel.FromCells(doc.Pixels), theme))
	return nil
}

func validateArtwork(cmd *cobra.Command, args []string) error {
	_, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	doc, err := readArtwork(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("ok: %s, %d pixels\n", artwork.NameOrDefault(doc.Name), len(doc.Pixels))
	return nil
}

func outputPath(input, ext string) string {
	if outFile != "" {
		return outFile
	}
	base := strings.TrimSuffix(input, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

func exportPNG(cmd *cobra.Command, args []string) error {
	_, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	doc, err := readArtwork(args[0])
	if err != nil {
		return err
	}
	path := outputPath(args[0], ".png")

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WritePNG(f, pixel.FromCells(doc.Pixels), scale); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", path, pixel.Width*scale, pixel.Height*scale)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	doc, err := readArtwork(args[0])
	if err != nil {
		return err
	}
	path := outputPath(args[0], ".svg")

	svg := export.CanvasToSVG(pixel.FromCells(doc.Pixels), scale)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func artworkStats(cmd *cobra.Command, args []string) error {
	_, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	doc, err := readArtwork(args[0])
	if err != nil {
		return err
	}
	canvas := pixel.FromCells(doc.Pixels)

	fmt.Printf("artwork: %s\n", artwork.NameOrDefault(doc.Name))
	fmt.Printf("pixels: %d/%d\n\n", canvas.Len(), pixel.Width*pixel.Height)

	usage := viz.Usage(canvas)
	if len(usage) == 0 {
		fmt.Println("canvas is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLOR\tCELLS\tSHARE")
	for _, u := range usage {
		fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", u.Color, u.Count, 100*float64(u.Count)/float64(canvas.Len()))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.Profile(canvas))
	return nil
}

func listTemplates(cmd *cobra.Command, args []string) error {
	cfg, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	catalog, err := templates.LoadCatalog(cfg.TemplatesFile)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPIXELS")
	for _, name := range catalog.Names() {
		t, _ := catalog.Find(name)
		fmt.Fprintf(w, "%s\t%d\n", t.Name, len(t.Pixels))
	}
	return w.Flush()
}

func writeTemplate(cmd *cobra.Command, args []string) error {
	cfg, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	catalog, err := templates.LoadCatalog(cfg.TemplatesFile)
	if err != nil {
		return err
	}
	t, ok := catalog.Find(args[0])
	if !ok {
		return fmt.Errorf("unknown template: %s (available: %v)", args[0], catalog.Names())
	}

	doc := artwork.NewDocument(t.Name, t.Pixels)
	path := outFile
	if path == "" {
		path = filepath.Join(cfg.OutputDir, artwork.FileName(doc.Name))
	}
	if err := artwork.WriteFile(path, doc); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d pixels)\n", path, len(doc.Pixels))
	return nil
}

func listArtworks(cmd *cobra.Command, args []string) error {
	cfg, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	st := storage.New(cfg.DataDir)
	items, err := st.List()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Println("no artworks saved")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tPIXELS\tCOLORS")

	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			item.ID,
			item.Name,
			item.Timestamp.Format("2006-01-02 15:04:05"),
			item.Pixels,
			len(item.Colors),
		)
	}

	return w.Flush()
}

func deleteArtwork(cmd *cobra.Command, args []string) error {
	cfg, done, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer done()

	if err := storage.New(cfg.DataDir).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "pixpal.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

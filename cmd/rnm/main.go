package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Querulantenkind/rnm/internal/config"
	"github.com/Querulantenkind/rnm/internal/display"
	"github.com/Querulantenkind/rnm/internal/executor"
	"github.com/Querulantenkind/rnm/internal/history"
	"github.com/Querulantenkind/rnm/internal/log"
	"github.com/Querulantenkind/rnm/internal/preview"
	"github.com/Querulantenkind/rnm/internal/scanner"
	"github.com/Querulantenkind/rnm/internal/tui"
	"github.com/Querulantenkind/rnm/internal/undo"
	"github.com/Querulantenkind/rnm/pkg/types"
)

var (
	appVersion = "0.1.0"

	searchFlag       string
	replaceFlag      string
	modeFlag         string
	patternFlag      string
	startFlag        int
	stepFlag         int
	prefixFlag       string
	suffixFlag       string
	removePrefixFlag string
	removeSuffixFlag string
	dateFlag         bool
	datePositionFlag string
	presetFlag       string
	savePresetFlag   string
	listPresetsFlag  bool
	sortFlag         string
	dryRun           bool
	autoConfirm      bool
	logFile          string
	logJSON          bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rnm [path]",
	Short: "Batch rename files with search/replace, regex, numbering and more",
	Long: `rnm renames files in a directory using one of several modes:
search/replace, regex, numbering patterns, prefix/suffix editing,
date insertion and case transforms. Without mode flags it starts an
interactive TUI; with them it runs once and exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(appVersion)
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent rename operation",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, dir, err := undo.New(history.NewStore()).UndoLast()
		if err != nil {
			if errors.Is(err, undo.ErrNothingToUndo) {
				fmt.Println("Nothing to undo.")
				return nil
			}
			return err
		}
		fmt.Printf("%d file(s) restored in %s\n", count, dir)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded rename operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := history.NewStore().Load()
		if err != nil {
			return err
		}
		if h.Len() == 0 {
			fmt.Println("No rename history.")
			return nil
		}
		display.WriteOperations(os.Stdout, h.Operations)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(historyCmd)

	flags := rootCmd.Flags()
	flags.StringVarP(&searchFlag, "search", "s", "", "search pattern for search/replace or regex mode")
	flags.StringVarP(&replaceFlag, "replace", "r", "", "replace pattern for search/replace or regex mode")
	flags.StringVarP(&modeFlag, "mode", "m", "", "rename mode: search, regex, numbering, prefix, suffix, date, upper, lower, title")
	flags.StringVar(&patternFlag, "pattern", "", "pattern for numbering mode (e.g. \"photo_###\")")
	flags.IntVar(&startFlag, "start", 1, "starting number for numbering mode")
	flags.IntVar(&stepFlag, "step", 1, "counter increment for numbering mode")
	flags.StringVar(&prefixFlag, "prefix", "", "add prefix to filenames")
	flags.StringVar(&suffixFlag, "suffix", "", "add suffix to filenames (before extension)")
	flags.StringVar(&removePrefixFlag, "remove-prefix", "", "remove prefix from filenames")
	flags.StringVar(&removeSuffixFlag, "remove-suffix", "", "remove suffix from filenames (before extension)")
	flags.BoolVar(&dateFlag, "date", false, "insert file modification date")
	flags.StringVar(&datePositionFlag, "date-position", "prefix", "date position: prefix, suffix, replace")
	flags.StringVarP(&presetFlag, "preset", "p", "", "load a saved preset by name")
	flags.StringVar(&savePresetFlag, "save-preset", "", "save current settings as a preset")
	flags.BoolVar(&listPresetsFlag, "list-presets", false, "list available presets")
	flags.StringVar(&sortFlag, "sort", "", "sort order: name, size, modified")
	flags.BoolVarP(&dryRun, "dry-run", "n", false, "preview changes without renaming")
	flags.BoolVarP(&autoConfirm, "yes", "y", false, "skip confirmation prompt")
	flags.StringVar(&logFile, "log-file", "", "log file path")
	flags.BoolVar(&logJSON, "log-json", false, "write JSON logs")
}

func run(cmd *cobra.Command, args []string) error {
	if listPresetsFlag {
		return listPresets()
	}
	if savePresetFlag != "" {
		return savePreset(savePresetFlag)
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	dir, pattern := scanner.SplitGlob(path)

	// Config problems never block a rename run.
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	sortOrder := cfg.DefaultSort
	if sortFlag != "" {
		order, ok := config.ParseSortOrder(sortFlag)
		if !ok {
			return fmt.Errorf("unknown sort order: %s (allowed: name, size, modified)", sortFlag)
		}
		sortOrder = order
	}

	if !nonInteractive() {
		cfg.DefaultSort = sortOrder
		return tui.Run(dir, pattern, cfg)
	}

	mode, opts, err := modeFromFlags(cfg)
	if err != nil {
		return err
	}
	if err := validateModeInputs(mode, opts); err != nil {
		return err
	}

	files, err := scanner.New(pattern, sortOrder).Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No files found.")
		return nil
	}

	fmt.Printf("Directory: %s\n", dir)
	fmt.Printf("Mode: %s\n", display.DescribeMode(mode, opts))
	fmt.Printf("Files: %d\n\n", len(files))

	previews, err := preview.Generate(files, nil, mode, opts)
	if err != nil {
		return err
	}
	display.WritePreviews(os.Stdout, previews)

	if preview.Changes(previews) == 0 {
		fmt.Println("\nNothing to rename.")
		return nil
	}

	if dryRun {
		fmt.Println("\n(dry run: no changes made)")
		return nil
	}

	if !autoConfirm && !confirm() {
		fmt.Println("Aborted.")
		return nil
	}

	var execOpts []executor.Option
	if logFile != "" {
		logger, err := log.New(logFile, logJSON)
		if err != nil {
			return err
		}
		defer logger.Close()
		execOpts = append(execOpts, executor.WithLogger(logger))
	}

	exec := executor.New(history.NewStore(), execOpts...)
	count, err := exec.Run(previews, dir, display.DescribeMode(mode, opts))
	if err != nil {
		return err
	}

	fmt.Printf("\n%d file(s) renamed.\n", count)
	return nil
}

// nonInteractive reports whether any mode-selecting flag was given.
func nonInteractive() bool {
	return searchFlag != "" ||
		modeFlag != "" ||
		presetFlag != "" ||
		patternFlag != "" ||
		prefixFlag != "" ||
		suffixFlag != "" ||
		removePrefixFlag != "" ||
		removeSuffixFlag != "" ||
		dateFlag ||
		dryRun
}

// modeFromFlags resolves the rename mode and its parameters from CLI
// flags, preferring a preset, then shortcut flags, then --mode.
func modeFromFlags(cfg *config.Config) (types.RenameMode, types.Options, error) {
	opts := types.DefaultOptions()
	opts.NumberStart = startFlag
	opts.NumberStep = stepFlag

	pos, ok := config.ParseDatePosition(datePositionFlag)
	if !ok {
		return "", opts, fmt.Errorf("unknown date position: %s (allowed: prefix, suffix, replace)", datePositionFlag)
	}
	opts.DatePosition = pos

	if presetFlag != "" {
		p, ok := cfg.GetPreset(presetFlag)
		if !ok {
			return "", opts, fmt.Errorf("preset not found: %s", presetFlag)
		}
		opts.Search = p.Search
		opts.Replace = p.Replace
		return p.Mode, opts, nil
	}

	switch {
	case dateFlag:
		return types.ModeDateInsert, opts, nil
	case prefixFlag != "":
		opts.Search = prefixFlag
		return types.ModePrefix, opts, nil
	case suffixFlag != "":
		opts.Search = suffixFlag
		return types.ModeSuffix, opts, nil
	case removePrefixFlag != "":
		opts.Search = removePrefixFlag
		opts.Action = types.AffixRemove
		return types.ModePrefix, opts, nil
	case removeSuffixFlag != "":
		opts.Search = removeSuffixFlag
		opts.Action = types.AffixRemove
		return types.ModeSuffix, opts, nil
	case patternFlag != "":
		opts.Search = patternFlag
		return types.ModeNumbering, opts, nil
	}

	mode := cfg.DefaultMode
	if modeFlag != "" {
		m, ok := config.ParseMode(modeFlag)
		if !ok {
			return "", opts, fmt.Errorf("unknown mode: %s", modeFlag)
		}
		mode = m
	}

	opts.Search = searchFlag
	opts.Replace = replaceFlag
	return mode, opts, nil
}

func validateModeInputs(mode types.RenameMode, opts types.Options) error {
	switch mode {
	case types.ModeSearchReplace, types.ModeRegex:
		if opts.Search == "" {
			return fmt.Errorf("--search is required for %s mode", mode.DisplayName())
		}
	case types.ModeNumbering:
		if opts.Search == "" {
			return fmt.Errorf("--pattern is required for numbering mode")
		}
	case types.ModePrefix, types.ModeSuffix:
		if opts.Search == "" {
			return fmt.Errorf("a value is required for prefix/suffix mode")
		}
	}
	return nil
}

func confirm() bool {
	fmt.Print("\nProceed? [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func listPresets() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(cfg.Presets) == 0 {
		fmt.Println("No presets saved.")
		fmt.Println("\nCreate one with:")
		fmt.Println("  rnm --search 'old' --replace 'new' --save-preset my-preset")
		return nil
	}

	fmt.Println("Available presets:")
	for _, name := range cfg.ListPresets() {
		p, _ := cfg.GetPreset(name)
		fmt.Printf("\n  %s\n", name)
		fmt.Printf("    Mode: %s\n", p.Mode.DisplayName())
		if p.Mode.UsesSearchReplace() {
			fmt.Printf("    Search: '%s'\n", p.Search)
			fmt.Printf("    Replace: '%s'\n", p.Replace)
		}
	}
	return nil
}

func savePreset(name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	mode := types.ModeSearchReplace
	if modeFlag != "" {
		m, ok := config.ParseMode(modeFlag)
		if !ok {
			return fmt.Errorf("unknown mode: %s", modeFlag)
		}
		mode = m
	}

	cfg.AddPreset(types.Preset{
		Name:    name,
		Mode:    mode,
		Search:  searchFlag,
		Replace: replaceFlag,
	})
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Printf("Preset %q saved.\n", name)
	return nil
}

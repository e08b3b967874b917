package cli

import (
	"fmt"

	"tabshelf/internal/config"
	"tabshelf/internal/kv"
	"tabshelf/internal/logs"
	"tabshelf/internal/tabs/catalog"
	"tabshelf/internal/tabs/library"
	"tabshelf/internal/tabs/persist"
	"tabshelf/internal/tabs/service"
	"tabshelf/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globalFlags struct {
	dataDir string
	backend string
	catalog string
	view    string
	verbose bool
}

// session is everything a command needs once configuration is resolved.
type session struct {
	cfg   *config.Config
	svc   service.TabService
	close func() error
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Running it without a subcommand starts
// the interactive TUI.
func NewRootCmd() *cobra.Command {
	var flags globalFlags
	var sess *session

	root := &cobra.Command{
		Use:   "tabshelf",
		Short: "tabshelf - a local library of guitar, bass and ukulele tabs",
		Long: `tabshelf keeps a built-in catalog of tabs together with the tabs you import.

Running tabshelf without arguments launches the interactive TUI.
Tabs are imported from JSON (one object or an array of objects) or from
markdown tab sheets with YAML frontmatter.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsSession(cmd) {
				return nil
			}
			s, err := openSession(flags)
			if err != nil {
				return err
			}
			sess = s
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if sess == nil {
				return nil
			}
			err := sess.close()
			_ = logs.Close()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logs.Logger.Info("starting TUI", zap.String("view", sess.cfg.DefaultView))
			p := tea.NewProgram(tui.NewAppModel(sess.cfg, sess.svc), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.dataDir, "data-dir", "d", "", "Directory holding stored tabs and logs")
	pf.StringVar(&flags.backend, "backend", "", "Storage backend: file, sqlite, memory, none")
	pf.StringVar(&flags.catalog, "catalog", "", "Extra base catalog files (comma-separated)")
	pf.StringVar(&flags.view, "view", "", "Initial TUI view: home, library, about")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Debug logging")

	current := func() *session { return sess }
	root.AddCommand(
		newListCmd(current),
		newShowCmd(current),
		newImportCmd(current),
		newExportCmd(current),
	)

	return root
}

// needsSession is false for cobra's help and shell-completion commands, which
// must work without touching config, data dir or storage.
func needsSession(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

// openSession resolves configuration and wires storage, catalog and library.
func openSession(flags globalFlags) (*session, error) {
	cfg, err := config.Load(config.CLIFlags{
		DataDir:      flags.dataDir,
		Backend:      flags.backend,
		CatalogFiles: config.ParseCommaSeparated(flags.catalog),
		View:         flags.view,
		Verbose:      flags.verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.EnsureConfigFile(); err != nil {
		logs.Logger.Warn("could not create config file", zap.Error(err))
	}

	if cfg.Backend != kv.BackendMemory && cfg.Backend != kv.BackendNone {
		if err := cfg.EnsureDataDir(); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
		if err := logs.Initialize(cfg.DataDir, cfg.Verbose); err != nil {
			logs.Logger.Warn("could not initialize log file", zap.Error(err))
		}
	}

	store, closeStore, err := kv.Open(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	lib := library.New(catalog.Assemble(cfg.CatalogFiles), persist.NewAdapter(store, cfg.StorageKey))
	lib.Load()

	return &session{
		cfg:   cfg,
		svc:   service.NewTabService(lib),
		close: closeStore,
	}, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/casebook/internal/data/db"
	"github.com/yungbote/casebook/internal/data/repos"
	"github.com/yungbote/casebook/internal/platform/logger"
	"github.com/yungbote/casebook/internal/services"
)

// cli carries what PersistentPreRunE opens for the subcommands.
type cli struct {
	configFile string
	jsonOutput bool

	log  *logger.Logger
	db   *db.Service
	svc  services.CaseService
	opts runOptions
}

type runOptions struct {
	DatabaseURL        string
	AttachmentRequired bool
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "casectl",
		Short: "casectl manages the casebook case store",
		Long: `casectl drives the same case service as the web app: it migrates the
schema, seeds fixtures, and adds, lists, shows and exports cases.

Settings come from flags, then the environment (DATABASE_URL,
ATTACHMENT_REQUIRED), then ./casectl.yaml.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.open,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return c.close() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default: ./casectl.yaml)")
	pf.String("database-url", defaultDatabaseURL, "database url (postgres://... or sqlite://...)")
	pf.Bool("attachment-required", false, "reject cases without a diagram")
	pf.Bool("verbose", false, "log to stderr")
	pf.BoolVar(&c.jsonOutput, "json", false, "output as JSON")

	root.AddCommand(
		newVersionCmd(),
		newMigrateCmd(c),
		newSeedCmd(c),
		newAddCmd(c),
		newListCmd(c),
		newShowCmd(c),
		newRandomCmd(c),
		newExportCmd(c),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	v, err := loadConfig(cmd.Root(), c.configFile)
	if err != nil {
		return err
	}
	c.opts = runOptions{
		DatabaseURL:        v.GetString(cfgKeyDatabaseURL),
		AttachmentRequired: v.GetBool(cfgKeyAttachmentRequired),
	}

	mode := "silent"
	if v.GetBool(cfgKeyVerbose) {
		mode = "development"
	}
	if c.log, err = logger.New(mode); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	if c.db, err = db.Open(c.opts.DatabaseURL, c.log); err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := c.db.AutoMigrateAll(); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	gdb := c.db.DB()
	c.svc = services.NewCaseService(gdb, c.log, repos.NewCaseRepo(gdb, c.log), services.SubmissionPolicy{
		AttachmentRequired: c.opts.AttachmentRequired,
	})
	return nil
}

func (c *cli) close() error {
	if c.log != nil {
		c.log.Sync()
	}
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

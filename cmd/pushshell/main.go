package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-push-shell/config"
	"github.com/anyproto/anytype-push-shell/credstore"
	"github.com/anyproto/anytype-push-shell/session"
	"github.com/anyproto/anytype-push-shell/shell"
	"github.com/anyproto/anytype-push-shell/tokenalias"
	"github.com/anyproto/anytype-push-shell/transport/fcm"
)

var log = logger.NewNamed("main")

// set with -ldflags "-X main.version=..."
var version = "dev"

type flags struct {
	config  string
	dir     string
	suffix  string
	account string
	history string
	dryRun  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:          "pushshell",
		Short:        "Interactive shell for sending Firebase Cloud Messaging pushes",
		Long:         "pushshell loads service-account credentials found under a directory, lets you switch between them and compose push messages.",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd.Context(), conf)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", "pushshell.yml", "path to the yaml config, ignored when missing")
	cmd.Flags().StringVarP(&f.dir, "dir", "d", "", "directory scanned for credential files (default \".\")")
	cmd.Flags().StringVar(&f.suffix, "suffix", "", "credential file suffix (default \""+credstore.DefaultSuffix+"\")")
	cmd.Flags().StringVarP(&f.account, "account", "a", "", "alias or project id to activate at startup, env "+config.EnvProjectId)
	cmd.Flags().StringVar(&f.history, "history", "", "file to keep command history in")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "validate messages without delivering them")
	return cmd
}

func loadConfig(cmd *cobra.Command, f flags) (conf *config.Config, err error) {
	if cmd.Flags().Changed("config") {
		conf, err = config.NewFromFile(f.config)
	} else {
		conf, err = config.NewFromFileOrDefault(f.config)
	}
	if err != nil {
		return nil, err
	}
	conf.ApplyEnv()
	if cmd.Flags().Changed("dir") {
		conf.Credentials.Dir = f.dir
	}
	if cmd.Flags().Changed("suffix") {
		conf.Credentials.Suffix = f.suffix
	}
	if cmd.Flags().Changed("account") {
		conf.Session.DefaultAccount = f.account
	}
	if cmd.Flags().Changed("history") {
		conf.Shell.HistoryFile = f.history
	}
	if cmd.Flags().Changed("dry-run") {
		conf.FCM.DryRun = f.dryRun
	}
	return conf, nil
}

func run(ctx context.Context, conf *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	conf.Log.ApplyGlobal()

	a := new(app.App)
	sh := shell.New()
	Bootstrap(a, conf, sh)
	if err := a.Start(ctx); err != nil {
		log.Fatal("can't start app", zap.Error(err))
	}
	defer func() {
		if err := a.Close(context.Background()); err != nil {
			log.Warn("close app error", zap.Error(err))
		}
	}()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          sh.Prompt(),
		HistoryFile:     conf.Shell.HistoryFile,
		AutoComplete:    sh.Completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	return sh.Serve(ctx, rl)
}

func Bootstrap(a *app.App, conf *config.Config, sh shell.Shell) {
	a.Register(conf).
		Register(credstore.New()).
		Register(tokenalias.New()).
		Register(session.New()).
		Register(fcm.New()).
		Register(sh)
}

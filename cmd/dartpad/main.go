package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AR1947/dart-pad/pkg/audit"
	"github.com/AR1947/dart-pad/pkg/config"
	"github.com/AR1947/dart-pad/pkg/gateway"
	"github.com/AR1947/dart-pad/pkg/imports"
	"github.com/AR1947/dart-pad/pkg/logging"
	"github.com/AR1947/dart-pad/pkg/project"
	"github.com/AR1947/dart-pad/pkg/version"
)

var cfgFile string

func main() {
	root := &cobra.Command{
		Use:   "dartpad",
		Short: "DartPad import admission service",
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.dartpad/config.yaml)")

	root.AddCommand(serveCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadPolicy(path string) (*imports.Policy, error) {
	if path == "" {
		return imports.DefaultPolicy(), nil
	}
	return imports.LoadPolicy(path)
}

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admission gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			policy, err := loadPolicy(cfg.Policy)
			if err != nil {
				return err
			}
			templates := project.NewTemplates(project.ResolveRoot(cfg.Templates))

			if addr == "" {
				addr = cfg.Gateway.Address
			}
			gw := gateway.NewServer(addr, policy, templates,
				gateway.AllowlistAuthorizer{Allowed: cfg.Gateway.AllowedAddrs})

			logger := logging.New(cfg.LogLevel, cfg.LogFormat)
			gw.SetLogger(logger)

			if cfg.AuditDir != "" {
				recorder, err := audit.NewFileRecorder(cfg.AuditDir)
				if err != nil {
					return err
				}
				gw.SetRecorder(recorder)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			go func() {
				if err := gw.Start(ctx); err != nil && err != context.Canceled {
					fmt.Fprintln(os.Stderr, err)
					cancel()
				}
			}()

			fmt.Printf("dartpad gateway listening on %s\n", gw.Addr())
			waitForSignal()
			cancel()
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "gateway listen address")
	return cmd
}

func checkCmd() *cobra.Command {
	var localFiles []string

	cmd := &cobra.Command{
		Use:   "check [import-uri...]",
		Short: "Classify import URIs against the policy tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			policy, err := loadPolicy(cfg.Policy)
			if err != nil {
				return err
			}

			decls := make([]imports.ImportDecl, 0, len(args))
			for _, uri := range args {
				decls = append(decls, imports.ImportDecl{URI: uri})
			}
			local := imports.LocalSet(localFiles)

			profile := policy.DetectProfile(decls)
			rejected := policy.CollectUnsupported(decls, local)

			for _, decl := range decls {
				verdict := "supported"
				if policy.IsUnsupported(decl.URI, local) {
					verdict = "UNSUPPORTED"
				}
				fmt.Printf("%-12s %s\n", verdict, decl.URI)
			}
			for _, name := range policy.CollectDeprecated(decls) {
				fmt.Printf("warning: package %s is deprecated\n", name)
			}
			fmt.Printf("profile: flutter=%v firebase=%v\n", profile.UsesFlutter, profile.UsesFirebase)

			if len(rejected) > 0 {
				return fmt.Errorf("%d unsupported import(s)", len(rejected))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&localFiles, "local", nil, "sanitized sibling filenames of the submission")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}

func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}

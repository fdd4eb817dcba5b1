// Command sshconf inspects and reformats OpenSSH client configuration files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/confkit/sshconf"
	"github.com/confkit/sshconf/log"
)

var version = "dev" // set by the linker

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// the error is already printed by cobra
		os.Exit(1)
	}
}

// newRootCmd creates and configures the root command. Tests create fresh
// instances through this to stay isolated from each other.
func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sshconf",
		Short: "Inspect and reformat OpenSSH client configuration files",
		Long: `sshconf reads configuration files in the OpenSSH client dialect and can
query the options that apply to a hostname, list the Host declarations
matching it, or reformat the file with consistent indentation.

Match directives are not supported and fail the parse.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				log.SetTraceLogger(slog.New(handler))
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "F", "", "configuration file (default is ~/.ssh/config)")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log trace events to stderr")

	cmd.AddCommand(newGetCmd(&configPath))
	cmd.AddCommand(newHostsCmd(&configPath))
	cmd.AddCommand(newFmtCmd(&configPath))

	return cmd
}

// loadConfig opens the configuration selected by the persistent -F flag,
// falling back to the user's ~/.ssh/config.
func loadConfig(path string) (*sshconf.Config, error) {
	if path == "" {
		return sshconf.LoadUserConfig()
	}
	return sshconf.LoadFile(path)
}

func newGetCmd(configPath *string) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "get <host>",
		Short: "Print the configuration that applies to a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			keywords, err := config.ForHost(args[0])
			if err != nil {
				return err
			}
			if key != "" {
				value, err := keywords.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}
			for _, k := range keywords.Keys() {
				value, err := keywords.Get(k)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", k, value)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "print only the value of this keyword")

	return cmd
}

func newHostsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "hosts <host>",
		Short: "Print the Host declarations that match a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			blocks, err := config.MatchingBlocks(args[0])
			if err != nil {
				return err
			}
			for _, block := range blocks {
				fmt.Fprintf(cmd.OutOrStdout(), "Host %s\n", block.Hosts)
			}
			return nil
		},
	}
}

func newFmtCmd(configPath *string) *cobra.Command {
	var indent string
	var blankLines int
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Reformat a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *configPath
			if path == "" {
				var err error
				path, err = sshconf.UserConfigPath()
				if err != nil {
					return err
				}
			}
			config, err := sshconf.LoadFile(path)
			if err != nil {
				return err
			}
			opts := []sshconf.DumpOption{
				sshconf.WithIndent(indent),
				sshconf.WithBlankLines(blankLines),
			}
			if write {
				return sshconf.WriteFile(path, config, opts...)
			}
			return sshconf.Dump(cmd.OutOrStdout(), config, opts...)
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "    ", "indentation for keyword lines")
	cmd.Flags().IntVar(&blankLines, "blank-lines", 1, "blank lines between host blocks")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing")

	return cmd
}

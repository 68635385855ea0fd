package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
	"holdem-agent/pkg/gamestate"
	"holdem-agent/pkg/protocol"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var variantName string

	rootCmd := &cobra.Command{
		Use:   "wire",
		Short: "Convert game states between YAML and the judge's line protocol",
		Long: `wire writes and reads the line protocol a judge sends to an agent.

Use it to build fixtures for an agent, or to inspect what a judge sent.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&variantName, "variant", "v", string(protocol.VariantA), "line layout: a, b or c")

	variant := func() (protocol.Variant, error) {
		return protocol.VariantFromString(variantName)
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "encode [state.yaml]",
		Short: "Write a YAML game state as protocol lines",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := variant()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return encode(in, cmd.OutOrStdout(), v)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "decode",
		Short: "Read protocol lines from stdin and print the game state as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := variant()
			if err != nil {
				return err
			}

			state, err := protocol.Decode(cmd.InOrStdin(), v)
			if err != nil {
				return err
			}

			return yaml.NewEncoder(cmd.OutOrStdout()).Encode(state)
		},
	})

	var summary bool
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check that stdin holds a playable game state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := variant()
			if err != nil {
				return err
			}

			state, err := protocol.Decode(cmd.InOrStdin(), v)
			if err != nil {
				return err
			}

			if err := protocol.RequirePlayable(state); err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"variant": v.String(),
				"players": len(state.Players),
				"pots":    len(state.Pots),
			}).Debug("state is playable")

			if summary {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(checkSummary{
					Variant: v,
					Players: len(state.Players),
					Pots:    len(state.Pots),
					Total:   state.Pots.Total(),
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
	checkCmd.Flags().BoolVar(&summary, "json", false, "print a JSON summary instead of ok")
	rootCmd.AddCommand(checkCmd)

	return rootCmd
}

type checkSummary struct {
	Variant protocol.Variant `json:"variant"`
	Players int              `json:"players"`
	Pots    int              `json:"pots"`
	Total   float64          `json:"total"`
}

func encode(in io.Reader, out io.Writer, variant protocol.Variant) error {
	var state gamestate.GameState
	if err := yaml.NewDecoder(in).Decode(&state); err != nil {
		return fmt.Errorf("could not decode state: %w", err)
	}

	return protocol.Encode(out, variant, &state)
}

// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// reservoir builds a random reservoir of analog and spiking neurons with
// short-term plastic synapses, runs it on a sinusoidal input, and reports
// size, activity and efficacy statistics.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/emer/reservoir/config"
	"github.com/emer/reservoir/sim"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "reservoir",
		Short: "Reservoir computing simulation with short-term plastic synapses",
		Long: `reservoir builds a random recurrent network of analog and spiking neurons,
connected by synapses with transmission delays and short-term plasticity,
and runs it on a sinusoidal input.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "YAML config file, applied over the defaults")
	rootCmd.AddCommand(
		newRunCmd(),
		newDefaultsCmd(),
	)
	return rootCmd
}

// loadConfig returns the defaults, or the config file named by the --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	fn, _ := cmd.Flags().GetString("config")
	if fn == "" {
		return config.New(), nil
	}
	return config.Load(fn)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Build and run a reservoir",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("cycles") {
				cfg.NCycles, _ = cmd.Flags().GetInt("cycles")
			}
			if cmd.Flags().Changed("threads") {
				cfg.NThreads, _ = cmd.Flags().GetInt("threads")
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ss := sim.New(cfg)
			if err := ss.ConfigNet(); err != nil {
				return err
			}
			log.Printf("built reservoir: %d neurons, %d synapses, weight scale: %.4g\n", len(ss.Net.Neurons), len(ss.Net.Syns), ss.SpFac)
			if err := ss.Run(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(map[string]any{
					"cycles":    ss.Cyc,
					"neurons":   len(ss.Net.Neurons),
					"synapses":  len(ss.Net.Syns),
					"actAvg":    ss.Stats.ActAvg,
					"spikeRate": ss.Stats.SpikeRate,
					"effMin":    ss.Stats.Eff.Min,
					"effMax":    ss.Stats.Eff.Max,
					"effMean":   ss.Stats.Eff.Mean(),
					"effN":      ss.Stats.Eff.N,
				})
			}
			fmt.Fprint(out, ss.Net.SizeReport())
			fmt.Fprintf(out, "\nCycles: %d\t ActAvg: %.4g\t SpikeRate: %.4g\n", ss.Cyc, ss.Stats.ActAvg, ss.Stats.SpikeRate)
			fmt.Fprintf(out, "Efficacy:\t Min: %.4g\t Max: %.4g\t Mean: %.4g\t N: %d\n", ss.Stats.Eff.Min, ss.Stats.Eff.Max, ss.Stats.Eff.Mean(), ss.Stats.Eff.N)
			if tmrs, _ := cmd.Flags().GetBool("timers"); tmrs {
				fmt.Fprint(out, ss.Net.TimerReport())
			}
			return nil
		},
	}
	cmd.Flags().Int("cycles", 0, "number of cycles to run, overrides the config")
	cmd.Flags().Int("threads", 0, "number of parallel workers, overrides the config")
	cmd.Flags().Int64("seed", 0, "random seed, overrides the config")
	cmd.Flags().Bool("json", false, "output statistics as JSON")
	cmd.Flags().Bool("timers", false, "report time spent in each function")
	return cmd
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the config in YAML format -- the defaults, or the --config file merged over them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

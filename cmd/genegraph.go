/**
 * Filename: /Users/bao/code/genegraph/cmd/genegraph.go
 * Path: /Users/bao/code/genegraph/cmd
 * Created Date: Monday, October 19th 2026, 4:21:45 pm
 * Author: bao
 *
 * Copyright (c) 2026 Haibao Tang
 */

package main

import (
	"fmt"
	"os"
	"strings"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"
	"github.com/tanghaibao/genegraph"
)

var log = logging.MustGetLogger("main")

var (
	configFile string
	logLevel   string
)

// banner prints the separate steps
func banner(message string) {
	message = "* " + message + " *"
	log.Noticef(strings.Repeat("*", len(message)))
	log.Noticef(message)
	log.Noticef(strings.Repeat("*", len(message)))
}

// loadConfig reads the config file if given, then applies the flags that
// were set explicitly on the command line
func loadConfig(cmd *cobra.Command) (genegraph.Config, error) {
	config := genegraph.DefaultConfig()
	if configFile != "" {
		var err error
		if config, err = genegraph.LoadConfig(configFile); err != nil {
			return config, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		config.LogLevel = strings.ToUpper(logLevel)
	}
	if flags.Lookup("k") != nil && flags.Changed("k") {
		config.K, _ = flags.GetInt("k")
	}
	if flags.Lookup("span") != nil && flags.Changed("span") {
		config.Span, _ = flags.GetString("span")
	}
	if flags.Lookup("skip-short") != nil && flags.Changed("skip-short") {
		config.SkipShort, _ = flags.GetBool("skip-short")
	}
	if flags.Lookup("no-trim") != nil && flags.Changed("no-trim") {
		noTrim, _ := flags.GetBool("no-trim")
		config.Trim = !noTrim
	}
	if flags.Lookup("include-gaps") != nil && flags.Changed("include-gaps") {
		config.IncludeGaps, _ = flags.GetBool("include-gaps")
	}
	if flags.Lookup("linear") != nil && flags.Changed("linear") {
		linear, _ := flags.GetBool("linear")
		config.Circular = !linear
	}
	if flags.Lookup("class") != nil && flags.Changed("class") {
		config.Class, _ = flags.GetString("class")
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, config.ApplyLogLevel()
}

var rootCmd = &cobra.Command{
	Use:   "genegraph",
	Short: "Gene-order k-mer graphs from reads and references",
	Long: `genegraph groups sliding windows of k consecutive genes into graph
nodes, links windows that overlap by k-1 genes along the same read or
reference, computes the depth of every node and writes a GFA graph.`,
	Version:       genegraph.Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var buildCmd = &cobra.Command{
	Use:   "build genes.fastq orders.json graph.gfa",
	Short: "Build the k-mer graph from gene orders on reads",
	Long: `Build function:
Given the gene sequences (FASTQ) and the ordered, sign-prefixed gene calls of
every read (JSON object of read => ["+geneA", "-geneB", ...]), slide a window
of k genes along each read, merge windows that are reverse complements of each
other and link consecutive windows. Genes without sequence are skipped.
`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		banner(fmt.Sprintf("Build %d-mer graph from reads", config.K))
		p := genegraph.ReadGraphBuilder{
			Genefile:  args[0],
			Orderfile: args[1],
			OutFile:   args[2],
			Config:    config,
		}
		return p.Run()
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph kmers.fasta graph.gfa",
	Short: "Build the k-mer graph from located k-mer windows",
	Long: `Graph function:
Given located k-mer windows as written by "genegraph kmers", with headers

>kmer|accession@start-end|length|class|read

build the graph, then trim the overlapping bases between neighbouring windows
so that every base of the references appears in a single segment.
`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		banner("Build k-mer graph from located windows")
		p := genegraph.CoordGraphBuilder{
			Kmerfile: args[0],
			OutFile:  args[1],
			Config:   config,
		}
		return p.Run()
	},
}

var kmersCmd = &cobra.Command{
	Use:   "kmers reference.fasta genes.bed kmers.fasta",
	Short: "Extract located k-mer windows from a reference",
	Long: `Kmers function:
Given a reference FASTA and its genes (BED6: chrom, start, end, name, score,
strand), write one window per run of k consecutive genes. References are
treated as circular unless --linear is set.
`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		banner(fmt.Sprintf("Extract %d-mer windows", config.K))
		p := genegraph.WindowExtractor{
			Fastafile: args[0],
			Bedfile:   args[1],
			OutFile:   args[2],
			Config:    config,
		}
		return p.Run()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats graph.gfa",
	Short: "Summarize a graph file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(cmd); err != nil {
			return err
		}
		p := genegraph.Summarizer{Gfafile: args[0]}
		return p.Run(os.Stdout)
	},
}

func init() {
	defaults := genegraph.DefaultConfig()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel,
		"Log level (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG)")

	buildCmd.Flags().IntP("k", "k", defaults.K, "Number of consecutive genes per k-mer")
	buildCmd.Flags().String("span", defaults.Span, "Node sequence: gene (middle gene) or window")
	buildCmd.Flags().Bool("skip-short", defaults.SkipShort, "Skip reads with fewer than k genes instead of failing")

	graphCmd.Flags().IntP("k", "k", defaults.K, "Number of consecutive genes per k-mer")
	graphCmd.Flags().Bool("no-trim", !defaults.Trim, "Keep the overlapping bases between windows")

	kmersCmd.Flags().IntP("k", "k", defaults.K, "Number of consecutive genes per k-mer")
	kmersCmd.Flags().BoolP("include-gaps", "i", defaults.IncludeGaps, "Include gaps between genes in the windows")
	kmersCmd.Flags().Bool("linear", !defaults.Circular, "Do not wrap windows around the end of the references")
	kmersCmd.Flags().String("class", defaults.Class, "Sequence class written into the headers, e.g. plasmid")

	rootCmd.AddCommand(buildCmd, graphCmd, kmersCmd, statsCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

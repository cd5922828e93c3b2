// Package cli implements the f16z command line tool.
//
// Every flag can also be set through the environment as F16Z_<FLAG>, with
// dashes replaced by underscores (e.g. F16Z_MAX_DECODED_SIZE=1048576). A .env
// and a .env.local file in the working directory are loaded first.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arloliu/f16z"
	"github.com/arloliu/f16z/format"
)

const (
	// Version of the f16z command.
	Version = "0.3.0"

	envPrefix = "f16z"

	// wrap is the number of characters to wrap the help text at
	wrap = 50
)

// app carries the state shared by the commands of one invocation.
type app struct {
	conf   *viper.Viper
	logger *log.Logger
	codec  *f16z.Codec
}

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{
		conf:   viper.New(),
		logger: log.New(io.Discard, "f16z: ", 0),
	}

	rootCmd := &cobra.Command{
		Use:   "f16z",
		Short: "encode float32 arrays as compact text",
		Long: fmt.Sprintf(`f16z (v%s)

Converts float32 arrays to half precision, compresses them with zlib
and writes base-85 text that is safe in URLs and JSON, and back.`, Version),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of f16z",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "f16z v%s\n", Version)
		},
	}

	key := "compression"
	rootCmd.PersistentFlags().String(key, "zlib", wrapString("compression to use (zlib, zstd, s2, lz4, none). Only zlib text is readable by other implementations"))
	key = "level"
	rootCmd.PersistentFlags().Int(key, -1, wrapString("zlib compression level, -2 (Huffman only) to 9 (best), -1 for the default"))
	key = "max-decoded-size"
	rootCmd.PersistentFlags().Int(key, f16z.DefaultMaxDecodedSize, wrapString("maximum decompressed payload in bytes accepted by decode, 0 for no limit"))
	key = "verbose"
	rootCmd.PersistentFlags().BoolP(key, "v", false, wrapString("print diagnostics to stderr"))

	rootCmd.AddCommand(a.encodeCmd())
	rootCmd.AddCommand(a.decodeCmd())
	rootCmd.AddCommand(a.inspectCmd())
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// Execute runs the command tree with os.Args. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the environment, binds the flags of the running command and
// builds the codec.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	a.conf.SetEnvPrefix(envPrefix)
	a.conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.conf.AutomaticEnv()

	if err := a.conf.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if a.conf.GetBool("verbose") {
		a.logger.SetOutput(cmd.ErrOrStderr())
	}

	opts, err := a.codecOptions()
	if err != nil {
		return err
	}

	a.codec, err = f16z.NewCodec(opts...)
	if err != nil {
		return err
	}
	a.logger.Printf("codec: compression=%s level=%d max-decoded-size=%d",
		a.codec.Compression(), a.codec.Level(), a.conf.GetInt("max-decoded-size"))

	return nil
}

func (a *app) codecOptions() ([]f16z.CodecOption, error) {
	name := a.conf.GetString("compression")
	ct, ok := format.ParseCompressionType(name)
	if !ok {
		return nil, fmt.Errorf("invalid compression %q", name)
	}

	opts := []f16z.CodecOption{
		f16z.WithCompression(ct),
		f16z.WithMaxDecodedSize(a.conf.GetInt("max-decoded-size")),
	}
	if level := a.conf.GetInt("level"); level != -1 {
		opts = append(opts, f16z.WithCompressionLevel(level))
	}

	return opts, nil
}

// wrapString wraps a string at wrap characters
func wrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		if lineWidth > 0 && lineWidth+1+wordWidth > wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

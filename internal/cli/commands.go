package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/f16z"
	"github.com/arloliu/f16z/half"
	"github.com/arloliu/f16z/z85"
)

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [values...]",
		Short: "Encode float32 values to text",
		Long: `Encode float32 values to text. Values are read from the arguments, or from
stdin when no argument is given, as a JSON array or separated by whitespace
and commas. Put -- before the values when the first one is negative.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			values, err := parseValues(input)
			if err != nil {
				return err
			}

			text, stats, err := a.codec.EncodeWithStats(values)
			if err != nil {
				return err
			}
			a.logger.Printf("encoded %d values: %d half bytes, %d compressed, %d padded, %d chars",
				stats.Count, stats.RawSize, stats.Compression.CompressedSize, stats.PaddedSize, stats.TextSize)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

			return err
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode text to float32 values",
		Long: `Decode text to float32 values. The text is read from the argument, or from
stdin when no argument is given. Values are printed as a JSON array where
infinities and NaN become null, or one per line with --format lines.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			text := strings.TrimSpace(input)
			values, err := a.codec.Decode(text)
			if err != nil {
				return err
			}
			a.logger.Printf("decoded %d values from %d chars", len(values), len(text))

			switch a.conf.GetString("format") {
			case "json":
				return writeJSON(cmd.OutOrStdout(), values)
			case "lines":
				return writeLines(cmd.OutOrStdout(), values)
			default:
				return fmt.Errorf("invalid format %q", a.conf.GetString("format"))
			}
		},
	}

	key := "format"
	cmd.Flags().String(key, "json", wrapString("output format (json, lines)"))

	return cmd
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [text]",
		Short: "Describe an encoded text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			text := strings.TrimSpace(input)
			if !z85.ValidString(text) {
				a.logger.Printf("text of %d chars is not valid base-85", len(text))
			}

			values, err := a.codec.Decode(text)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), a.codec, text, values)
		},
	}
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}

func writeReport(w io.Writer, codec *f16z.Codec, text string, values []float32) error {
	padded := z85.DecodedLen(len(text))
	raw := len(values) * half.Size
	ratio := 0.0
	if len(values) > 0 {
		ratio = float64(len(text)) / float64(len(values)*4)
	}

	_, err := fmt.Fprintf(w, `length:       %d chars
values:       %d
compression:  %s
level:        %d
half bytes:   %d
padded bytes: %d
text/float32: %.1f%%
id:           %016x
`, len(text), len(values), codec.Compression(), codec.Level(), raw, padded, ratio*100, f16z.ID(text))

	return err
}

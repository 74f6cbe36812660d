package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hdtodd/omnisensor-433/internal/bitrow"
	"github.com/hdtodd/omnisensor-433/pkg/omni"
)

var (
	rootCmd = &cobra.Command{
		Use:   "omni-decode [hex frame | row hex ...]",
		Short: "Decode Omni multisensor frames",
		Long: "omni-decode decodes 10-byte Omni multisensor frames.\n" +
			"A single argument is treated as one framed message; multiple\n" +
			"arguments are treated as the repeated demodulator rows of one\n" +
			"transmission and run through row selection first.",
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := omni.DecodeOptions{MinRepeats: minRepeats}
			ctx := cmd.Context()
			if len(args) == 0 {
				return runInteractive(ctx, opts)
			}
			return decodeArgs(ctx, opts, args)
		},
	}

	minRepeats int
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().IntVar(&minRepeats, "min-repeats", 0,
		"identical rows required to accept a frame (0 = protocol default of 2)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log dropped-frame diagnostics")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(ctx context.Context, opts omni.DecodeOptions) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("omni-decode interactive mode. Paste hex rows and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := decodeArgs(ctx, opts, strings.Fields(line)); err != nil {
			logrus.WithError(err).Error("failed to decode transmission")
		}
	}
	return scanner.Err()
}

func decodeArgs(ctx context.Context, opts omni.DecodeOptions, args []string) error {
	var (
		result omni.Result
		err    error
	)
	if len(args) == 1 {
		result, err = omni.DecodeHexWithOptions(ctx, args[0], opts)
	} else {
		rows := make([]bitrow.Row, 0, len(args))
		for _, arg := range args {
			data, derr := hex.DecodeString(strings.TrimPrefix(strings.ToUpper(arg), "0X"))
			if derr != nil {
				return fmt.Errorf("row %q: %w", arg, derr)
			}
			rows = append(rows, bitrow.FromBytes(data))
		}
		result, err = omni.DecodeRowsWithOptions(ctx, rows, opts)
	}
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "ffiguard-go",
		Short:   "Boundary-guard toolkit for Go libraries exported to C callers",
		Long:    "ffiguard-go keeps panics, C strings and error out-parameters\nsafe at the boundary of c-shared and c-archive Go libraries.",
		Version: ffiguard.WrapperVersion(),
	}
	root.AddCommand(newCheckCommand())
	return root
}

func newCheckCommand() *cobra.Command {
	var includeStack bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a guarded self-test of the guard and string layers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if includeStack {
				ffiguard.Init(ffiguard.Config{IncludeStack: true})
			}

			if got := ffiguard.Guard(0, nil, func() (int, error) { return 42, nil }); got != 42 {
				return fmt.Errorf("guard success path returned %d, want 42", got)
			}

			var sunk string
			got := ffiguard.GuardWithSink(-1, nil, func(msg string) { sunk = msg }, func() (int, error) {
				panic("self-test panic")
			})
			if got != -1 || sunk == "" {
				return fmt.Errorf("guard panic path failed: got %d, sink %q", got, sunk)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "guard layer ok (intercepted: %s)\n", sunk)

			p := ffiguard.EncodeString("self-test")
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "string layer not built (cgo disabled); skipping")
				return nil
			}
			s, err := ffiguard.DecodeString(p)
			ffiguard.FreeString(p)
			if err != nil {
				return fmt.Errorf("string round trip: %w", err)
			}
			if s != "self-test" {
				return fmt.Errorf("string round trip mismatch: %q", s)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "string layer ok")
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeStack, "stack", false, "Include stack traces in intercepted panic messages")
	return cmd
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newCallCmd(a *app) *cobra.Command {
	var tool string
	cmd := &cobra.Command{
		Use:   "call [payload]",
		Short: "Run one tool call and print its result",
		Long: `Runs a JSON tool call request
  {"type":"function","function":{"name":"add","arguments":{"a":1,"b":2}}}
read from the argument, or from stdin when no argument is given.

With --tool, the payload is the arguments object alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload []byte
			if len(args) == 1 {
				payload = []byte(args[0])
			} else {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				payload = b
			}

			h, err := a.handler()
			if err != nil {
				return err
			}
			var res string
			if tool != "" {
				res, err = h.CallFunction(cmd.Context(), tool, payload)
			} else {
				res, err = h.CallTool(cmd.Context(), payload)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "", "tool name; the payload is then the arguments object")
	return cmd
}

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/status"

	"github.com/algebralab/algebralab/internal/lab/server"
)

var (
	callAddr    string
	callTimeout time.Duration
)

var callCmd = &cobra.Command{
	Use:   "call <method> [json]",
	Short: "Call a method on a running server over gRPC",
	Long: `Call a method of algebralab.v1.Lab on a running server and print the
JSON response. Without a method name the server health is checked.

Methods: Divide, ConvertComplex, SolveLinear, SolveFormula, Isolate,
Evaluate, NotableProduct, Classify, Translate, History

Examples:
  algebralab call Divide '{"polynomial": "x^2 - 1", "root": "1"}'
  algebralab call Classify '{"input": "sqrt(2)"}'
  algebralab call health`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(callCmd)
	callCmd.Flags().StringVar(&callAddr, "addr", "", "server address (default localhost:<server.grpc_port>)")
	callCmd.Flags().DurationVar(&callTimeout, "timeout", 10*time.Second, "call timeout")
}

func runCall(cmd *cobra.Command, args []string) error {
	addr := callAddr
	if addr == "" {
		addr = fmt.Sprintf("localhost:%d", appConfig.Server.GRPCPort)
	}

	client, err := server.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
	defer cancel()

	if strings.EqualFold(args[0], "health") {
		ok, err := client.Health(ctx)
		if err != nil {
			return callError(err)
		}
		state := "SERVING"
		if !ok {
			state = "NOT_SERVING"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", addr, state)
		return nil
	}

	payload := []byte("{}")
	if len(args) == 2 {
		payload = []byte(args[1])
	}
	out, err := client.CallJSON(ctx, args[0], payload)
	if err != nil {
		return callError(err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, out, "", "  "); err != nil {
		pretty.Reset()
		pretty.Write(out)
	}
	fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
	return nil
}

// callError turns a gRPC status into "<code>: <message>"
func callError(err error) error {
	if st, ok := status.FromError(err); ok {
		return fmt.Errorf("%s: %s", st.Code(), st.Message())
	}
	return err
}

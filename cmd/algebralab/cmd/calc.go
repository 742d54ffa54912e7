package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/algebralab/algebralab/internal/lab/service"
)

var (
	complexFrom   string
	solveVariable string
	isolateTarget string
	evalVariables string
	evalFile      string
	productMode   string
)

var divideCmd = &cobra.Command{
	Use:   "divide <polynomial> <root>",
	Short: "Divide a polynomial by (x - root) with synthetic division",
	Long: `Divide a polynomial by (x - root) and print the synthetic-division table.

Coefficients and the root may be complex.

Examples:
  algebralab divide "x^3 - 6x^2 + 11x - 6" 1
  algebralab divide "x^2 + 1" i`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.Divide(cmd.Context(), &service.DivideRequest{Polynomial: args[0], Root: args[1]})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var complexCmd = &cobra.Command{
	Use:   "complex <first> <second>",
	Short: "Convert a complex number between cartesian, polar and exponential form",
	Long: `Convert a complex number given in one form into all three forms.

For --from cartesian the arguments are the real and imaginary parts, for
polar and exponential the modulus and the angle in radians. Values accept
sqrt(3), √3, pi/3 and similar.

Examples:
  algebralab complex 1 "sqrt(3)"
  algebralab complex --from polar 2 pi/3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.ConvertComplex(cmd.Context(), &service.ConvertRequest{From: complexFrom, First: args[0], Second: args[1]})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve <equation>",
	Short: "Solve a linear equation",
	Long: `Solve a linear equation in one variable.

Examples:
  algebralab solve "2(x + 3) = 5x - 3"
  algebralab solve --var y "3y - 3 = 0"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.SolveLinear(cmd.Context(), &service.SolveRequest{Equation: strings.Join(args, " "), Variable: solveVariable})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var formulaCmd = &cobra.Command{
	Use:   "formula <formula>",
	Short: "Rearrange a formula for each of its variables",
	Long: `Rearrange a formula such as d = v*i*t for every variable it contains.

Examples:
  algebralab formula "d = v*i*t"
  algebralab formula "F = 9/5*C + 32"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.SolveFormula(cmd.Context(), &service.FormulaRequest{Formula: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var isolateCmd = &cobra.Command{
	Use:   "isolate <expression> <variable>",
	Short: "Isolate a variable in an expression",
	Long: `Isolate a variable in expression = target and show every step.

Examples:
  algebralab isolate "v*i*t" t --equals d
  algebralab isolate "5(F-32)/9" F --equals C`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.Isolate(cmd.Context(), &service.IsolateRequest{Expression: args[0], Variable: args[1], Target: isolateTarget})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [equation...]",
	Short: "Evaluate a worksheet of variables and equations",
	Long: `Evaluate equations using the variables given with --vars.

Each argument is one equation; "name = expr" stores its value for later
equations. With --file, equations are read one per line ("-" is stdin).

Examples:
  algebralab eval --vars "x = 10, y = 5" "total = x * y" "total / 2"
  algebralab eval --vars "r = 2" --file area.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		equations := strings.Join(args, "\n")
		if evalFile != "" {
			data, err := readInput(cmd.InOrStdin(), evalFile)
			if err != nil {
				return err
			}
			equations = strings.TrimSpace(equations + "\n" + string(data))
		}
		return withService(func(svc *service.Service) error {
			resp, err := svc.Evaluate(cmd.Context(), &service.EvaluateRequest{Variables: evalVariables, Equations: equations})
			if resp != nil {
				if perr := printResult(cmd.OutOrStdout(), resp, resp.Lines()...); perr != nil && err == nil {
					err = perr
				}
			}
			return err
		})
	},
}

var productsCmd = &cobra.Command{
	Use:   "products <kind> <a> <b>",
	Short: "Expand a notable product",
	Long: `Expand a notable product numerically or algebraically.

Kinds: square-sum, square-diff, cube-sum, cube-diff, common-term, conjugates

Examples:
  algebralab products square-sum 3 2
  algebralab products --mode algebraic square-sum 3x 5y`,
	Args:      cobra.ExactArgs(3),
	ValidArgs: []string{"square-sum", "square-diff", "cube-sum", "cube-diff", "common-term", "conjugates"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			resp, err := svc.NotableProduct(cmd.Context(), &service.ProductRequest{Kind: args[0], Mode: productMode, A: args[1], B: args[2]})
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), resp, resp.Lines()...)
		})
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify <number>...",
	Short: "Classify numbers as natural, integer, rational or irrational",
	Long: `Classify numbers such as 7, -3, -7/2, 0.25, √2 or pi.

Negative numbers follow "--" so they are not read as flags.

Examples:
  algebralab classify 7 "sqrt(2)" pi
  algebralab classify -- -7/2 0.25`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			var responses []*service.ClassifyResponse
			var lines []string
			for _, a := range args {
				resp, err := svc.Classify(cmd.Context(), &service.ClassifyRequest{Input: a})
				if err != nil {
					return err
				}
				responses = append(responses, resp)
				lines = append(lines, resp.Lines()...)
			}
			return printResult(cmd.OutOrStdout(), responses, lines...)
		})
	},
}

func init() {
	rootCmd.AddCommand(divideCmd, complexCmd, solveCmd, formulaCmd, isolateCmd, evalCmd, productsCmd, classifyCmd)

	complexCmd.Flags().StringVarP(&complexFrom, "from", "f", "cartesian", "input form: cartesian, polar or exponential")
	solveCmd.Flags().StringVar(&solveVariable, "var", "x", "variable to solve for")
	isolateCmd.Flags().StringVarP(&isolateTarget, "equals", "e", "", "what the expression equals, e.g. d")
	isolateCmd.MarkFlagRequired("equals")
	evalCmd.Flags().StringVar(&evalVariables, "vars", "", `variable assignments, e.g. "x = 10, y = 5"`)
	evalCmd.Flags().StringVar(&evalFile, "file", "", `file with one equation per line ("-" for stdin)`)
	productsCmd.Flags().StringVarP(&productMode, "mode", "m", "numeric", "numeric or algebraic")
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

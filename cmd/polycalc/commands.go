package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/internal/config"
)

type options struct {
	configPath string
	field      string
	output     string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "polycalc",
		Short: "Multivariate polynomial calculator",
		Long: `polycalc parses, combines, factors and evaluates polynomials such as
"3*X^2*Y - 2*X + 7" over a chosen coefficient field.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown output format %q (want text, json or yaml)", opts.output)
			}
			if opts.field != "" {
				return nil
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.field = cfg.Field
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (its field is the default)")
	root.PersistentFlags().StringVarP(&opts.field, "field", "f", "", "Coefficient field: "+strings.Join(gopoly.Fields(), ", "))
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, json or yaml")

	binary := func(use, tool, short string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " A B",
			Short: short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, tool, map[string]interface{}{"a": args[0], "b": args[1]})
			},
		}
	}
	unary := func(use, tool, short string) *cobra.Command {
		return &cobra.Command{
			Use:   use + " P",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, opts, tool, map[string]interface{}{"poly": args[0]})
			},
		}
	}

	root.AddCommand(
		unary("parse", "parse", "Print the canonical form"),
		binary("add", "add", "A + B"),
		binary("sub", "subtract", "A - B"),
		binary("mul", "multiply", "A * B"),
		binary("div", "divide", "Quotient of A / B"),
		binary("gcd", "gcd", "Greatest common divisor of A and B"),
		unary("factor", "factor", "Factor over rational roots"),
		unary("roots", "roots", "Approximate complex roots"),
		powCmd(opts),
		symbolCmd(opts, "diff", "derivative", "Derivative with respect to --var"),
		symbolCmd(opts, "integrate", "integrate", "Indefinite integral in --var plus --constant"),
		bindingsCmd(opts, "eval", "evaluate", "Evaluate at SYMBOL=VALUE bindings"),
		bindingsCmd(opts, "compose", "compose", "Substitute SYMBOL=POLYNOMIAL bindings"),
		&cobra.Command{
			Use:   "schema",
			Short: "Print the MCP tool schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), gopoly.MCPToolSpec())
				return err
			},
		},
	)
	return root
}

func powCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pow P N",
		Short: "P raised to the non-negative integer N",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exponent %q is not an integer", args[1])
			}
			return run(cmd, opts, "pow", map[string]interface{}{"poly": args[0], "n": n})
		},
	}
}

func symbolCmd(opts *options, use, tool, short string) *cobra.Command {
	var sym, constant string
	cmd := &cobra.Command{
		Use:   use + " P",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{"poly": args[0], "var": sym}
			if constant != "" {
				params["constant"] = constant
			}
			return run(cmd, opts, tool, params)
		},
	}
	cmd.Flags().StringVar(&sym, "var", "X", "Variable symbol")
	if tool == "integrate" {
		cmd.Flags().StringVar(&constant, "constant", "", "Constant of integration")
	}
	return cmd
}

func bindingsCmd(opts *options, use, tool, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " P SYMBOL=VALUE...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings := map[string]interface{}{}
			for _, kv := range args[1:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok || k == "" {
					return fmt.Errorf("binding %q is not SYMBOL=VALUE", kv)
				}
				bindings[strings.TrimSpace(k)] = v
			}
			return run(cmd, opts, tool, map[string]interface{}{"poly": args[0], "bindings": bindings})
		},
	}
}

func run(cmd *cobra.Command, opts *options, tool string, params map[string]interface{}) error {
	params["field"] = opts.field
	resp := gopoly.HandleToolCall(gopoly.ToolRequest{Tool: tool, Params: params})
	if resp.Error != "" {
		return errors.New(resp.Error)
	}
	return render(cmd.OutOrStdout(), opts.output, resp)
}

func render(w io.Writer, format string, resp gopoly.ToolResponse) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(resp); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err := fmt.Fprintln(w, resp.String)
	return err
}

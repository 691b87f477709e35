package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Anirach/ncd-health-plus/application/queries"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/infrastructure/modelfile"
)

func newGraphCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect or export the knowledge graph",
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "Show node and edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, a.queries.Overview())
		},
	}

	var nodeType, nodeDomain string
	nodes := &cobra.Command{
		Use:   "nodes [id]",
		Short: "List nodes, or show one node with its edges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				detail, err := a.queries.Node(vo.NodeID(args[0]))
				if err != nil {
					return err
				}
				return printJSON(cmd, detail)
			}
			var f queries.NodeFilter
			if nodeType != "" {
				t, err := vo.ParseNodeType(nodeType)
				if err != nil {
					return err
				}
				f.Type = t
			}
			if nodeDomain != "" {
				d, err := vo.ParseDomain(nodeDomain)
				if err != nil {
					return err
				}
				f.Domain = d
			}
			return printJSON(cmd, a.queries.Nodes(f))
		},
	}
	nodes.Flags().StringVar(&nodeType, "type", "", "filter by node type")
	nodes.Flags().StringVar(&nodeDomain, "domain", "", "filter by domain")

	var edgeDomain, source, target string
	edges := &cobra.Command{
		Use:   "edges",
		Short: "List edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f queries.EdgeFilter
			if edgeDomain != "" {
				d, err := vo.ParseDomain(edgeDomain)
				if err != nil {
					return err
				}
				f.Domain = d
			}
			if source != "" {
				id, err := vo.ParseNodeID(source)
				if err != nil {
					return err
				}
				f.Source = id
			}
			if target != "" {
				id, err := vo.ParseNodeID(target)
				if err != nil {
					return err
				}
				f.Target = id
			}
			list, _ := a.queries.Edges(f, 0, 0)
			return printJSON(cmd, list)
		},
	}
	edges.Flags().StringVar(&edgeDomain, "domain", "", "filter by domain")
	edges.Flags().StringVar(&source, "source", "", "filter by source node")
	edges.Flags().StringVar(&target, "target", "", "filter by target node")

	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the active model as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return modelfile.Encode(w, a.holder.Engine().Model())
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	cmd.AddCommand(summary, nodes, edges, export)
	return cmd
}

// Package cli implements the ncdctl command line tool.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Anirach/ncd-health-plus/application/queries"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	domainconfig "github.com/Anirach/ncd-health-plus/domain/config"
	"github.com/Anirach/ncd-health-plus/domain/core/aggregates"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/reference"
	"github.com/Anirach/ncd-health-plus/domain/services"
	"github.com/Anirach/ncd-health-plus/infrastructure/messaging/logging"
	"github.com/Anirach/ncd-health-plus/infrastructure/modelfile"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
	"github.com/Anirach/ncd-health-plus/pkg/observability"
)

// app is the state shared by all subcommands
type app struct {
	modelPath string
	logLevel  string
	gamma     float64
	maxHops   int
	raw       bool

	logger  *zap.Logger
	holder  *appservices.EngineHolder
	service *appservices.RiskService
	queries *queries.GraphQueryService
}

// NewRootCommand builds the ncdctl command tree
func NewRootCommand() *cobra.Command {
	a := &app{}
	defaults := domainconfig.DefaultEngineConfig()

	root := &cobra.Command{
		Use:   "ncdctl",
		Short: "Score NCD risk and simulate interventions",
		Long: `ncdctl scores chronic disease risk for a patient profile using a causal
knowledge graph, and simulates how interventions cascade through it.

Examples:
  ncdctl demo
  ncdctl risk --demo demo-moderate --ci
  ncdctl simulate --demo demo-moderate --statin
  ncdctl simulate --file patient.json --set ldl=100 --set sbp=125
  ncdctl graph export > model.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.modelPath, "model", "m", "", "YAML model file (default: built-in reference model)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level")
	flags.Float64Var(&a.gamma, "gamma", defaults.Gamma, "attenuation per hop")
	flags.IntVar(&a.maxHops, "max-hops", defaults.MaxHops, "maximum cascade depth")
	flags.BoolVar(&a.raw, "raw-deltas", false, "apply cascaded deltas without target-std scaling")

	root.AddCommand(
		newRiskCommand(a),
		newSimulateCommand(a),
		newProgressCommand(a),
		newGraphCommand(a),
		newDemoCommand(a),
		newTokenCommand(),
	)
	return root
}

// Execute runs the CLI against os.Args
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) init() error {
	a.logger = observability.NewLogger(observability.LogConfig{
		Level:       a.logLevel,
		Format:      "console",
		ServiceName: "ncdctl",
	}).Logger

	model, err := a.loadModel()
	if err != nil {
		return err
	}
	cfg := domainconfig.DefaultEngineConfig()
	cfg.Gamma = a.gamma
	cfg.MaxHops = a.maxHops
	if a.raw {
		cfg.DeltaScaling = domainconfig.DeltaScalingRaw
	}
	engine, err := services.NewEngine(model, cfg)
	if err != nil {
		return err
	}

	a.holder = appservices.NewEngineHolder(engine)
	a.service = appservices.NewRiskService(a.holder, logging.NewPublisher(a.logger), nil, nil, a.logger)
	a.queries = queries.NewGraphQueryService(a.holder)
	return nil
}

func (a *app) loadModel() (*aggregates.Model, error) {
	if a.modelPath == "" {
		return reference.BuildModel()
	}
	return modelfile.Load(a.modelPath)
}

// profileSource resolves --file or --demo into a profile
type profileSource struct {
	file string
	demo string
}

func (s *profileSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "JSON profile file, - for stdin")
	cmd.Flags().StringVarP(&s.demo, "demo", "d", "", "demo patient id")
	cmd.MarkFlagsMutuallyExclusive("file", "demo")
	cmd.MarkFlagsOneRequired("file", "demo")
}

func (s *profileSource) load(cmd *cobra.Command, a *app) (vo.PatientProfile, error) {
	if s.demo != "" {
		return a.service.DemoPatient(s.demo)
	}
	var p vo.PatientProfile
	if err := readJSON(cmd, s.file, &p); err != nil {
		return vo.PatientProfile{}, err
	}
	return p, nil
}

func readJSON(cmd *cobra.Command, path string, v interface{}) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return pkgerrors.NewValidationError(fmt.Sprintf("cannot open %s: %v", path, err))
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return pkgerrors.NewValidationError(fmt.Sprintf("invalid JSON in %s: %v", path, err))
	}
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

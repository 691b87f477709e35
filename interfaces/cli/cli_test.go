package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anirach/ncd-health-plus/application/queries"
	appservices "github.com/Anirach/ncd-health-plus/application/services"
	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/reference"
	"github.com/Anirach/ncd-health-plus/domain/services"
	"github.com/Anirach/ncd-health-plus/infrastructure/modelfile"
	"github.com/Anirach/ncd-health-plus/pkg/auth"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRisk(t *testing.T) {
	out, err := run(t, "", "risk", "--demo", reference.DemoLowID)
	require.NoError(t, err)

	var a appservices.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, reference.DemoLowID, a.PatientID)
	assert.Equal(t, vo.RiskLow, a.Level)
	assert.Nil(t, a.Bands)

	out, err = run(t, "", "risk", "-d", reference.DemoHighID, "--ci")
	require.NoError(t, err)
	a = appservices.Assessment{}
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, vo.RiskVeryHigh, a.Level)
	assert.NotNil(t, a.Bands)
}

func TestRisk_FromStdin(t *testing.T) {
	demo, _ := reference.DemoPatient(reference.DemoModerateID)
	body, err := json.Marshal(demo.WithID("walk-in"))
	require.NoError(t, err)

	out, err := run(t, string(body), "risk", "--file", "-")
	require.NoError(t, err)
	var a appservices.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "walk-in", a.PatientID)
}

func TestRisk_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		args []string
	}{
		{"no source", "", []string{"risk"}},
		{"both sources", "", []string{"risk", "-d", "demo-low", "-f", "-"}},
		{"unknown demo", "", []string{"risk", "-d", "nobody"}},
		{"bad json", "{", []string{"risk", "-f", "-"}},
		{"unknown factor", `{"glucose": 100}`, []string{"risk", "-f", "-"}},
		{"missing file", "", []string{"risk", "-f", filepath.Join(t.TempDir(), "absent.json")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.in, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSimulate(t *testing.T) {
	t.Run("statin plan", func(t *testing.T) {
		out, err := run(t, "", "simulate", "-d", reference.DemoModerateID, "--statin")
		require.NoError(t, err)
		var sim appservices.Simulation
		require.NoError(t, json.Unmarshal([]byte(out), &sim))
		assert.Equal(t, 1.0, sim.Result.Applied[vo.Statin])
		assert.InDelta(t, 162-8.575, sim.Result.Profile.Value(vo.LDL), 1e-9)
		assert.Less(t, sim.Result.Risks.NCDComposite, sim.Result.BaseRisks.NCDComposite)
	})

	t.Run("direct set wins over plan", func(t *testing.T) {
		out, err := run(t, "", "simulate", "-d", reference.DemoModerateID,
			"--sbp-reduction", "10", "--set", "sbp=125")
		require.NoError(t, err)
		var sim appservices.Simulation
		require.NoError(t, json.Unmarshal([]byte(out), &sim))
		assert.Equal(t, 125.0, sim.Result.Applied[vo.SBP])
	})

	t.Run("exercise flag", func(t *testing.T) {
		out, err := run(t, "", "simulate", "-d", reference.DemoModerateID, "--exercise", "4")
		require.NoError(t, err)
		var sim appservices.Simulation
		require.NoError(t, json.Unmarshal([]byte(out), &sim))
		assert.Equal(t, 4.0, sim.Result.Applied[vo.Exercise])
		assert.NotContains(t, sim.Result.Applied, vo.Smoking)
	})

	t.Run("nothing to simulate", func(t *testing.T) {
		_, err := run(t, "", "simulate", "-d", reference.DemoModerateID)
		require.Error(t, err)
		assert.True(t, pkgerrors.IsValidation(err))
	})

	t.Run("bad set", func(t *testing.T) {
		_, err := run(t, "", "simulate", "-d", reference.DemoModerateID, "--set", "ldl", "--set", "glucose=1", "--set", "sbp=low")
		require.Error(t, err)
		var verrs *pkgerrors.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Len(t, verrs.Errors, 3)
	})

	t.Run("invalid plan", func(t *testing.T) {
		_, err := run(t, "", "simulate", "-d", reference.DemoModerateID, "--exercise", "9")
		assert.Error(t, err)
	})
}

func TestParseSets(t *testing.T) {
	iv, err := parseSets([]string{" ldl = 100", "statin=1"})
	require.NoError(t, err)
	assert.Equal(t, services.Interventions{vo.LDL: 100, vo.Statin: 1}, iv)

	iv, err = parseSets(nil)
	require.NoError(t, err)
	assert.Empty(t, iv)
}

func TestGraph(t *testing.T) {
	t.Run("summary", func(t *testing.T) {
		out, err := run(t, "", "graph", "summary")
		require.NoError(t, err)
		var o queries.GraphOverview
		require.NoError(t, json.Unmarshal([]byte(out), &o))
		assert.Equal(t, 31, o.NodeCount)
		assert.Equal(t, 107, o.EdgeCount)
		assert.True(t, o.Acyclic)
	})

	t.Run("nodes by type", func(t *testing.T) {
		out, err := run(t, "", "graph", "nodes", "--type", "medication")
		require.NoError(t, err)
		var nodes []queries.NodeView
		require.NoError(t, json.Unmarshal([]byte(out), &nodes))
		assert.Len(t, nodes, 6)
	})

	t.Run("one node", func(t *testing.T) {
		out, err := run(t, "", "graph", "nodes", "ldl")
		require.NoError(t, err)
		var detail queries.NodeDetail
		require.NoError(t, json.Unmarshal([]byte(out), &detail))
		assert.Equal(t, vo.LDL, detail.Node.ID)
		require.NotNil(t, detail.Node.Statistic)
		assert.Equal(t, 35.0, detail.Node.Statistic.Std)
	})

	t.Run("unknown node", func(t *testing.T) {
		_, err := run(t, "", "graph", "nodes", "glucose")
		require.Error(t, err)
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("edges by source", func(t *testing.T) {
		out, err := run(t, "", "graph", "edges", "--source", "statin")
		require.NoError(t, err)
		var edges []queries.EdgeView
		require.NoError(t, json.Unmarshal([]byte(out), &edges))
		require.Len(t, edges, 5)
		assert.Equal(t, "e83", edges[0].ID)
	})

	t.Run("all edges unpaged", func(t *testing.T) {
		out, err := run(t, "", "graph", "edges")
		require.NoError(t, err)
		var edges []queries.EdgeView
		require.NoError(t, json.Unmarshal([]byte(out), &edges))
		assert.Len(t, edges, 107)
	})

	t.Run("bad filters", func(t *testing.T) {
		for _, args := range [][]string{
			{"graph", "nodes", "--type", "gene"},
			{"graph", "nodes", "--domain", "oncology"},
			{"graph", "edges", "--target", "glucose"},
		} {
			_, err := run(t, "", args...)
			assert.Error(t, err, args)
		}
	})
}

func TestGraphExport_RoundTrip(t *testing.T) {
	out, err := run(t, "", "graph", "export")
	require.NoError(t, err)
	m, err := modelfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 107, m.Graph().EdgeCount())

	path := filepath.Join(t.TempDir(), "model.yaml")
	_, err = run(t, "", "graph", "export", "-o", path)
	require.NoError(t, err)

	// the exported file loads back through --model
	out, err = run(t, "", "--model", path, "risk", "-d", reference.DemoLowID)
	require.NoError(t, err)
	var a appservices.Assessment
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, vo.RiskLow, a.Level)
}

func TestModelFlags(t *testing.T) {
	_, err := run(t, "", "--model", filepath.Join(t.TempDir(), "missing.yaml"), "demo")
	assert.Error(t, err)

	_, err = run(t, "", "--gamma", "1.5", "demo")
	assert.Error(t, err)

	_, err = run(t, "", "--raw-deltas", "--max-hops", "1", "demo")
	assert.NoError(t, err)
}

func TestDemo(t *testing.T) {
	out, err := run(t, "", "demo")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "Sarah Chen")
	assert.Contains(t, lines[3], reference.DemoHighID)

	out, err = run(t, "", "demo", "--json")
	require.NoError(t, err)
	var patients []vo.PatientProfile
	require.NoError(t, json.Unmarshal([]byte(out), &patients))
	assert.Len(t, patients, 3)
}

func TestProgress(t *testing.T) {
	low, _ := reference.DemoPatient(reference.DemoLowID)
	moderate, _ := reference.DemoPatient(reference.DemoModerateID)
	visits := []services.LabVisit{
		{Date: "2024-06-15", Profile: low},
		{Date: "2024-01-15", Profile: moderate},
	}
	body, err := json.Marshal(visits)
	require.NoError(t, err)

	out, err := run(t, string(body), "progress")
	require.NoError(t, err)
	var report services.ProgressReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Trend, 2)
	assert.Equal(t, "2024-01-15", report.Trend[0].Date)
	require.NotNil(t, report.Improvement)
	assert.Len(t, report.Milestones, 3)

	path := filepath.Join(t.TempDir(), "visits.json")
	require.NoError(t, os.WriteFile(path, body, 0o600))
	_, err = run(t, "", "progress", "-f", path)
	assert.NoError(t, err)

	_, err = run(t, "[]", "progress")
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")

	// a broken --model is ignored because token skips model loading
	out, err := run(t, "", "--model", "/nonexistent.yaml", "token", "--subject", "dr-lee", "--roles", "clinician,admin")
	require.NoError(t, err)

	v, err := auth.NewJWTValidator(auth.JWTConfig{SecretKey: "cli-secret", Issuer: "ncd-health-plus"})
	require.NoError(t, err)
	claims, err := v.ValidateToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "dr-lee", claims.Subject)
	assert.Equal(t, []string{"clinician", "admin"}, claims.Roles)

	_, err = run(t, "", "token")
	assert.Error(t, err, "subject is required")

	t.Setenv("JWT_SECRET", "")
	_, err = run(t, "", "token", "--subject", "dr-lee")
	assert.EqualError(t, err, "JWT_SECRET is not set")
}

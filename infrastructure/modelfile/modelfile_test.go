package modelfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/Anirach/ncd-health-plus/domain/core/valueobjects"
	"github.com/Anirach/ncd-health-plus/domain/reference"
	pkgerrors "github.com/Anirach/ncd-health-plus/pkg/errors"
)

func TestEncodeDecode_ReferenceModel(t *testing.T) {
	original := reference.DefaultModel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))
	assert.Contains(t, buf.String(), "name: "+reference.ModelName)
	assert.Contains(t, buf.String(), "ci: [")

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, original.Name(), decoded.Name())
	assert.Equal(t, original.Graph().NodeCount(), decoded.Graph().NodeCount())
	assert.Equal(t, original.Graph().EdgeCount(), decoded.Graph().EdgeCount())
	assert.Equal(t, original.Stats(), decoded.Stats())
	assert.Equal(t, original.Intercepts(), decoded.Intercepts())
	assert.Equal(t, original.Order(), decoded.Order())
	for _, e := range original.Graph().AllEdges() {
		got, ok := decoded.Graph().EdgeByID(e.ID())
		require.True(t, ok, e.ID())
		assert.Equal(t, e.Spec(), got.Spec())
	}
	for _, n := range original.Graph().AllNodes() {
		got, ok := decoded.Graph().NodeByID(n.ID())
		require.True(t, ok)
		assert.Equal(t, n.Spec(), got.Spec())
	}
}

const smallModel = `
name: lipids
nodes:
  - {id: statin, label: Statin, domain: Intervention, type: medication}
  - {id: ldl, label: LDL, domain: CVD, type: biomarker, unit: mg/dL, normal_range: {min: 0, max: 100}}
  - {id: cad, label: CAD, domain: CVD, type: disease}
edges:
  - {id: s1, source: statin, target: ldl, weight: -0.35, ci: [-0.42, -0.28], evidence_grade: A, domain: Intervention}
  - {id: s2, source: ldl, target: cad, weight: 0.3, ci: [0.2, 0.4], evidence_grade: A, domain: CVD}
statistics:
  ldl: {mean: 130, std: 35}
intercepts:
  cad: -2.0
order: [statin, ldl, cad]
`

func TestDecode_SmallModel(t *testing.T) {
	m, err := Decode(strings.NewReader(smallModel))
	require.NoError(t, err)

	assert.Equal(t, "lipids", m.Name())
	assert.Equal(t, 3, m.Graph().NodeCount())
	st, ok := m.Statistic(vo.LDL)
	require.True(t, ok)
	assert.Equal(t, 35.0, st.Std)
	b0, ok := m.Intercept(vo.CAD)
	require.True(t, ok)
	assert.Equal(t, -2.0, b0)
	ldl, _ := m.Graph().NodeByID(vo.LDL)
	r, ok := ldl.NormalRange()
	require.True(t, ok)
	assert.Equal(t, vo.Range{Min: 0, Max: 100}, r)
	assert.Empty(t, m.OrderViolations())
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		check func(t *testing.T, err error)
	}{
		{
			name: "unknown field",
			doc:  "name: x\nnodez: []\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "invalid model document")
			},
		},
		{
			name: "collects every problem",
			doc: `
nodes:
  - {id: glucose, label: G, domain: T2DM, type: biomarker}
  - {id: ldl, label: "", domain: CVD, type: biomarker}
edges:
  - {id: x1, source: ldl, target: cad, weight: 0.1, ci: [0.1], evidence_grade: A, domain: CVD}
  - {id: x2, source: ldl, target: nowhere, weight: 0.1, ci: [0, 1], evidence_grade: A, domain: CVD}
statistics:
  bogus: {mean: 1, std: 1}
order: [elsewhere]
`,
			check: func(t *testing.T, err error) {
				var verrs *pkgerrors.ValidationErrors
				require.True(t, errors.As(err, &verrs))
				fields := verrs.ToMap()
				for _, f := range []string{"nodes[0]", "nodes[1]", "edges[0]", "edges[1]", "statistics", "order"} {
					assert.Contains(t, fields, f)
				}
				assert.Equal(t, []string{"node label cannot be empty: ldl"}, fields["nodes[1]"])
			},
		},
		{
			name: "cyclic graph",
			doc: `
nodes:
  - {id: ldl, label: LDL, domain: CVD, type: biomarker}
  - {id: tc, label: TC, domain: CVD, type: biomarker}
edges:
  - {id: a, source: ldl, target: tc, weight: 0.5, ci: [0.4, 0.6], evidence_grade: A, domain: CVD}
  - {id: b, source: tc, target: ldl, weight: 0.5, ci: [0.4, 0.6], evidence_grade: A, domain: CVD}
`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, pkgerrors.ErrCyclicGraph)
			},
		},
		{
			name: "edge to a node outside the document",
			doc: `
nodes:
  - {id: ldl, label: LDL, domain: CVD, type: biomarker}
edges:
  - {id: a, source: ldl, target: cad, weight: 0.5, ci: [0.4, 0.6], evidence_grade: A, domain: CVD}
`,
			check: func(t *testing.T, err error) {
				assert.True(t, pkgerrors.IsValidation(err))
				assert.Contains(t, err.Error(), "unknown target cad")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallModel), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Graph().EdgeCount())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeModel))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

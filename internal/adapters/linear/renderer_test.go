package linear_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sniff/internal/adapters/linear"
	"go.trai.ch/sniff/internal/core/domain"
)

func TestRenderer_RenderReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	err := r.RenderReport(domain.Report{
		Project: "/src/build.proj",
		Targets: []domain.TargetResult{
			{Name: "Build", Items: []domain.BuiltItem{
				{Name: "App.sln"},
				{Name: "Lib.sln"},
				{Name: "App.sln", IsDuplicate: true},
			}},
			{Name: "Clean", Items: []domain.BuiltItem{{Name: "Clean.sln"}}},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	g := goldie.New(t)
	g.Assert(t, "report", stdout.Bytes())
}

func TestRenderer_RenderReport_NoTargets(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	require.NoError(t, r.RenderReport(domain.Report{Project: "p.proj"}))

	assert.Empty(t, stdout.String())
	assert.Equal(t, "No target built any items.\n", stderr.String())
}

func TestRenderer_RenderTargets(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout bytes.Buffer
	r := linear.NewRenderer(&stdout, nil)

	require.NoError(t, r.RenderTargets([]string{"Build", "Clean", "Test"}))

	assert.Equal(t, "Build\nClean\nTest\n", stdout.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRenderer_WriteErrors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	r := linear.NewRenderer(failingWriter{}, failingWriter{})

	assert.Error(t, r.RenderTargets([]string{"Build"}))
	assert.Error(t, r.RenderReport(domain.Report{}))
	assert.Error(t, r.RenderReport(domain.Report{Targets: []domain.TargetResult{
		{Name: "Build", Items: []domain.BuiltItem{{Name: "A"}}},
	}}))
}

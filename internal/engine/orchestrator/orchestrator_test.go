package orchestrator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sniff/internal/adapters/capture"
	"go.trai.ch/sniff/internal/core/domain"
	"go.trai.ch/sniff/internal/core/ports"
	"go.trai.ch/sniff/internal/core/ports/mocks"
	"go.trai.ch/sniff/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

type orchestratorTestMocks struct {
	project *mocks.MockProject
	tracer  *mocks.MockTracer
	span    *mocks.MockSpan
	logger  *mocks.MockLogger
}

func setupOrchestratorTest(t *testing.T) (*orchestrator.Orchestrator, orchestratorTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := orchestratorTestMocks{
		project: mocks.NewMockProject(ctrl),
		tracer:  mocks.NewMockTracer(ctrl),
		span:    mocks.NewMockSpan(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}

	m.span.EXPECT().End().AnyTimes()
	m.span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	m.span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, m.span
		},
	).AnyTimes()
	m.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return orchestrator.New(capture.NewFactory(), m.tracer, m.logger), m
}

// emits returns a Build stub that reports the given messages from the Message task.
func emits(ok bool, messages ...string) func(context.Context, string, ...ports.Listener) (bool, error) {
	return func(_ context.Context, _ string, listeners ...ports.Listener) (bool, error) {
		for _, msg := range messages {
			for _, l := range listeners {
				l.HandleMessage(domain.MessageEvent{SenderName: domain.MessageSenderName, Message: msg})
			}
		}
		return ok, nil
	}
}

func TestBuildAll_CollectsItemsPerTarget(t *testing.T) {
	o, m := setupOrchestratorTest(t)

	m.project.EXPECT().Targets().Return([]string{"Build", "Clean"})
	m.project.EXPECT().Build(gomock.Any(), "Build", gomock.Any()).DoAndReturn(emits(true, "App.sln;Lib.sln", "App.sln"))
	m.project.EXPECT().Build(gomock.Any(), "Clean", gomock.Any()).DoAndReturn(emits(true, "Clean.sln"))

	results, err := o.BuildAll(context.Background(), m.project)

	require.NoError(t, err)
	assert.Equal(t, []domain.TargetResult{
		{Name: "Build", Items: []domain.BuiltItem{
			{Name: "App.sln"},
			{Name: "Lib.sln"},
			{Name: "App.sln", IsDuplicate: true},
		}},
		{Name: "Clean", Items: []domain.BuiltItem{{Name: "Clean.sln"}}},
	}, results)
}

func TestBuildAll_SkipsFailedAndEmptyTargets(t *testing.T) {
	o, m := setupOrchestratorTest(t)

	m.project.EXPECT().Targets().Return([]string{"Broken", "Empty", "Noise", "Build"})
	m.project.EXPECT().Build(gomock.Any(), "Broken", gomock.Any()).DoAndReturn(emits(false, "Half.sln"))
	m.project.EXPECT().Build(gomock.Any(), "Empty", gomock.Any()).DoAndReturn(emits(true))
	m.project.EXPECT().Build(gomock.Any(), "Noise", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, listeners ...ports.Listener) (bool, error) {
			for _, l := range listeners {
				l.HandleMessage(domain.MessageEvent{SenderName: "Csc", Message: "App.dll"})
			}
			return true, nil
		})
	m.project.EXPECT().Build(gomock.Any(), "Build", gomock.Any()).DoAndReturn(emits(true, "App.sln"))

	results, err := o.BuildAll(context.Background(), m.project)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Build", results[0].Name)
}

func TestBuildAll_FreshCollectorPerTarget(t *testing.T) {
	o, m := setupOrchestratorTest(t)

	var seen []ports.Listener
	record := func(_ context.Context, _ string, listeners ...ports.Listener) (bool, error) {
		require.Len(t, listeners, 1)
		seen = append(seen, listeners[0])
		listeners[0].HandleMessage(domain.MessageEvent{SenderName: domain.MessageSenderName, Message: "Shared.sln"})
		return true, nil
	}

	m.project.EXPECT().Targets().Return([]string{"A", "B"})
	m.project.EXPECT().Build(gomock.Any(), "A", gomock.Any()).DoAndReturn(record)
	m.project.EXPECT().Build(gomock.Any(), "B", gomock.Any()).DoAndReturn(record)

	results, err := o.BuildAll(context.Background(), m.project)

	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
	for _, r := range results {
		assert.Equal(t, []domain.BuiltItem{{Name: "Shared.sln"}}, r.Items, "items never leak across targets")
	}
}

func TestBuildAll_EngineErrorSkipsTarget(t *testing.T) {
	o, m := setupOrchestratorTest(t)

	m.project.EXPECT().Targets().Return([]string{"Build", "Clean", "Test"})
	m.project.EXPECT().Build(gomock.Any(), "Build", gomock.Any()).DoAndReturn(emits(true, "App.sln"))
	m.project.EXPECT().Build(gomock.Any(), "Clean", gomock.Any()).Return(false, domain.ErrEngineStartFailed)
	m.project.EXPECT().Build(gomock.Any(), "Test", gomock.Any()).DoAndReturn(emits(true, "Tests.sln"))
	m.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "Clean")
		assert.Contains(t, msg, domain.ErrEngineStartFailed.Error())
	})

	results, err := o.BuildAll(context.Background(), m.project)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Build", results[0].Name)
	assert.Equal(t, "Test", results[1].Name)
}

func TestBuildAll_CancelledDuringBuild(t *testing.T) {
	o, m := setupOrchestratorTest(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.project.EXPECT().Targets().Return([]string{"Build", "Clean"})
	m.project.EXPECT().Build(gomock.Any(), "Build", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.Listener) (bool, error) {
			cancel()
			return false, ctx.Err()
		})

	results, err := o.BuildAll(ctx, m.project)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestBuildAll_StopsWhenCancelled(t *testing.T) {
	o, m := setupOrchestratorTest(t)
	ctx, cancel := context.WithCancel(context.Background())

	m.project.EXPECT().Targets().Return([]string{"Build", "Clean"})
	m.project.EXPECT().Build(gomock.Any(), "Build", gomock.Any()).DoAndReturn(
		func(ctx context.Context, target string, listeners ...ports.Listener) (bool, error) {
			cancel()
			return emits(true, "App.sln")(ctx, target, listeners...)
		})

	results, err := o.BuildAll(ctx, m.project)

	require.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, 1)
}

func TestBuildAll_NoTargets(t *testing.T) {
	o, m := setupOrchestratorTest(t)

	m.project.EXPECT().Targets().Return(nil)

	results, err := o.BuildAll(context.Background(), m.project)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestBuildAll_SpanAttributes(t *testing.T) {
	ctrl := gomock.NewController(t)
	project := mocks.NewMockProject(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	project.EXPECT().Targets().Return([]string{"Build"})
	project.EXPECT().Build(gomock.Any(), "Build", gomock.Any()).DoAndReturn(emits(true, "A;B"))

	tracer.EXPECT().EmitPlan(gomock.Any(), []string{"Build"})
	tracer.EXPECT().Start(gomock.Any(), "Build", gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
			cfg := &ports.SpanConfig{}
			for _, opt := range opts {
				opt(cfg)
			}
			assert.Equal(t, map[string]any{"target": "Build"}, cfg.Attributes)
			return ctx, span
		})
	span.EXPECT().SetAttribute("success", true)
	span.EXPECT().SetAttribute("items", 2)
	span.EXPECT().End()

	_, err := orchestrator.New(capture.NewFactory(), tracer, log).BuildAll(context.Background(), project)
	require.NoError(t, err)
}

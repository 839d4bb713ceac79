package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sniff/cmd/sniff/commands"
	"go.trai.ch/sniff/internal/app"
	"go.trai.ch/sniff/internal/build"
)

type mockApp struct {
	runFunc     func(ctx context.Context, path string, opts app.RunOptions) error
	targetsFunc func(ctx context.Context, path string) ([]string, error)
}

func (m *mockApp) Run(ctx context.Context, path string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, path, opts)
	}
	return nil
}

func (m *mockApp) Targets(ctx context.Context, path string) ([]string, error) {
	if m.targetsFunc != nil {
		return m.targetsFunc(ctx, path)
	}
	return nil, nil
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedPath string

		mock := &mockApp{
			runFunc: func(_ context.Context, path string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedPath = path
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"run", "build.proj",
			"--ignore", "Csc", "--ignore", "Vbc",
			"--no-default-ignores",
			"-r", "out/report.json",
			"--engine", "mono msbuild.exe",
			"-v", "--json",
			"--trace", "trace.jsonl",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "build.proj", capturedPath)
		assert.Equal(t, app.RunOptions{
			Ignore:           []string{"Csc", "Vbc"},
			NoDefaultIgnores: true,
			Report:           "out/report.json",
			Engine:           "mono msbuild.exe",
			Verbose:          true,
			JSON:             true,
			Trace:            "trace.jsonl",
		}, capturedOpts)
	})

	t.Run("defaults", func(t *testing.T) {
		var capturedOpts app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, opts app.RunOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build.proj"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{}, capturedOpts)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"run", "build.proj"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no project provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})

	t.Run("rejects several projects", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "a.proj", "b.proj"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Targets(t *testing.T) {
	var capturedPath string
	mock := &mockApp{
		targetsFunc: func(_ context.Context, path string) ([]string, error) {
			capturedPath = path
			return []string{"Build"}, nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"targets", "build.proj"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "build.proj", capturedPath)

	cli = commands.New(&mockApp{})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"targets"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "sniff version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "sniff version "+build.Version)
}

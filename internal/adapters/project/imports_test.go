package project_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sniff/internal/adapters/project"
)

func TestIsAbsoluteImport(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{`C:\tools\common.targets`, true},
		{`d:/tools/common.targets`, true},
		{`/usr/share/msbuild/common.targets`, true},
		{`\\server\share\common.targets`, true},
		{`$(MSBuildToolsPath)\Microsoft.CSharp.targets`, true},
		{`sub\foo.proj`, false},
		{`../shared/common.targets`, false},
		{`common.targets`, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, project.IsAbsoluteImport(tt.path))
		})
	}
}

func TestJoinImport(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		rel  string
		want string
	}{
		{name: "windows dir", dir: `C:\root`, rel: `sub\foo.proj`, want: `C:\root\sub\foo.proj`},
		{name: "windows dir trailing separator", dir: `C:\root\`, rel: `foo.proj`, want: `C:\root\foo.proj`},
		{name: "windows dir forward slashes in rel", dir: `C:\root`, rel: `sub/foo.proj`, want: `C:\root\sub\foo.proj`},
		{name: "posix dir", dir: "/src/app", rel: `sub\foo.proj`, want: "/src/app/sub/foo.proj"},
		{name: "posix root", dir: "/", rel: "foo.proj", want: "/foo.proj"},
		{name: "dot prefix dropped", dir: "/src", rel: "./foo.proj", want: "/src/foo.proj"},
		{name: "parent kept", dir: "/src/app", rel: "../common.targets", want: "/src/app/../common.targets"},
		{name: "no dir", dir: "", rel: "foo.proj", want: "foo.proj"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, project.JoinImport(tt.dir, tt.rel))
		})
	}
}

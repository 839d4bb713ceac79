package domain

const (
	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "sniff.yaml"

	// SnapshotSuffix is appended to the temporary project file handed to the engine.
	SnapshotSuffix = ".sniff.proj"

	// DefaultVerbosity is the engine console verbosity needed to see task boundaries.
	DefaultVerbosity = "detailed"

	// DuplicateMarker is appended to the display name of a duplicate item.
	DuplicateMarker = " [Duplicate]"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Project description vocabulary.
const (
	TargetTag        = "Target"
	NameAttr         = "Name"
	ImportTag        = "Import"
	ProjectAttr      = "Project"
	DelegateTaskTag  = "MSBuild"
	DelegatePathAttr = "Projects"
	MessageTag       = "Message"
	TextAttr         = "Text"
)

const (
	// MessageSenderName is the sender whose messages carry built items.
	MessageSenderName = "Message"

	// ItemDelimiter separates several items within one message.
	ItemDelimiter = ";"
)

// DefaultIgnoreItems returns the tags that never signal "build a thing".
func DefaultIgnoreItems() []string {
	return []string{
		"Gallio",
		"Exec",
		"RemoveDir",
		"Message",
		"MakeDir",
		"Copy",
		"WriteLinesToFile",
		"Script",
	}
}

// DefaultEngineCommand returns the command used to invoke the build engine.
func DefaultEngineCommand() []string {
	return []string{"dotnet", "msbuild"}
}

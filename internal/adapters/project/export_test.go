package project

var (
	IsAbsoluteImport = isAbsoluteImport
	JoinImport       = joinImport
)

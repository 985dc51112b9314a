package diagnostic

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies what a caller must correct to make a run succeed.
type Kind int

const (
	_ Kind = iota // zero value is not a valid kind

	// KindConfiguration marks an invalid option, such as a threshold outside [0, 100].
	KindConfiguration
	// KindInput marks an unusable corpus or pool entry.
	KindInput
)

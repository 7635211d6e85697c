package domain

// SourceKind names the shape of data a Source produces.
type SourceKind string

const (
	SourceKindEvents    SourceKind = "events"
	SourceKindResources SourceKind = "resources"
)

func (sk SourceKind) String() string {
	return string(sk)
}

// SourceKindFor maps the --resources flag onto a SourceKind.
func SourceKindFor(resources bool) SourceKind {
	if resources {
		return SourceKindResources
	}
	return SourceKindEvents
}

package token

// Source provides the current bearer credential of the viewer, if any.
// It is read at request-construction time; absence means the request is
// sent anonymously, which is still valid for public reads.
type Source interface {
	Token() (string, bool)
}

// Storage is a Source whose credential can be replaced or dropped, e.g.
// on login and logout.
type Storage interface {
	Source

	Store(token string) error
	Remove() error
	Close() error
}

type static string

// Static wraps a fixed credential in a Source.
func Static(token string) Source {
	return static(token)
}

func (s static) Token() (string, bool) {
	return string(s), s != ""
}

type anonymous struct{}

// Anonymous is a Source without a credential.
func Anonymous() Source {
	return anonymous{}
}

func (anonymous) Token() (string, bool) {
	return "", false
}

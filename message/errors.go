package message

import "github.com/trovochat/trovochat/wire"

// requireCommand checks m.Command against want, surfacing the same
// ExpectedCommandError every from-raw constructor in this package returns
// on a mismatch.
func requireCommand(m wire.RawMessage, want string) error {
	if m.Command != want {
		return &wire.ExpectedCommandError{Want: want, Got: m.Command}
	}
	return nil
}

// requireAnyCommand is requireCommand for variants projected from more
// than one wire command token (HostTarget's HOSTTARGET/HOSTARGET typo,
// Names' 353/366 pair).
func requireAnyCommand(m wire.RawMessage, want ...string) error {
	for _, w := range want {
		if m.Command == w {
			return nil
		}
	}
	return &wire.ExpectedCommandError{Want: want[0], Got: m.Command}
}

func requireArg(m wire.RawMessage, i int) (string, error) {
	v, ok := m.Arg(i)
	if !ok {
		return "", &wire.ExpectedArgError{Index: i}
	}
	return v, nil
}

func requireTag(m wire.RawMessage, name string) (string, error) {
	v, ok := m.Tags.Get(name)
	if !ok {
		return "", &wire.ExpectedTagError{Name: name}
	}
	return v, nil
}

func optTag(m wire.RawMessage, name string) string {
	v, _ := m.Tags.Get(name)
	return v
}

func optTagPtr(m wire.RawMessage, name string) *string {
	v, ok := m.Tags.Get(name)
	if !ok {
		return nil
	}
	return &v
}

package sigset

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNewSignal(t *testing.T) {
	for _, n := range []int{-1, 0, 2, 64, 9999} {
		qt.Assert(t, qt.Equals(NewSignal(n).Raw(), n))
	}
	qt.Assert(t, qt.Equals(NewSignal(SIGINT.Raw()), SIGINT))
}

func TestSignalString(t *testing.T) {
	qt.Assert(t, qt.Equals(SIGINT.String(), "SIGINT"))
	qt.Assert(t, qt.Equals(SIGIOT.String(), "SIGABRT"))
	qt.Assert(t, qt.Equals(SIGPOLL.String(), "SIGIO"))
	qt.Assert(t, qt.Equals(NewSignal(9999).String(), "signal 9999"))
}

func TestSignals(t *testing.T) {
	sigs := Signals()
	qt.Assert(t, qt.HasLen(sigs, len(signalNames)))
	for i := 1; i < len(sigs); i++ {
		qt.Assert(t, qt.IsTrue(sigs[i-1] < sigs[i]), qt.Commentf("%v before %v", sigs[i-1], sigs[i]))
	}
}

func TestParseSignal(t *testing.T) {
	for _, sig := range Signals() {
		got, err := ParseSignal(sig.String())
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, sig))
	}

	for in, want := range map[string]Signal{
		"SIGTERM": SIGTERM,
		"term":    SIGTERM,
		"Usr1":    SIGUSR1,
		"sigiot":  SIGABRT,
		"POLL":    SIGIO,
		"9":       SIGKILL,
		" 9\n":    SIGKILL,
		" int ":   SIGINT,
		"9999":    NewSignal(9999),
		"-3":      NewSignal(-3),
	} {
		got, err := ParseSignal(in)
		qt.Assert(t, qt.IsNil(err), qt.Commentf("parse %q", in))
		qt.Assert(t, qt.Equals(got, want), qt.Commentf("parse %q", in))
	}

	for _, in := range []string{"", "SIG", "SIGFOO", "9x"} {
		_, err := ParseSignal(in)
		qt.Assert(t, qt.ErrorIs(err, ErrUnknownSignal), qt.Commentf("parse %q", in))
	}
}

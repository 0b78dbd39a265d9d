package buildenv

import (
	"errors"
	"testing"
)

func TestMergeJobWins(t *testing.T) {
	snap := Merge(
		map[string]string{"A": "host", "B": "host"},
		map[string]string{"B": "job", "C": "job"},
	)

	if snap.Get("A") != "host" {
		t.Fatalf("expected host value for A, got %q", snap.Get("A"))
	}
	if snap.Get("B") != "job" {
		t.Fatalf("job variable must win on collision, got %q", snap.Get("B"))
	}
	if snap.Get("C") != "job" {
		t.Fatalf("expected job value for C, got %q", snap.Get("C"))
	}
	if snap.Get("missing") != "" {
		t.Fatalf("unset variable must read as empty")
	}
}

type fakeProvider struct {
	host    map[string]string
	job     map[string]string
	hostErr error
	jobErr  error
}

func (p fakeProvider) HostEnv() (map[string]string, error) { return p.host, p.hostErr }
func (p fakeProvider) JobVars() (map[string]string, error) { return p.job, p.jobErr }

func TestCaptureDegradesOnFailure(t *testing.T) {
	snap := Capture(fakeProvider{
		host:    map[string]string{"A": "1"},
		hostErr: errors.New("agent unreachable"),
		job:     map[string]string{"B": "2"},
	})

	if snap.Get("A") != "" {
		t.Fatalf("failed host lookup must yield no host variables, got %q", snap.Get("A"))
	}
	if snap.Get("B") != "2" {
		t.Fatalf("job variables must survive host failure, got %q", snap.Get("B"))
	}
}

func TestOSEnvParses(t *testing.T) {
	t.Setenv("DROIDSDK_TEST_VAR", "value=with=equals")

	vars := OSEnv()
	if vars["DROIDSDK_TEST_VAR"] != "value=with=equals" {
		t.Fatalf("unexpected value: %q", vars["DROIDSDK_TEST_VAR"])
	}
}

package client

import "testing"

func TestResolveCredentials_ExplicitWins(t *testing.T) {
	environ := map[string]string{EnvTokenID: "snap-id", EnvTokenSecret: "snap-secret"}
	got := resolveCredentials(Credentials{TokenID: "a", TokenSecret: "b"}, environ)
	if got.TokenID != "a" || got.TokenSecret != "b" {
		t.Fatalf("unexpected credentials %+v", got)
	}
}

func TestResolveCredentials_SnapshotBeforeProcessEnv(t *testing.T) {
	t.Setenv(EnvTokenID, "proc-id")
	t.Setenv(EnvTokenSecret, "proc-secret")

	environ := map[string]string{EnvTokenID: "snap-id", EnvTokenSecret: "snap-secret"}
	got := resolveCredentials(Credentials{}, environ)
	if got.TokenID != "snap-id" || got.TokenSecret != "snap-secret" {
		t.Fatalf("unexpected credentials %+v", got)
	}
}

func TestResolveCredentials_ProcessEnvFallback(t *testing.T) {
	t.Setenv(EnvTokenID, "proc-id")
	t.Setenv(EnvTokenSecret, "proc-secret")

	got := resolveCredentials(Credentials{}, nil)
	if got.TokenID != "proc-id" || got.TokenSecret != "proc-secret" {
		t.Fatalf("unexpected credentials %+v", got)
	}
}

func TestResolveCredentials_EmptySnapshot(t *testing.T) {
	t.Setenv(EnvTokenID, "proc-id")

	got := resolveCredentials(Credentials{}, map[string]string{})
	if got.TokenID != "" || got.TokenSecret != "" {
		t.Fatalf("expected empty credentials, got %+v", got)
	}
}

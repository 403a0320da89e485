package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.DBName == "" || cfg.Port == "" || cfg.MongoURI == "" {
		t.Fatalf("expected development defaults, got %+v", cfg)
	}
	if cfg.Credentials == nil {
		t.Fatalf("expected credential verifier to be configured")
	}
}

func TestAdminCredentials_Verify(t *testing.T) {
	t.Parallel()

	creds := AdminCredentials{Email: "admin@club.test", Password: "s3cret"}

	if !creds.Verify("admin@club.test", "s3cret") {
		t.Fatalf("expected matching credentials to verify")
	}
	if creds.Verify("admin@club.test", "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
	if creds.Verify("other@club.test", "s3cret") {
		t.Fatalf("expected unknown email to fail")
	}
}

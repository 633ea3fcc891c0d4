package redis

import "testing"

func TestConfigOptions_HostPort(t *testing.T) {
	opts, err := Config{Addr: "localhost:6379", Password: "pw", DB: 2}.options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "localhost:6379" || opts.Password != "pw" || opts.DB != 2 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestConfigOptions_URL(t *testing.T) {
	opts, err := Config{Addr: "redis://:secret@cache:6380/3", DB: 9}.options()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Addr != "cache:6380" || opts.Password != "secret" || opts.DB != 3 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestConfigOptions_BadURL(t *testing.T) {
	if _, err := (Config{Addr: "redis://cache:6380/notadb"}).options(); err == nil {
		t.Fatalf("expected error for malformed url")
	}
}

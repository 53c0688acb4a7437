package clickhouse

import (
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestBuildDSN(t *testing.T) {
	cfg := ClientConfig{
		Host:        "ch.internal",
		Port:        9000,
		Database:    "cricpull",
		User:        "writer",
		Password:    "s3cret",
		DialTimeout: 5 * time.Second,
		ReadTimeout: 10 * time.Second,
	}

	dsn := buildDSN(cfg)
	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	if u.Scheme != "clickhouse" {
		t.Fatalf("scheme %q", u.Scheme)
	}
	if u.Host != "ch.internal:9000" || u.Path != "/cricpull" {
		t.Fatalf("host %q path %q", u.Host, u.Path)
	}
	if u.User.Username() != "writer" {
		t.Fatalf("user %q", u.User.Username())
	}
	q := u.Query()
	if q.Get("dial_timeout") != "5s" || q.Get("read_timeout") != "10s" {
		t.Fatalf("timeouts %v", q)
	}
	if q.Has("async_insert") {
		t.Fatalf("async_insert set without opt-in")
	}
}

func TestBuildDSNVariants(t *testing.T) {
	cfg := ClientConfig{
		Host:         "localhost",
		Port:         8123,
		Database:     "cricpull",
		UseHTTP:      true,
		AsyncInsert:  true,
		WaitForAsync: true,
		MaxExecTime:  90 * time.Second,
	}

	dsn := buildDSN(cfg)
	if !strings.HasPrefix(dsn, "clickhouse+http://") {
		t.Fatalf("dsn %q not http", dsn)
	}
	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	q := u.Query()
	if q.Get("async_insert") != "1" || q.Get("wait_for_async_insert") != "1" {
		t.Fatalf("async settings %v", q)
	}
	if q.Get("max_execution_time") != "90" {
		t.Fatalf("max_execution_time %q", q.Get("max_execution_time"))
	}
	if u.User != nil {
		t.Fatalf("credentials present without user")
	}
}

func TestNewClientRejectsBadConfig(t *testing.T) {
	if _, err := NewClient(); err == nil {
		t.Fatalf("missing host accepted")
	}
	if _, err := NewClient(
		WithAddr("localhost", 9000),
		WithDatabase("cricpull; DROP TABLE"),
	); err == nil {
		t.Fatalf("bad database name accepted")
	}
}

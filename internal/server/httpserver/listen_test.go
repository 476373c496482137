package httpserver

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"

	"github.com/T0mstone/simple-http-server/internal/core/domain"
	"github.com/T0mstone/simple-http-server/internal/telemetry/logger"
)

func quietLogger() logger.Logger {
	return logger.New(logger.Config{Level: "error"})
}

func TestListen_PrimaryAddress(t *testing.T) {
	l, err := Listen(context.Background(), []string{"127.0.0.1:0"}, quietLogger())
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	defer l.Close()

	if _, _, err := net.SplitHostPort(l.Addr().String()); err != nil {
		t.Errorf("listener address %q is not host:port", l.Addr())
	}
}

func TestListen_FallsBackToFailsafe(t *testing.T) {
	// The primary entry cannot resolve; the failsafe must be used.
	l, err := Listen(context.Background(), []string{"host.invalid:9", "127.0.0.1:0"}, quietLogger())
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	defer l.Close()

	if !strings.HasPrefix(l.Addr().String(), "127.0.0.1:") {
		t.Errorf("bound %q, want the failsafe 127.0.0.1", l.Addr())
	}
}

func TestListen_SkipsBusyPort(t *testing.T) {
	first, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()

	busy := first.Addr().String()
	l, err := Listen(context.Background(), []string{busy, "127.0.0.1:0"}, quietLogger())
	if err != nil {
		t.Fatalf("Listen() error: %v", err)
	}
	defer l.Close()

	if l.Addr().String() == busy {
		t.Error("bound the busy address")
	}
}

func TestListen_AllFail(t *testing.T) {
	first, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	busy := first.Addr().String()

	_, err = Listen(context.Background(), []string{"host.invalid:9", busy}, quietLogger())
	if !errors.Is(err, domain.ErrBindFailed) {
		t.Fatalf("error = %v, want %v", err, domain.ErrBindFailed)
	}

	// the failure names every attempted address
	msg := err.Error()
	for _, want := range []string{"host.invalid:9", busy} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing attempted address %q", msg, want)
		}
	}
}

func TestExpand(t *testing.T) {
	ctx := context.Background()

	got, err := expand(ctx, "127.0.0.1:80")
	if err != nil || len(got) != 1 || got[0] != "127.0.0.1:80" {
		t.Errorf("expand(literal IP) = (%v, %v), want itself", got, err)
	}

	got, err = expand(ctx, ":80")
	if err != nil || len(got) != 1 || got[0] != ":80" {
		t.Errorf("expand(wildcard) = (%v, %v), want itself", got, err)
	}

	if _, err := expand(ctx, "no-port-here"); err == nil {
		t.Error("expand should reject an address without a port")
	}

	got, err = expand(ctx, "localhost:80")
	if err != nil {
		t.Fatalf("expand(localhost) error: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("expand(localhost) returned no candidates")
	}
	for _, c := range got {
		host, port, err := net.SplitHostPort(c)
		if err != nil || port != "80" || net.ParseIP(host) == nil {
			t.Errorf("expand(localhost) candidate %q is not ip:80", c)
		}
	}
}

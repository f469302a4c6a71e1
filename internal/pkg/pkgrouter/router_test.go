package pkgrouter

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goatm/internal/pkg/pkglog"
)

type staticGenerator struct {
	value string
	calls int
}

func (g *staticGenerator) Generate() string {
	g.calls++
	return g.value
}

type messageResponse string

func (m messageResponse) Message() string { return string(m) }

func TestChainOrder(t *testing.T) {
	order := make([]string, 0, 3)

	mw := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context) (any, error) {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	h := Chain(func(context.Context) (any, error) {
		order = append(order, "handler")
		return nil, nil
	}, mw("mw1"), mw("mw2"))

	if _, err := h(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(order, []string{"mw1", "mw2", "handler"}) {
		t.Fatalf("unexpected order: %#v", order)
	}
}

func TestRoutesKeepRegistrationOrder(t *testing.T) {
	r := NewRouter(nil)
	noop := func(context.Context) (any, error) { return nil, nil }

	r.Handle("balance", "Check Balance", noop)
	r.Handle("deposit", "Deposit", noop)
	r.Handle("exit", "Exit", noop)
	r.Handle("deposit", "Deposit money", noop)

	want := []Route{
		{Key: "balance", Label: "Check Balance"},
		{Key: "deposit", Label: "Deposit money"},
		{Key: "exit", Label: "Exit"},
	}
	if got := r.Routes(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Routes() = %#v, want %#v", got, want)
	}
}

func TestMatch(t *testing.T) {
	r := NewRouter(nil)
	noop := func(context.Context) (any, error) { return nil, nil }
	r.Handle("balance", "Check Balance", noop)
	r.Handle("history", "Transaction History", noop)

	cases := []struct {
		in   string
		key  string
		want bool
	}{
		{in: "1", key: "balance", want: true},
		{in: " 2 ", key: "history", want: true},
		{in: "HISTORY", key: "history", want: true},
		{in: "transaction history", key: "history", want: true},
		{in: "0", want: false},
		{in: "3", want: false},
		{in: "", want: false},
		{in: "transfer", want: false},
	}

	for _, tc := range cases {
		got, ok := r.Match(tc.in)
		if ok != tc.want {
			t.Fatalf("Match(%q) ok = %v, want %v", tc.in, ok, tc.want)
		}
		if ok && got.Key != tc.key {
			t.Fatalf("Match(%q) key = %q, want %q", tc.in, got.Key, tc.key)
		}
	}
}

func TestDispatchEncodesResponse(t *testing.T) {
	r := NewRouter(nil)
	r.Handle("balance", "Check Balance", func(ctx context.Context) (any, error) {
		if got := RouteKey(ctx); got != "balance" {
			t.Fatalf("RouteKey() = %q, want balance", got)
		}
		return messageResponse("Your current balance is: ₹2607.04"), nil
	})

	reply := r.Dispatch(context.Background(), "balance")
	if reply.Err != nil {
		t.Fatalf("Dispatch() err = %v", reply.Err)
	}
	if reply.Message != "Your current balance is: ₹2607.04" {
		t.Fatalf("Dispatch() message = %q", reply.Message)
	}
	if _, ok := reply.Data.(messageResponse); !ok {
		t.Fatalf("Dispatch() data = %T, want messageResponse", reply.Data)
	}
}

func TestDispatchMapsErrors(t *testing.T) {
	r := NewRouter(nil)
	insufficient := pkgerror.NewBusiness("Insufficient funds.", pkgerror.CodeInsufficientFunds)

	r.Handle("withdraw", "Withdraw", func(context.Context) (any, error) {
		return nil, insufficient
	})
	r.Handle("broken", "Broken", func(context.Context) (any, error) {
		return nil, errors.New("disk on fire")
	})

	reply := r.Dispatch(context.Background(), "withdraw")
	if !errors.Is(reply.Err, insufficient) {
		t.Fatalf("Dispatch(withdraw) err = %v, want insufficient", reply.Err)
	}
	if reply.Message != "Insufficient funds." {
		t.Fatalf("Dispatch(withdraw) message = %q", reply.Message)
	}

	reply = r.Dispatch(context.Background(), "broken")
	if reply.Message != "Internal error" {
		t.Fatalf("Dispatch(broken) message = %q, want Internal error", reply.Message)
	}

	reply = r.Dispatch(context.Background(), "missing")
	if !errors.Is(reply.Err, pkgerror.ErrNotFound) {
		t.Fatalf("Dispatch(missing) err = %v, want ErrNotFound", reply.Err)
	}
	if reply.Message != "Please choose one of the listed options." {
		t.Fatalf("Dispatch(missing) message = %q", reply.Message)
	}
}

func TestDispatchRecoversPanics(t *testing.T) {
	var stack bytes.Buffer
	prev := stackOut
	stackOut = &stack
	t.Cleanup(func() { stackOut = prev })

	r := NewRouter(nil)
	r.Handle("boom", "Boom", func(context.Context) (any, error) {
		panic("boom")
	})

	reply := r.Dispatch(context.Background(), "boom")

	var gerr *pkgerror.Error
	if !errors.As(reply.Err, &gerr) || gerr.Type() != pkgerror.TypeServer {
		t.Fatalf("Dispatch(boom) err = %v, want server error", reply.Err)
	}
	if reply.Message != "Internal error" {
		t.Fatalf("Dispatch(boom) message = %q", reply.Message)
	}
	if !strings.Contains(stack.String(), "===== ===== START ===== =====") {
		t.Fatalf("expected stack trace, got %q", stack.String())
	}
}

func TestMiddlewareCorrelationIDKeepsSessionID(t *testing.T) {
	gen := &staticGenerator{value: "generated"}
	mw := middlewareCorrelationID(gen)

	var gotCID string
	h := mw(func(ctx context.Context) (any, error) {
		gotCID = pkglog.GetCorrelationID(ctx)
		return nil, nil
	})

	ctx := pkglog.SetCorrelationID(context.Background(), "session-cid")
	if _, err := h(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotCID != "session-cid" {
		t.Fatalf("expected context cid session-cid, got %q", gotCID)
	}
	if gen.calls != 0 {
		t.Fatalf("expected generator not called")
	}
}

func TestMiddlewareCorrelationIDGeneratesWhenMissing(t *testing.T) {
	gen := &staticGenerator{value: "generated"}
	mw := middlewareCorrelationID(gen)

	var gotCID string
	h := mw(func(ctx context.Context) (any, error) {
		gotCID = pkglog.GetCorrelationID(ctx)
		return nil, nil
	})

	if _, err := h(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotCID != "generated" {
		t.Fatalf("expected context cid generated, got %q", gotCID)
	}
	if gen.calls != 1 {
		t.Fatalf("expected generator called once")
	}
}

func TestOutcome(t *testing.T) {
	if got := outcome(nil); got != "OK" {
		t.Fatalf("outcome(nil) = %q", got)
	}
	if got := outcome(pkgerror.NewInvalidFormat()); got != "ERROR_CODE_INVALID_FORMAT" {
		t.Fatalf("outcome(invalid format) = %q", got)
	}
	if got := outcome(errors.New("x")); got != "ERROR_CODE_INTERNAL" {
		t.Fatalf("outcome(plain) = %q", got)
	}
}

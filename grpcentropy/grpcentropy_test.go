package grpcentropy_test

import (
	"bytes"
	"context"
	"net"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"xdao.co/entropy/chacha"
	"xdao.co/entropy/entropy"
	"xdao.co/entropy/grpcentropy"
)

func chachaSeed(b byte) chacha.Seed {
	var s chacha.Seed
	for i := range s {
		s[i] = b
	}
	return s
}

// startServer serves srv over an in-process listener and returns a connected
// client. Everything is torn down with the test.
func startServer(t *testing.T, srv *grpcentropy.Server) *grpcentropy.Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	s := grpc.NewServer()
	grpcentropy.RegisterEntropyServer(s, srv)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)

	dialer := func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	}
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	client := grpcentropy.NewClient(cc)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestService_MatchesLocalSequence(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{
		State: entropy.FromSeed[chacha.Source](chachaSeed(0x2A)),
	})
	local := entropy.FromSeed[chacha.Source](chachaSeed(0x2A))

	for i := 0; i < 16; i++ {
		got, err := remote.Next32()
		if err != nil {
			t.Fatalf("Next32: %v", err)
		}
		if want := local.Uint32(); got != want {
			t.Fatalf("draw %d: remote %d local %d", i, got, want)
		}
	}

	got64, err := remote.Next64()
	if err != nil {
		t.Fatalf("Next64: %v", err)
	}
	if want := local.Uint64(); got64 != want {
		t.Fatalf("Next64: remote %d local %d", got64, want)
	}

	buf, err := remote.Fill(33)
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := make([]byte, 33)
	local.Fill(want)
	if !bytes.Equal(buf, want) {
		t.Fatalf("Fill diverged from local sequence")
	}
}

func TestService_SnapshotRestoreRoundTrip(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{
		State: entropy.FromSeed[chacha.Source](chachaSeed(0x07)),
	})

	if _, err := remote.Next32(); err != nil {
		t.Fatalf("Next32: %v", err)
	}

	rec, err := remote.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if rec.WordPos != 1 {
		t.Fatalf("snapshot position: got %d want 1", rec.WordPos)
	}

	// Drain some output, then rewind to the snapshot: the continuation must
	// repeat.
	first, err := remote.Next32()
	if err != nil {
		t.Fatalf("Next32: %v", err)
	}
	if _, err := remote.Fill(64); err != nil {
		t.Fatalf("Fill: %v", err)
	}

	if err := remote.Restore(rec); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	replayed, err := remote.Next32()
	if err != nil {
		t.Fatalf("Next32 after restore: %v", err)
	}
	if replayed != first {
		t.Fatalf("restore did not rewind: got %d want %d", replayed, first)
	}
}

func TestService_RestoreAcceptsSnapshotFromAnotherProcess(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{
		State: entropy.FromSeed[chacha.Source](chachaSeed(0x01)),
	})

	donor := entropy.FromSeed[chacha.Source](chachaSeed(0x99))
	donor.Uint64()
	if err := remote.Restore(donor.Snapshot()); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, err := remote.Next32()
	if err != nil {
		t.Fatalf("Next32: %v", err)
	}
	if want := donor.Uint32(); got != want {
		t.Fatalf("restored server diverged from donor: %d vs %d", got, want)
	}
}

func TestService_ReseedValidation(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{
		State: entropy.FromSeed[chacha.Source](chachaSeed(0x01)),
	})

	err := remote.Reseed(make([]byte, 16))
	if err == nil {
		t.Fatalf("short seed should be rejected")
	}
	if st, ok := status.FromError(err); !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("short seed: got %v", err)
	}

	seed := chachaSeed(0xCD)
	if err := remote.Reseed(seed[:]); err != nil {
		t.Fatalf("Reseed: %v", err)
	}

	fresh := entropy.FromSeed[chacha.Source](seed)
	got, err := remote.Next64()
	if err != nil {
		t.Fatalf("Next64: %v", err)
	}
	if want := fresh.Uint64(); got != want {
		t.Fatalf("reseeded server diverged: %d vs %d", got, want)
	}
}

func TestService_FillSizeLimit(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{
		State:   entropy.FromSeed[chacha.Source](chachaSeed(0x01)),
		MaxFill: 64,
	})

	if _, err := remote.Fill(64); err != nil {
		t.Fatalf("Fill at limit: %v", err)
	}

	_, err := remote.Fill(65)
	if err == nil {
		t.Fatalf("fill past limit should be rejected")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("fill past limit: got %v", err)
	}

	buf, err := remote.Fill(0)
	if err != nil {
		t.Fatalf("zero-length fill: %v", err)
	}
	if len(buf) != 0 {
		t.Fatalf("zero-length fill returned %d bytes", len(buf))
	}
}

func TestService_ExhaustionMapsToOutputError(t *testing.T) {
	state := entropy.FromSeed[chacha.Source](chachaSeed(0x01))
	rec := state.Snapshot()
	rec.WordPos = uint64(1) << 36 // keystream capacity
	if err := state.Restore(rec); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	remote := startServer(t, &grpcentropy.Server{State: state})

	_, err := remote.Fill(4)
	if err == nil {
		t.Fatalf("exhausted generator should fail Fill")
	}
	if !entropy.IsKind(err, entropy.KindOutput) {
		t.Fatalf("exhaustion should map back to an output error, got %v", err)
	}
}

func TestService_RestoreRejectsMalformedSnapshot(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{
		State: entropy.FromSeed[chacha.Source](chachaSeed(0x01)),
	})

	before, err := remote.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	// A record for an algorithm the server's state does not run.
	bad := before
	bad.Algorithm = "shake128"
	err = remote.Restore(bad)
	if err == nil {
		t.Fatalf("mismatched algorithm should be rejected")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("mismatched algorithm: got %v", err)
	}
	if !strings.Contains(st.Message(), "algorithm") {
		t.Fatalf("unexpected message: %q", st.Message())
	}

	after, err := remote.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if !after.Equal(before) {
		t.Fatalf("failed restore mutated server state")
	}
}

func TestServer_MissingState(t *testing.T) {
	remote := startServer(t, &grpcentropy.Server{})

	_, err := remote.Next32()
	if err == nil {
		t.Fatalf("server without state should fail")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.FailedPrecondition {
		t.Fatalf("missing state: got %v", err)
	}
}

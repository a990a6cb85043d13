package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ipfs/go-cid"
	"google.golang.org/grpc"

	"xdao.co/entropy/chacha"
	"xdao.co/entropy/entropy"
	"xdao.co/entropy/grpcentropy"
	"xdao.co/entropy/shake"
	"xdao.co/entropy/storage"
	"xdao.co/entropy/storage/localfs"
)

func main() {
	fs := flag.NewFlagSet("entropyd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7707", "listen address")
	algorithm := fs.String("algorithm", chacha.Algorithm, "generator algorithm (chacha20 or shake128)")
	seedHex := fs.String("seed", "", "hex-encoded 32-byte seed for a reproducible run; seeded from OS entropy when empty")
	archiveDir := fs.String("archive", "", "snapshot archive directory; snapshots are saved there on shutdown")
	restoreCID := fs.String("restore", "", "snapshot CID to restore from the archive at startup")

	_ = fs.Parse(os.Args[1:])

	var archive *storage.Archive
	if *archiveDir != "" {
		store, err := localfs.New(*archiveDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		archive = storage.NewArchive(store)
	}

	state, err := buildState(*algorithm, *seedHex, *restoreCID, archive)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcentropy.RegisterEntropyServer(s, &grpcentropy.Server{State: state})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		s.GracefulStop()
	}()

	fmt.Fprintf(os.Stderr, "entropyd listening on %s (algorithm=%s)\n", lis.Addr().String(), *algorithm)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if archive != nil {
		id, err := archive.Save(state.Snapshot())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "entropyd saved snapshot %s\n", id.String())
	}
}

func buildState(algorithm, seedHex, restoreCID string, archive *storage.Archive) (grpcentropy.State, error) {
	if restoreCID != "" {
		if archive == nil {
			return nil, fmt.Errorf("entropyd: -restore requires -archive")
		}
		id, err := cid.Decode(restoreCID)
		if err != nil {
			return nil, fmt.Errorf("entropyd: invalid restore cid: %w", err)
		}
		rec, err := archive.Load(id)
		if err != nil {
			return nil, err
		}
		return restoredState(rec)
	}

	var seed []byte
	if seedHex != "" {
		b, err := hex.DecodeString(seedHex)
		if err != nil {
			return nil, fmt.Errorf("entropyd: invalid seed hex: %w", err)
		}
		seed = b
	}

	switch algorithm {
	case chacha.Algorithm:
		if seed == nil {
			return entropy.Default[chacha.Source, chacha.Seed](), nil
		}
		if len(seed) != chacha.SeedSize {
			return nil, fmt.Errorf("entropyd: seed must be %d bytes", chacha.SeedSize)
		}
		var s chacha.Seed
		copy(s[:], seed)
		return entropy.FromSeed[chacha.Source](s), nil
	case shake.Algorithm:
		if seed == nil {
			return entropy.Default[shake.Source, shake.Seed](), nil
		}
		if len(seed) != shake.SeedSize {
			return nil, fmt.Errorf("entropyd: seed must be %d bytes", shake.SeedSize)
		}
		var s shake.Seed
		copy(s[:], seed)
		return entropy.FromSeed[shake.Source](s), nil
	default:
		return nil, fmt.Errorf("entropyd: unknown algorithm %q", algorithm)
	}
}

func restoredState(rec entropy.Record) (grpcentropy.State, error) {
	switch rec.Algorithm {
	case chacha.Algorithm:
		return entropy.FromSnapshot[chacha.Source, chacha.Seed](rec)
	case shake.Algorithm:
		return entropy.FromSnapshot[shake.Source, shake.Seed](rec)
	default:
		return nil, fmt.Errorf("entropyd: snapshot for unknown algorithm %q", rec.Algorithm)
	}
}

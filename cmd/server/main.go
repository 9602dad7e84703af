package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	plog "github.com/amilich/isometric-city/internal/persistence/log"
	"github.com/amilich/isometric-city/internal/sim/park"
	"github.com/amilich/isometric-city/internal/sim/tuning"
	"github.com/amilich/isometric-city/internal/transport/observer"
	"github.com/amilich/isometric-city/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", "", "listen address (overrides tuning)")
		tuningPath = flag.String("tuning", "./configs/tuning.yaml", "tuning file")
		dataDir    = flag.String("data_dir", "", "data directory (overrides tuning)")
		seed       = flag.Uint64("seed", 0, "world seed (overrides tuning)")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	tun, err := tuning.Load(*tuningPath)
	if err != nil {
		logger.Printf("tuning: %v (using defaults)", err)
		tun = tuning.Defaults()
	}
	if *addr != "" {
		tun.Server.Addr = *addr
	}
	if *dataDir != "" {
		tun.Server.DataDir = *dataDir
	}
	if *seed != 0 {
		tun.World.Seed = *seed
	}

	cfg := configFromTuning(tun)
	w, err := park.New(cfg)
	if err != nil {
		logger.Fatalf("world: %v", err)
	}

	worldDir := filepath.Join(tun.Server.DataDir, cfg.ID)
	tickLog := plog.NewTickLogger(worldDir)
	defer tickLog.Close()
	w.SetTickLogger(tickLog)

	ctx, cancel := signalContext()
	defer cancel()

	go func() {
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			logger.Printf("world loop: %v", err)
		}
	}()

	wsSrv := ws.NewServer(w, logger)
	obsSrv := observer.NewServer(w, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/metrics", func(rw http.ResponseWriter, r *http.Request) {
		m := w.Metrics()
		rw.Header().Set("Content-Type", "text/plain; version=0.0.4")
		fmt.Fprintf(rw, "park_tick %d\n", m.Tick)
		fmt.Fprintf(rw, "park_guests %d\n", m.Guests)
		fmt.Fprintf(rw, "park_coasters %d\n", m.Coasters)
		fmt.Fprintf(rw, "park_cash %f\n", m.Cash)
		fmt.Fprintf(rw, "park_rating %f\n", m.Rating)
		fmt.Fprintf(rw, "park_speed %d\n", m.Speed)
		fmt.Fprintf(rw, "park_step_millis %f\n", m.StepMillis)
	})
	mux.HandleFunc("/v1/admin/state", func(rw http.ResponseWriter, r *http.Request) {
		if !isLoopback(r) {
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}
		rw.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(rw).Encode(w.Metrics())
	})
	mux.HandleFunc("/v1/ws", wsSrv.Handler())
	mux.HandleFunc("/v1/observer/bootstrap", obsSrv.BootstrapHandler())
	mux.HandleFunc("/v1/observer/ws", obsSrv.StreamHandler())

	srv := &http.Server{
		Addr:              tun.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Printf("world %s grid=%d seed=%d tick_rate=%dhz listening on %s",
		cfg.ID, cfg.GridSize, cfg.Seed, cfg.TickRateHz, tun.Server.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("listen: %v", err)
	}
	logger.Printf("shutdown complete")
}

func configFromTuning(t tuning.Tuning) park.WorldConfig {
	return park.WorldConfig{
		ID:                t.World.ID,
		TickRateHz:        t.Server.TickRateHz,
		GridSize:          t.World.GridSize,
		Seed:              t.World.Seed,
		MaxGuests:         t.World.MaxGuests,
		StartingCash:      t.World.StartingCash,
		EntryFee:          t.Fees.Entry,
		RideFee:           t.Fees.Ride,
		FoodFee:           t.Fees.Food,
		ShopFee:           t.Fees.Shop,
		SpawnBase:         t.Spawn.Base,
		SpawnRatingWeight: t.Spawn.RatingWeight,
		SpawnLunchBonus:   t.Spawn.LunchBonus,
		WalkSpeed:         t.Guests.WalkSpeed,
		PathfindMaxSteps:  t.Guests.PathfindMaxSteps,
		LeaveAfterTicks:   t.World.LeaveAfterTicks,
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}

func isLoopback(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// Command drmd runs a standalone Mode-Setting Core against the in-memory
// reference driver: a handful of demo CRTCs/encoders/connectors/planes, and
// a debug HTTP server for inspecting the object graph and metrics.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	drmcore "github.com/vellum-os/drmcore"
	"github.com/vellum-os/drmcore/internal/logging"
	"github.com/vellum-os/drmcore/internal/memdrv"
	"github.com/vellum-os/drmcore/internal/uapi"
)

// defaultMode is a 1920x1080@60Hz mode-info blob used to activate every
// demo CRTC at startup.
var defaultMode = uapi.ModeInfo{
	ClockKHz: 148500,
	HDisplay: 1920, HSyncStart: 2008, HSyncEnd: 2052, HTotal: 2200,
	VDisplay: 1080, VSyncStart: 1084, VSyncEnd: 1089, VTotal: 1125,
}

func main() {
	var (
		verbose    bool
		debugAddr  string
		numCrtcs   int
		numOutputs int
	)

	root := &cobra.Command{
		Use:   "drmd",
		Short: "In-memory Mode-Setting Core demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(verbose, debugAddr, numCrtcs, numOutputs)
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	root.Flags().StringVar(&debugAddr, "debug-addr", "127.0.0.1:8777", "debug HTTP server listen address")
	root.Flags().IntVar(&numCrtcs, "crtcs", 2, "number of demo CRTCs to register")
	root.Flags().IntVar(&numOutputs, "outputs", 2, "number of demo connector/encoder pairs to register")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(verbose bool, debugAddr string, numCrtcs, numOutputs int) error {
	logConfig := logging.DefaultConfig()
	if verbose {
		logConfig.Level = logging.LevelDebug
	}
	logger := logging.NewLogger(logConfig)
	logging.SetDefault(logger)

	dev := drmcore.NewDevice(
		drmcore.WithDimensionClamps(64, 64, 4096, 2160),
		drmcore.WithLogger(logger),
	)
	driver := memdrv.NewDriver()

	crtcIDs := make([]uint32, 0, numCrtcs)
	for i := 0; i < numCrtcs; i++ {
		crtc := dev.RegisterCrtc()
		crtcIDs = append(crtcIDs, crtc.ID)
		dev.RegisterPlane(drmcore.PlaneTypePrimary, []uint32{crtc.ID})
	}
	for i := 0; i < numOutputs; i++ {
		enc := dev.RegisterEncoder(uint32(i), crtcIDs, nil)
		dev.RegisterConnector(uint32(i), 520, 320, []uint32{enc.ID})
	}

	logger.Info("demo device populated",
		"crtcs", numCrtcs, "outputs", numOutputs)

	if err := activateDemoCrtcs(dev, driver, crtcIDs); err != nil {
		logger.Error("failed to activate demo CRTCs", "error", err)
		return err
	}

	srv := newDebugServer(dev, debugAddr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("debug server exited", "error", err)
		}
	}()
	logger.Info("debug server listening", "addr", debugAddr)

	stackDumpCh := make(chan os.Signal, 1)
	signal.Notify(stackDumpCh, syscall.SIGUSR1)
	go func() {
		for range stackDumpCh {
			buf := make([]byte, 1024*1024)
			n := runtime.Stack(buf, true)
			fmt.Fprintf(os.Stderr, "\n=== GOROUTINE STACK DUMP ===\n%s\n", buf[:n])
			pprof.Lookup("goroutine").WriteTo(os.Stderr, 2)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// activateDemoCrtcs commits MODE_ID + ACTIVE=1 for every crtcID against
// driver, exercising the full prepare-validate-commit pipeline at startup.
func activateDemoCrtcs(dev *drmcore.Device, driver *memdrv.Driver, crtcIDs []uint32) error {
	out, err := uapi.Marshal(&defaultMode)
	if err != nil {
		return err
	}
	blobID := dev.RegisterBlob(out)

	modeProp, _ := dev.FindProperty("MODE_ID")
	activeProp, _ := dev.FindProperty("ACTIVE")

	var assignments []drmcore.Assignment
	for _, id := range crtcIDs {
		crtc, ok := dev.FindObject(id)
		if !ok {
			continue
		}
		assignments = append(assignments,
			drmcore.Assignment{Target: crtc, Property: modeProp, Value: drmcore.Value{BlobID: blobID}},
			drmcore.Assignment{Target: crtc, Property: activeProp, Value: drmcore.Value{Int: 1}},
		)
	}

	_, err = dev.Commit(assignments, driver, false, nil)
	return err
}

func newDebugServer(dev *drmcore.Device, addr string) *http.Server {
	r := mux.NewRouter()
	r.HandleFunc("/debug/metrics", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dev.Metrics().Snapshot())
	})
	r.HandleFunc("/debug/objects/{id}", func(w http.ResponseWriter, req *http.Request) {
		vars := mux.Vars(req)
		var id uint32
		if _, err := fmt.Sscanf(vars["id"], "%d", &id); err != nil {
			http.Error(w, "bad object id", http.StatusBadRequest)
			return
		}
		obj, ok := dev.FindObject(id)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(struct {
			ID   uint32 `json:"id"`
			Type string `json:"type"`
		}{obj.ID, obj.Type.String()})
	})
	return &http.Server{Addr: addr, Handler: r}
}

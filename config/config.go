package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DebugMode gates verbose logging across the module.
var DebugMode bool

type Config struct {
	// SnapshotDelayThreshold is the number of deltas to buffer before a
	// snapshot is requested for a market.
	SnapshotDelayThreshold int
	// SnapshotRetryLimit is the per-market budget of snapshot re-fetch
	// attempts before the subscription is declared desynchronized.
	SnapshotRetryLimit int
	// GapBufferHardCap bounds the pre-snapshot delta buffer.
	GapBufferHardCap int
	// SnapshotTimeout bounds one snapshot fetch attempt.
	SnapshotTimeout time.Duration
	// CrossedBookPolicy is "flag" or "resync".
	CrossedBookPolicy string
	// DefaultDepth truncates fan-out views when a consumer gives none.
	DefaultDepth int
	// Providers is the allow-list of provider names the rpc surface
	// accepts.
	Providers []string

	GrpcPort    string
	MetricsAddr string
}

// Load reads .env if present and builds the runtime configuration from
// the environment, with defaults suitable for production.
func Load() *Config {
	if err := godotenv.Load(); err != nil && DebugMode {
		log.Printf("config: no .env file loaded: %s", err)
	}

	DebugMode = envBool("DEBUG_MODE", false)

	return &Config{
		SnapshotDelayThreshold: envInt("SNAPSHOT_DELAY_THRESHOLD", 5),
		SnapshotRetryLimit:     envInt("SNAPSHOT_RETRY_LIMIT", 3),
		GapBufferHardCap:       envInt("GAP_BUFFER_HARD_CAP", 4096),
		SnapshotTimeout:        envDuration("SNAPSHOT_TIMEOUT", 15*time.Second),
		CrossedBookPolicy:      envString("CROSSED_BOOK_POLICY", "flag"),
		DefaultDepth:           envInt("DEFAULT_DEPTH", 100),
		Providers:              envList("AVAILABLE_PROVIDERS", []string{"binance"}),
		GrpcPort:               envString("GRPC_PORT", "50051"),
		MetricsAddr:            envString("METRICS_ADDR", ":8080"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

// Package redis builds the go-redis client shared by the repositories.
package redis

import (
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/armybook-api/internal/errors"
)

// Mode selects the Redis deployment topology
type Mode string

const (
	ModeStandalone Mode = "standalone"
	ModeCluster    Mode = "cluster"
	ModeSentinel   Mode = "sentinel"
)

// Options configures the client. Addrs holds the server address in
// standalone mode, the seed nodes in cluster mode and the sentinels in
// sentinel mode.
type Options struct {
	Mode       Mode
	Addrs      []string
	MasterName string
	Password   string
	DB         int

	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DialTimeout     time.Duration

	UseTLS bool
}

// Validate checks the options and defaults an empty mode to standalone
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("redis: options cannot be nil")
	}
	if o.Mode == "" {
		o.Mode = ModeStandalone
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("mode", string(o.Mode),
		[]string{string(ModeStandalone), string(ModeCluster), string(ModeSentinel)}, vb)
	if len(o.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	if o.Mode == ModeStandalone && len(o.Addrs) > 1 {
		vb.Field("addrs", "standalone mode takes a single address")
	}
	if o.Mode == ModeSentinel && o.MasterName == "" {
		vb.RequiredField("master_name")
	}
	if o.Mode == ModeCluster && o.DB != 0 {
		vb.Field("db", "cluster mode only supports db 0")
	}
	return vb.Build()
}

// NewClient creates the client for the configured topology. Redis connects
// lazily; callers that need to fail fast should Ping.
func NewClient(opts *Options) (Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	universal := &redis.UniversalOptions{
		Addrs:           opts.Addrs,
		MasterName:      opts.MasterName,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		DialTimeout:     opts.DialTimeout,
	}
	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, // #nosec G402 // managed instances use self-signed certs
		}
	}

	switch opts.Mode {
	case ModeCluster:
		return redis.NewClusterClient(universal.Cluster()), nil
	case ModeSentinel:
		return redis.NewFailoverClient(universal.Failover()), nil
	default:
		return redis.NewClient(universal.Simple()), nil
	}
}

// NewStandalone is NewClient for a single address with default options
func NewStandalone(addr string) (Client, error) {
	return NewClient(&Options{Mode: ModeStandalone, Addrs: []string{addr}})
}

package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/mebel-store/pkg/config"
)

var errNoIPv4 = errors.New("sin dirección IPv4")

// NewPool abre el pool hacia la base que respalda las colecciones y verifica la conexión.
// El catálogo es pequeño y de baja escritura; MaxConns viene de DB_MAX_CONNS.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	tunePool(poolConfig, cfg)
	if cfg.ForceIPv4 {
		poolConfig.ConnConfig.DialFunc = newIPv4Resolver().dial
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func tunePool(pc *pgxpool.Config, cfg config.DBConfig) {
	if cfg.MaxConns > 0 {
		pc.MaxConns = int32(cfg.MaxConns)
	}
	pc.MinConns = 0
	pc.MaxConnIdleTime = 15 * time.Minute
	pc.HealthCheckPeriod = time.Minute

	// price es NUMERIC: se lee y escribe como shopspring/decimal.
	pc.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
}

// ipv4Resolver elige una dirección IPv4 para el host; con el resolver del sistema
// primero y luego con un DNS público, porque dentro de contenedores el DNS puede
// devolver solo registros AAAA.
type ipv4Resolver struct {
	lookups []func(ctx context.Context, host string) ([]net.IP, error)
}

func newIPv4Resolver() *ipv4Resolver {
	public := &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "udp", "8.8.8.8:53")
		},
	}
	return &ipv4Resolver{lookups: []func(context.Context, string) ([]net.IP, error){
		func(ctx context.Context, host string) ([]net.IP, error) {
			return net.DefaultResolver.LookupIP(ctx, "ip4", host)
		},
		func(ctx context.Context, host string) ([]net.IP, error) {
			return public.LookupIP(ctx, "ip4", host)
		},
	}}
}

func (r *ipv4Resolver) resolve(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return "", errNoIPv4
		}
		return host, nil
	}
	for _, lookup := range r.lookups {
		ips, err := lookup(ctx, host)
		if err != nil {
			continue
		}
		for _, ip := range ips {
			if ip.To4() != nil {
				return ip.String(), nil
			}
		}
	}
	return "", fmt.Errorf("%s: %w", host, errNoIPv4)
}

// dial sirve como pgconn.DialFunc; sin IPv4 conocido usa el dial normal.
func (r *ipv4Resolver) dial(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	ip, err := r.resolve(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

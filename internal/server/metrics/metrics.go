// Package metrics holds the Prometheus collectors for token lifecycle
// events and the handler serving them.
package metrics

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc/codes"
)

const (
	namespace = "tokenkeeper"
	subsystem = "tokens"

	labelSource  = "source"
	labelOutcome = "outcome"
	labelResult  = "result"
	labelMethod  = "method"
	labelCode    = "code"
)

// Issuance sources.
const (
	SourceLogin    = "login"
	SourceRegister = "register"
	SourceRotation = "rotation"
)

// Rotation outcomes.
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidAccess    = "invalid_access_token"
	OutcomeInvalidRefresh   = "invalid_refresh_token"
	OutcomeExpiredOrRevoked = "expired_or_revoked"
	OutcomeError            = "error"
)

var accessTokensIssued = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "access_tokens_issued_total",
		Help:      "Count of access tokens issued, by source.",
	},
	[]string{labelSource},
)

var refreshTokensIssued = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "refresh_tokens_issued_total",
		Help:      "Count of refresh tokens persisted, by source.",
	},
	[]string{labelSource},
)

var rotations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rotations_total",
		Help:      "Count of refresh token rotation attempts, by outcome.",
	},
	[]string{labelOutcome},
)

var revocations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "revocations_total",
		Help:      "Count of explicit refresh token revocations, by result.",
	},
	[]string{labelResult},
)

var reuseDetected = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "refresh_reuse_detected_total",
		Help:      "Count of rotation attempts presenting an already revoked refresh token.",
	},
)

var cascadeRevoked = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cascade_revoked_total",
		Help:      "Count of refresh tokens revoked by the reuse cascade.",
	},
)

var grpcRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "grpc",
		Name:      "requests_total",
		Help:      "Count of handled gRPC requests, by method and status code.",
	},
	[]string{labelMethod, labelCode},
)

// Initialize registers all collectors with r and pre-populates the
// expected rotation outcomes at 0. A nil registerer is a no-op.
func Initialize(r prometheus.Registerer) {
	if r == nil {
		return
	}
	r.MustRegister(accessTokensIssued, refreshTokensIssued, rotations, revocations,
		reuseDetected, cascadeRevoked, grpcRequests)

	for _, o := range []string{OutcomeSuccess, OutcomeInvalidAccess, OutcomeInvalidRefresh, OutcomeExpiredOrRevoked, OutcomeError} {
		rotations.WithLabelValues(o)
	}
}

// Handler serves the collectors gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func AccessTokenIssued(source string) {
	accessTokensIssued.WithLabelValues(source).Inc()
}

func RefreshTokenIssued(source string) {
	refreshTokensIssued.WithLabelValues(source).Inc()
}

// Rotation records the outcome of one rotation attempt.
func Rotation(err error) {
	rotations.WithLabelValues(RotationOutcome(err)).Inc()
}

// RotationOutcome maps a rotation error to its outcome label.
func RotationOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, common.ErrInvalidAccessToken):
		return OutcomeInvalidAccess
	case errors.Is(err, common.ErrInvalidRefreshToken):
		return OutcomeInvalidRefresh
	case errors.Is(err, common.ErrRefreshTokenExpiredOrRevoked):
		return OutcomeExpiredOrRevoked
	default:
		return OutcomeError
	}
}

func Revocation(found bool) {
	if found {
		revocations.WithLabelValues("revoked").Inc()
		return
	}
	revocations.WithLabelValues("not_found").Inc()
}

func ReuseDetected() {
	reuseDetected.Inc()
}

func CascadeRevoked(n int64) {
	cascadeRevoked.Add(float64(n))
}

// GRPCRequest counts one handled call. method is the full gRPC method name.
func GRPCRequest(method string, code codes.Code) {
	grpcRequests.WithLabelValues(method, code.String()).Inc()
}

// Copyright (c) 2026 Jeremy Hahn
// Copyright (c) 2026 Automate The Things, LLC
//
// This file is part of go-enclave.
//
// go-enclave is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package enclave

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/jeremyhahn/go-enclave/pkg/logging"
	"github.com/jeremyhahn/go-enclave/pkg/metrics"
	"github.com/jeremyhahn/go-enclave/pkg/types"
)

// Enclave is the connection handle every backend returns from Connect.
//
// The contract is deliberately small so it stays misuse resistant for
// callers who do not understand the underlying cryptography. Key
// operations beyond capability checks are backend-specific surfaces.
//
// A handle is owned exclusively by the caller until closed. Close
// consumes it; using a handle after Close is a caller bug. The
// contract mandates no sharing, pooling, reconnecting or retrying;
// those policies belong to the caller, since reconnect semantics
// differ drastically between a local keyring and a network HSM.
type Enclave interface {
	// Backend reports which backend implementation the handle talks to.
	Backend() Backend

	// Supports answers whether the backend can create and operate the
	// described key. Unsupported descriptors are rejected with a typed
	// error; a backend never substitutes a different algorithm.
	Supports(key types.EnclaveKey) error

	// Close releases the connection. The handle must not be used
	// afterwards.
	Close() error
}

// Opener establishes a connection for one backend variant. Openers
// must not leak partially-initialized resources on failure: anything
// acquired during a failed attempt is released before the error is
// returned.
type Opener func(cfg *Config) (Enclave, error)

var (
	openers   = make(map[Backend]Opener)
	openersMu sync.RWMutex

	logger = logging.DefaultLogger()
)

// Register installs the Opener for a backend. Backend packages call
// this from init(), keeping each implementation ignorant of the
// others; dispatch happens only in Connect.
func Register(b Backend, open Opener) {
	openersMu.Lock()
	defer openersMu.Unlock()
	openers[b] = open
}

// RegisteredBackends returns the backends with an installed Opener,
// sorted for stable output.
func RegisteredBackends() []Backend {
	openersMu.RLock()
	defer openersMu.RUnlock()
	backends := make([]Backend, 0, len(openers))
	for b := range openers {
		backends = append(backends, b)
	}
	sort.Slice(backends, func(i, j int) bool { return backends[i] < backends[j] })
	return backends
}

// Connect dispatches on the configuration variant to the matching
// backend and returns a live connection handle or a typed error.
//
// Connect takes ownership of cfg: every nested secret is scrubbed
// before Connect returns, whether the attempt succeeds, fails, or
// panics. The call blocks until the backend answers; callers wanting a
// timeout wrap the call externally.
func Connect(cfg *Config) (Enclave, error) {
	defer cfg.Zeroize()

	if err := cfg.Validate(); err != nil {
		return nil, Wrap(KindGeneralError, "invalid enclave configuration", err)
	}

	backend := cfg.Backend()
	openersMu.RLock()
	open, ok := openers[backend]
	openersMu.RUnlock()
	if !ok {
		return nil, Errorf(KindConnectionFailure,
			"no enclave backend registered for %q", backend)
	}

	id := uuid.NewString()
	logger.Debugf("enclave: connecting id=%s backend=%s config=%s", id, backend, cfg)

	start := time.Now()
	enc, err := open(cfg)
	elapsed := time.Since(start)
	if err != nil {
		terr := ensure(err, "connecting to enclave")
		metrics.RecordConnect(backend.String(), string(terr.Kind()), elapsed.Seconds())
		logger.Debugf("enclave: connect failed id=%s backend=%s kind=%s", id, backend, terr.Kind())
		return nil, terr
	}

	metrics.RecordConnect(backend.String(), metrics.StatusSuccess, elapsed.Seconds())
	metrics.ConnectionOpened(backend.String())
	logger.Debugf("enclave: connected id=%s backend=%s elapsed=%s", id, backend, elapsed)

	return &conn{Enclave: enc, id: id}, nil
}

// conn decorates a backend handle with connection accounting. The
// closed flag keeps the open-connections gauge honest; it is not a
// license to reuse a handle after Close.
type conn struct {
	Enclave
	id     string
	closed atomic.Bool
}

func (c *conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return FromContext(KindGeneralError, "enclave connection already closed")
	}
	metrics.ConnectionClosed(c.Enclave.Backend().String())
	logger.Debugf("enclave: closed id=%s backend=%s", c.id, c.Enclave.Backend())
	if err := c.Enclave.Close(); err != nil {
		return ensure(err, "closing enclave connection")
	}
	return nil
}

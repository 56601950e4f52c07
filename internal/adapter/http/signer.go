package httpadapter

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"io"
	"net/http"
	"strconv"
	"time"

	"crowdfund/internal/core/domain"
)

// Headers carrying the request signature.
const (
	HeaderSigner    = "X-Signer"
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
)

type signerKey struct{}

// SigningPayload returns the bytes a client signs for a request. The
// timestamp is unix seconds.
func SigningPayload(method, path string, timestamp int64, body []byte) []byte {
	var b bytes.Buffer
	b.WriteString(method)
	b.WriteByte('\n')
	b.WriteString(path)
	b.WriteByte('\n')
	b.WriteString(strconv.FormatInt(timestamp, 10))
	b.WriteByte('\n')
	b.Write(body)
	return b.Bytes()
}

// SignRequest signs r with priv, setting the signature headers. The body
// must be readable; it is replaced with an equivalent reader.
func SignRequest(r *http.Request, priv ed25519.PrivateKey, now time.Time) error {
	var body []byte
	if r.Body != nil {
		var err error
		if body, err = io.ReadAll(r.Body); err != nil {
			return err
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
	}
	ts := now.Unix()
	sig := ed25519.Sign(priv, SigningPayload(r.Method, r.URL.Path, ts, body))
	r.Header.Set(HeaderSigner, hex.EncodeToString(priv.Public().(ed25519.PublicKey)))
	r.Header.Set(HeaderSignature, hex.EncodeToString(sig))
	r.Header.Set(HeaderTimestamp, strconv.FormatInt(ts, 10))
	return nil
}

// requireSigner verifies the ed25519 signature of the request and stores
// the proven caller key in the request context. A signature is accepted
// once; resubmitting it is rejected as a replay.
func (h *Handler) requireSigner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signer, err := domain.ParsePublicKey(r.Header.Get(HeaderSigner))
		if err != nil {
			writeStatus(w, http.StatusUnauthorized, "missing_signer")
			return
		}
		sig, err := hex.DecodeString(r.Header.Get(HeaderSignature))
		if err != nil || len(sig) != ed25519.SignatureSize {
			writeStatus(w, http.StatusUnauthorized, "bad_signature")
			return
		}
		ts, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
		if err != nil {
			writeStatus(w, http.StatusUnauthorized, "bad_timestamp")
			return
		}
		if skew := h.opts.Now().Sub(time.Unix(ts, 0)); skew > h.opts.SignatureMaxSkew || skew < -h.opts.SignatureMaxSkew {
			writeStatus(w, http.StatusUnauthorized, "stale_signature")
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
		if err != nil {
			writeStatus(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		if !ed25519.Verify(signer[:], SigningPayload(r.Method, r.URL.Path, ts, body), sig) {
			writeStatus(w, http.StatusUnauthorized, "bad_signature")
			return
		}
		if !h.replay.claim(sig, h.opts.Now()) {
			writeStatus(w, http.StatusUnauthorized, "replayed_signature")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), signerKey{}, signer)))
	})
}

// signerFrom returns the caller proven by requireSigner.
func signerFrom(ctx context.Context) (domain.PublicKey, bool) {
	k, ok := ctx.Value(signerKey{}).(domain.PublicKey)
	return k, ok
}

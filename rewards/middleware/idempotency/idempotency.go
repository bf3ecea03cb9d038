package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	idemkey "encore.app/rewards/idempotency"
	"encore.app/rewards/model"
)

const (
	IdempotencyHeader = "X-Idempotency-Key"

	statusProcessing = "processing"
	statusCompleted  = "completed"
)

// ReplayProtection makes tagged endpoints safe to retry. The caller may
// supply an explicit X-Idempotency-Key header; when it is absent the key is
// derived from the request payload, so byte-identical retries still replay
// the cached response instead of hitting the provider twice.
//
//encore:middleware target=tag:idempotency
func ReplayProtection(req middleware.Request, next middleware.Next) middleware.Response {
	key := requestKey(req)
	if key == "" {
		// No header and no payload to derive from: nothing to replay against.
		return next(req)
	}

	bodyHash := requestBodyHash(req)

	cacheKey := model.ReplayKey{
		Resource: req.Data().Path,
		Key:      key,
	}

	entry, cacheErr := ReplayCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markProcessing(req.Context(), cacheKey, bodyHash); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				releaseEntry(req.Context(), cacheKey)
			} else {
				storeResponse(req.Context(), cacheKey, bodyHash, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check replay cache"},
		}
	}

	return replayEntry(req, next, entry, bodyHash, key)
}

// requestKey resolves the idempotency key for the request: the caller's
// header when present, otherwise a key derived from the payload.
func requestKey(req middleware.Request) string {
	if headers := req.Data().Headers; headers != nil {
		if headerVal := strings.TrimSpace(headers.Get(IdempotencyHeader)); headerVal != "" {
			return headerVal
		}
	}

	if payload := req.Data().Payload; payload != nil {
		return idemkey.DeriveKey("inbound", payload)
	}

	return ""
}

// requestBodyHash hashes the request payload for conflict detection
func requestBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}

	sum := sha256.Sum256(bodyBytes)
	return hex.EncodeToString(sum[:])
}

// replayEntry resolves a request whose key already has a cache entry
func replayEntry(req middleware.Request, next middleware.Next, entry model.ReplayEntry, bodyHash, key string) middleware.Response {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{
			Err: &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"},
		}
	}

	switch entry.Status {
	case statusProcessing:
		rlog.Info("concurrent request detected", "key", key)
		return middleware.Response{
			Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
		}
	case statusCompleted:
		return replayResponse(req, next, entry, key)
	default:
		rlog.Warn("unknown replay entry status, processing as new request", "key", key, "status", entry.Status)
		return next(req)
	}
}

// replayResponse returns the cached response for a completed request
func replayResponse(req middleware.Request, next middleware.Next, entry model.ReplayEntry, key string) middleware.Response {
	if len(entry.Response) > 0 {
		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()
			if err := json.Unmarshal(entry.Response, responseValue); err == nil {
				rlog.Info("returning cached response", "key", key)
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "key", key)
		}
	}

	// Corrupted or missing cached response: process as a new request.
	return next(req)
}

// markProcessing claims the key before the request runs
func markProcessing(ctx context.Context, cacheKey model.ReplayKey, bodyHash string) *errs.Error {
	if err := ReplayCache.Set(ctx, cacheKey, model.ReplayEntry{
		Status:          statusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// releaseEntry drops a processing claim so the caller can retry
func releaseEntry(ctx context.Context, cacheKey model.ReplayKey) {
	if _, err := ReplayCache.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to release replay entry", "error", err)
	}
}

// storeResponse caches the successful response for later replay
func storeResponse(ctx context.Context, cacheKey model.ReplayKey, bodyHash string, response middleware.Response) {
	entry := model.ReplayEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payloadBytes
	}

	if err := ReplayCache.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
	}
}
